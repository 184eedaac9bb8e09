package cubes

// Direction is a lateral movement command.
type Direction int

const (
	MoveLeft Direction = iota
	MoveRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d == MoveLeft {
		return "left"
	}
	return "right"
}

// CanFall reports whether every active block of the piece can descend one
// row: the next row must not exceed the last row of the board and the cell
// directly below must be unoccupied. Pure query, no mutation.
func CanFall(p *Piece, b *Board) bool {
	for row := 0; row < pieceFrame; row++ {
		for col := 0; col < pieceFrame; col++ {
			blk := &p.Blocks[row][col]
			if !blk.Active {
				continue
			}
			below := GridPosition{X: blk.Position.X, Y: blk.Position.Y + 1}
			if below.Y >= b.Rows() {
				return false
			}
			if b.IsOccupied(below) {
				return false
			}
		}
	}
	return true
}

// CanMove reports whether the piece can shift one column in the given
// direction. Every active block is checked, not just the anchor, since
// pieces are irregular: the target column must be inside the board and the
// neighbouring cell unoccupied.
func CanMove(p *Piece, b *Board, dir Direction) bool {
	dx := -1
	if dir == MoveRight {
		dx = 1
	}

	for row := 0; row < pieceFrame; row++ {
		for col := 0; col < pieceFrame; col++ {
			blk := &p.Blocks[row][col]
			if !blk.Active {
				continue
			}
			next := GridPosition{X: blk.Position.X + dx, Y: blk.Position.Y}
			if next.X < 0 || next.X >= b.Columns() {
				return false
			}
			if b.IsOccupied(next) {
				return false
			}
		}
	}
	return true
}

// Overlaps reports whether any active block of the piece sits on an
// occupied board cell. Used to detect a blocked spawn.
func Overlaps(p *Piece, b *Board) bool {
	for row := 0; row < pieceFrame; row++ {
		for col := 0; col < pieceFrame; col++ {
			blk := &p.Blocks[row][col]
			if !blk.Active {
				continue
			}
			if b.IsOccupied(blk.Position) {
				return true
			}
		}
	}
	return false
}
