package cubes

import "fmt"

// Default playfield dimensions.
const (
	DefaultColumns = 10
	DefaultRows    = 20
)

// Cell is one board cell. Invariant: Occupied == (Block != nil).
type Cell struct {
	Position GridPosition
	Occupied bool
	Block    *Block
}

// Board is the fixed-size matrix of landed geometry. Cells are created
// empty and transition to occupied when a piece locks; row clearing is the
// only path back to empty.
type Board struct {
	columns int
	rows    int
	cells   [][]Cell // indexed [row][column]
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(columns, rows int) *Board {
	b := &Board{
		columns: columns,
		rows:    rows,
		cells:   make([][]Cell, rows),
	}
	for y := range b.cells {
		b.cells[y] = make([]Cell, columns)
		for x := range b.cells[y] {
			b.cells[y][x].Position = GridPosition{X: x, Y: y}
		}
	}
	return b
}

// Columns returns the board width in cells.
func (b *Board) Columns() int {
	return b.columns
}

// Rows returns the board height in cells.
func (b *Board) Rows() int {
	return b.rows
}

// InBounds reports whether the position lies on the board.
func (b *Board) InBounds(pos GridPosition) bool {
	return pos.X >= 0 && pos.X < b.columns && pos.Y >= 0 && pos.Y < b.rows
}

// IsOccupied reports whether the cell at pos holds a landed block.
// Answers only for in-range positions; out-of-range positions return false
// here, and it is the collision checker's job to treat the boundary as
// solid.
func (b *Board) IsOccupied(pos GridPosition) bool {
	if !b.InBounds(pos) {
		return false
	}
	return b.cells[pos.Y][pos.X].Occupied
}

// CellAt returns the cell at pos, or nil if pos is out of range.
func (b *Board) CellAt(pos GridPosition) *Cell {
	if !b.InBounds(pos) {
		return nil
	}
	return &b.cells[pos.Y][pos.X]
}

// Place commits a frozen block into the cell at its position. An
// out-of-range position is an invariant violation and returns an error;
// the caller's collision checks make that unreachable in normal play.
// Placing onto an occupied cell overwrites the stored block: occupancy is
// a set, not a counter, so locking the same piece twice cannot
// double-occupy.
func (b *Board) Place(block Block) error {
	if !b.InBounds(block.Position) {
		return fmt.Errorf("cubes: place out of range at (%d, %d)", block.Position.X, block.Position.Y)
	}

	block.Active = false
	block.Rendered = true

	cell := &b.cells[block.Position.Y][block.Position.X]
	cell.Occupied = true
	cell.Block = &block
	return nil
}

// FullRows returns the indices of completely occupied rows, top to bottom.
func (b *Board) FullRows() []int {
	var full []int
	for y := 0; y < b.rows; y++ {
		complete := true
		for x := 0; x < b.columns; x++ {
			if !b.cells[y][x].Occupied {
				complete = false
				break
			}
		}
		if complete {
			full = append(full, y)
		}
	}
	return full
}

// ClearRows removes the given rows and shifts everything above them down.
// Row indices must be sorted ascending (as returned by FullRows).
func (b *Board) ClearRows(rows []int) {
	for _, row := range rows {
		for y := row; y > 0; y-- {
			for x := 0; x < b.columns; x++ {
				above := b.cells[y-1][x]
				b.cells[y][x].Occupied = above.Occupied
				if above.Block != nil {
					moved := *above.Block
					moved.Position = GridPosition{X: x, Y: y}
					b.cells[y][x].Block = &moved
				} else {
					b.cells[y][x].Block = nil
				}
			}
		}
		for x := 0; x < b.columns; x++ {
			b.cells[0][x].Occupied = false
			b.cells[0][x].Block = nil
		}
	}
}

// OccupiedCount returns the number of occupied cells, used by tests and
// the HUD.
func (b *Board) OccupiedCount() int {
	n := 0
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.columns; x++ {
			if b.cells[y][x].Occupied {
				n++
			}
		}
	}
	return n
}
