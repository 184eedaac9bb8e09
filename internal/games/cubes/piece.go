package cubes

// pieceFrame is the side length of a piece's local sub-grid.
const pieceFrame = 4

// Block is a single cell of a tetromino, or the content of a landed board
// cell. Active means the block is part of a live falling piece and subject
// to gravity and collision; a landed block is always frozen (Active=false).
type Block struct {
	Kind     PieceKind
	Position GridPosition // absolute board coordinate
	Offset   GridPosition // local offset from the piece anchor
	Active   bool
	Rendered bool
}

// Piece is the currently falling tetromino: a kind, an anchor position and
// a 4x4 matrix of blocks of which exactly the catalog's offsets are active.
type Piece struct {
	Anchor GridPosition
	Kind   PieceKind
	Blocks [pieceFrame][pieceFrame]Block
	Active bool
}

// SpawnPiece builds a new active piece of the given kind at the anchor.
// Every block gets its local offset from its matrix indices; only the
// catalog's offsets for the kind are marked active and rendered.
func SpawnPiece(kind PieceKind, anchor GridPosition) *Piece {
	p := &Piece{
		Anchor: anchor,
		Kind:   kind,
		Active: true,
	}

	for row := 0; row < pieceFrame; row++ {
		for col := 0; col < pieceFrame; col++ {
			p.Blocks[row][col] = Block{
				Kind:   kind,
				Offset: GridPosition{X: col, Y: row},
			}
		}
	}

	for _, off := range ShapeFor(kind) {
		b := &p.Blocks[off.Y][off.X]
		b.Active = true
		b.Rendered = true
	}

	p.RecomputePositions()
	return p
}

// RecomputePositions derives every block's absolute position from the
// anchor and its local offset. Must be called after any anchor mutation,
// before collision queries or rendering.
func (p *Piece) RecomputePositions() {
	for row := 0; row < pieceFrame; row++ {
		for col := 0; col < pieceFrame; col++ {
			b := &p.Blocks[row][col]
			b.Position = p.Anchor.Add(b.Offset)
		}
	}
}

// Translate moves the anchor by (dx, dy) and recomputes block positions.
// It does not validate legality; callers consult the collision checker
// first. The can-move/do-move split lets the gravity tick and the lateral
// move commands share one checker.
func (p *Piece) Translate(dx, dy int) {
	p.Anchor.X += dx
	p.Anchor.Y += dy
	p.RecomputePositions()
}

// Lock marks the piece as locked. Terminal: never reset.
func (p *Piece) Lock() {
	p.Active = false
}

// Locked reports whether the piece has locked and must be replaced.
func (p *Piece) Locked() bool {
	return !p.Active
}

// ActiveBlocks returns frozen value copies of the piece's active blocks,
// ready to be merged into the board. The copies carry Active=false so a
// landed cell never reads as part of a live piece.
func (p *Piece) ActiveBlocks() []Block {
	blocks := make([]Block, 0, pieceFrame)
	for row := 0; row < pieceFrame; row++ {
		for col := 0; col < pieceFrame; col++ {
			if !p.Blocks[row][col].Active {
				continue
			}
			b := p.Blocks[row][col]
			b.Active = false
			blocks = append(blocks, b)
		}
	}
	return blocks
}
