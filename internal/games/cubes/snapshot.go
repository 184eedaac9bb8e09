package cubes

// Snapshot captures the simulation state with primitive types only.
// It is an in-memory surface for determinism tests; nothing persists it.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Score        int
	Lines        int
	PiecesLocked int
	GameOver     bool

	PieceKind   int
	PieceActive bool
	AnchorX     int
	AnchorY     int

	// Board cells flattened row-major: 0 for empty, kind+1 for occupied.
	Columns   int
	Rows      int
	BoardData []int
}

// Snapshot returns the current simulation state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Score:        g.score,
		Lines:        g.lines,
		PiecesLocked: g.piecesLocked,
		GameOver:     g.gameOver,
		Columns:      g.board.Columns(),
		Rows:         g.board.Rows(),
	}

	if g.piece != nil {
		snap.PieceKind = int(g.piece.Kind)
		snap.PieceActive = g.piece.Active
		snap.AnchorX = g.piece.Anchor.X
		snap.AnchorY = g.piece.Anchor.Y
	}

	snap.BoardData = make([]int, snap.Columns*snap.Rows)
	for y := 0; y < snap.Rows; y++ {
		for x := 0; x < snap.Columns; x++ {
			cell := g.board.CellAt(GridPosition{X: x, Y: y})
			if cell.Occupied && cell.Block != nil {
				snap.BoardData[y*snap.Columns+x] = int(cell.Block.Kind) + 1
			}
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PiecesLocked) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceKind)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AnchorX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AnchorY)      //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}
	for _, v := range snap.BoardData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
