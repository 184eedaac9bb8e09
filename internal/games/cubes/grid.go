package cubes

// GridPosition is a 2D integer coordinate on the playfield. X is the column
// (grows rightward), Y is the row (grows downward). The same type serves as
// a piece-local offset, in which case it is unconstrained until added to the
// piece anchor.
type GridPosition struct {
	X, Y int
}

// Add returns the position translated by the given offset.
func (p GridPosition) Add(o GridPosition) GridPosition {
	return GridPosition{X: p.X + o.X, Y: p.Y + o.Y}
}
