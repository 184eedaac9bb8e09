package cubes

import "github.com/dsocolobsky/cubes/internal/core"

// PieceKind identifies one of the seven canonical tetromino shapes.
type PieceKind int

const (
	KindI PieceKind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// AllKinds lists every piece kind, used for random selection and tests.
var AllKinds = []PieceKind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// String returns the conventional one-letter name of the kind.
func (k PieceKind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// ColorPair is the two-tone color of a piece kind: a dark primary and a
// light secondary, drawn side by side per cell.
type ColorPair struct {
	Primary   core.Color
	Secondary core.Color
}

// shapeOffsets maps each kind to its occupied cells within the 4x4 local
// frame. Offsets are {X: column-in-piece, Y: row-in-piece}. There is exactly
// one fixed shape per kind; pieces never rotate.
var shapeOffsets = map[PieceKind][]GridPosition{
	KindI: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
	KindJ: {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	KindL: {{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	KindO: {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}},
	KindS: {{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	KindT: {{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	KindZ: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
}

// kindColors maps each kind to its dark/light tone pair.
var kindColors = map[PieceKind]ColorPair{
	KindI: {Primary: core.ColorCyan, Secondary: core.ColorBrightCyan},
	KindJ: {Primary: core.ColorBlue, Secondary: core.ColorBrightBlue},
	KindL: {Primary: core.ColorOrange, Secondary: core.ColorBrightYellow},
	KindO: {Primary: core.ColorYellow, Secondary: core.ColorBrightYellow},
	KindS: {Primary: core.ColorGreen, Secondary: core.ColorBrightGreen},
	KindT: {Primary: core.ColorMagenta, Secondary: core.ColorBrightMagenta},
	KindZ: {Primary: core.ColorRed, Secondary: core.ColorBrightRed},
}

// ShapeFor returns the local offsets occupied by the given kind.
// Total over the kind enumeration; the returned slice must not be mutated.
func ShapeFor(kind PieceKind) []GridPosition {
	return shapeOffsets[kind]
}

// ColorsFor returns the two-tone color pair for the given kind.
func ColorsFor(kind PieceKind) ColorPair {
	return kindColors[kind]
}
