package cubes

import "testing"

func TestShapeCatalog(t *testing.T) {
	tests := []struct {
		kind    PieceKind
		offsets []GridPosition
	}{
		{KindI, []GridPosition{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{KindJ, []GridPosition{{0, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{KindL, []GridPosition{{2, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{KindO, []GridPosition{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{KindS, []GridPosition{{1, 0}, {2, 0}, {0, 1}, {1, 1}}},
		{KindT, []GridPosition{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{KindZ, []GridPosition{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := ShapeFor(tt.kind)
			if len(got) != 4 {
				t.Fatalf("ShapeFor(%s) has %d offsets, want 4", tt.kind, len(got))
			}
			for i, off := range tt.offsets {
				if got[i] != off {
					t.Errorf("ShapeFor(%s)[%d] = %v, want %v", tt.kind, i, got[i], off)
				}
			}
		})
	}
}

func TestShapeOffsetsInsideLocalFrame(t *testing.T) {
	for _, kind := range AllKinds {
		for _, off := range ShapeFor(kind) {
			if off.X < 0 || off.X >= pieceFrame || off.Y < 0 || off.Y >= pieceFrame {
				t.Errorf("kind %s offset %v outside the 4x4 local frame", kind, off)
			}
		}
	}
}

func TestColorsForAllKinds(t *testing.T) {
	seen := make(map[ColorPair]PieceKind)
	for _, kind := range AllKinds {
		pair := ColorsFor(kind)
		if pair.Primary == pair.Secondary {
			t.Errorf("kind %s has identical primary and secondary tones", kind)
		}
		if other, dup := seen[pair]; dup {
			t.Errorf("kinds %s and %s share the color pair %v", kind, other, pair)
		}
		seen[pair] = kind
	}
}

func TestKindString(t *testing.T) {
	want := map[PieceKind]string{
		KindI: "I", KindJ: "J", KindL: "L", KindO: "O",
		KindS: "S", KindT: "T", KindZ: "Z",
	}
	for kind, name := range want {
		if kind.String() != name {
			t.Errorf("PieceKind(%d).String() = %q, want %q", kind, kind.String(), name)
		}
	}
}
