package cubes

import "testing"

func TestSpawnPieceActiveBlocks(t *testing.T) {
	for _, kind := range AllKinds {
		t.Run(kind.String(), func(t *testing.T) {
			anchor := GridPosition{X: 4, Y: 0}
			p := SpawnPiece(kind, anchor)

			if p.Anchor != anchor {
				t.Errorf("anchor = %v, want %v", p.Anchor, anchor)
			}
			if !p.Active {
				t.Error("freshly spawned piece should be active")
			}

			active := 0
			for row := 0; row < pieceFrame; row++ {
				for col := 0; col < pieceFrame; col++ {
					blk := p.Blocks[row][col]
					if blk.Active {
						active++
						if !blk.Rendered {
							t.Errorf("active block at [%d][%d] not rendered", row, col)
						}
					} else if blk.Rendered {
						t.Errorf("inactive block at [%d][%d] marked rendered", row, col)
					}
					if blk.Offset != (GridPosition{X: col, Y: row}) {
						t.Errorf("block [%d][%d] offset = %v, want {%d %d}", row, col, blk.Offset, col, row)
					}
				}
			}

			if active != 4 {
				t.Errorf("spawn yields %d active blocks, want 4", active)
			}
		})
	}
}

func TestSpawnMarksCatalogOffsets(t *testing.T) {
	p := SpawnPiece(KindT, GridPosition{X: 4, Y: 0})

	for _, off := range ShapeFor(KindT) {
		if !p.Blocks[off.Y][off.X].Active {
			t.Errorf("catalog offset %v not active after spawn", off)
		}
	}
}

func TestRecomputePositions(t *testing.T) {
	p := SpawnPiece(KindS, GridPosition{X: 3, Y: 7})

	// absolute = anchor + offset must hold for every block, always
	for row := 0; row < pieceFrame; row++ {
		for col := 0; col < pieceFrame; col++ {
			blk := p.Blocks[row][col]
			want := p.Anchor.Add(blk.Offset)
			if blk.Position != want {
				t.Errorf("block [%d][%d] position = %v, want %v", row, col, blk.Position, want)
			}
		}
	}
}

func TestTranslate(t *testing.T) {
	p := SpawnPiece(KindZ, GridPosition{X: 4, Y: 0})

	p.Translate(1, 0)
	p.Translate(0, 2)

	if p.Anchor != (GridPosition{X: 5, Y: 2}) {
		t.Errorf("anchor after translate = %v, want {5 2}", p.Anchor)
	}

	for row := 0; row < pieceFrame; row++ {
		for col := 0; col < pieceFrame; col++ {
			blk := p.Blocks[row][col]
			if blk.Position != p.Anchor.Add(blk.Offset) {
				t.Errorf("block [%d][%d] position stale after translate", row, col)
			}
		}
	}
}

func TestLockIsTerminal(t *testing.T) {
	p := SpawnPiece(KindO, GridPosition{X: 4, Y: 0})

	if p.Locked() {
		t.Fatal("new piece should not be locked")
	}
	p.Lock()
	if !p.Locked() {
		t.Error("piece should report locked after Lock")
	}
}

func TestActiveBlocksFrozenCopies(t *testing.T) {
	p := SpawnPiece(KindL, GridPosition{X: 2, Y: 5})

	blocks := p.ActiveBlocks()
	if len(blocks) != 4 {
		t.Fatalf("ActiveBlocks returned %d blocks, want 4", len(blocks))
	}

	for _, blk := range blocks {
		if blk.Active {
			t.Error("merged block copies must be frozen (Active=false)")
		}
		if !blk.Rendered {
			t.Error("merged block copies must stay rendered")
		}
		if blk.Kind != KindL {
			t.Errorf("merged block kind = %s, want L", blk.Kind)
		}
	}

	// The piece itself is untouched by taking copies
	active := 0
	for row := 0; row < pieceFrame; row++ {
		for col := 0; col < pieceFrame; col++ {
			if p.Blocks[row][col].Active {
				active++
			}
		}
	}
	if active != 4 {
		t.Errorf("piece lost active blocks after ActiveBlocks: %d", active)
	}
}
