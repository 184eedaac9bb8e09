package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCubesCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubes.yaml")
	data := []byte(`
board:
  columns: 8
  rows: 16
gravity:
  updates_per_second: 6
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadCubes(path)
	if err != nil {
		t.Fatalf("LoadCubes() failed: %v", err)
	}

	if cfg.Board.Columns != 8 || cfg.Board.Rows != 16 {
		t.Errorf("board = %dx%d, want 8x16", cfg.Board.Columns, cfg.Board.Rows)
	}
	if cfg.Gravity.UpdatesPerSecond != 6 {
		t.Errorf("gravity = %v, want 6", cfg.Gravity.UpdatesPerSecond)
	}
	// Omitted sections fall back to defaults
	if cfg.Scoring.PerPiece != 10 {
		t.Errorf("per-piece score = %d, want default 10", cfg.Scoring.PerPiece)
	}
	if len(cfg.Scoring.LineClear) != 4 {
		t.Errorf("line clear table has %d entries, want 4", len(cfg.Scoring.LineClear))
	}
}

func TestLoadCubesCustomPathMissing(t *testing.T) {
	_, err := LoadCubes(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadCubesDefaults(t *testing.T) {
	// No custom path: falls through to the embedded defaults
	// (assuming no user/local config in the test environment).
	cfg, err := LoadCubes("")
	if err != nil {
		t.Fatalf("LoadCubes() failed: %v", err)
	}

	if cfg.Board.Columns <= 0 || cfg.Board.Rows <= 0 {
		t.Errorf("invalid board %dx%d", cfg.Board.Columns, cfg.Board.Rows)
	}
	if cfg.Gravity.UpdatesPerSecond <= 0 {
		t.Errorf("invalid gravity %v", cfg.Gravity.UpdatesPerSecond)
	}
	if cfg.Spawn.Column < 0 || cfg.Spawn.Column >= cfg.Board.Columns {
		t.Errorf("spawn column %d outside board", cfg.Spawn.Column)
	}
}

func TestNormalizeRejectsBadSpawn(t *testing.T) {
	cfg := DefaultCubesConfig()
	cfg.Spawn.Column = 99

	cfg = normalize(cfg)
	if cfg.Spawn.Column != 4 {
		t.Errorf("spawn column = %d, want default 4", cfg.Spawn.Column)
	}
}

func TestNormalizeSpawnFrameFitsBoard(t *testing.T) {
	tests := []struct {
		name     string
		columns  int
		spawnCol int
		wantCol  int
	}{
		{"default spawn fits wide board", 10, 4, 4},
		{"spawn too close to right edge", 10, 8, 4},
		{"narrow board with overflowing spawn", 6, 4, 2},
		{"narrow board with fitting spawn", 6, 1, 1},
		{"board too small for any piece", 3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCubesConfig()
			cfg.Board.Columns = tt.columns
			cfg.Spawn.Column = tt.spawnCol

			cfg = normalize(cfg)
			if cfg.Spawn.Column != tt.wantCol {
				t.Errorf("spawn column = %d, want %d", cfg.Spawn.Column, tt.wantCol)
			}
			if cfg.Spawn.Column+pieceFrameSpan > cfg.Board.Columns {
				t.Errorf("spawn column %d leaves no room for a %d-wide piece on a %d-column board",
					cfg.Spawn.Column, pieceFrameSpan, cfg.Board.Columns)
			}
		})
	}
}

func TestGravityForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   float64
	}{
		{DifficultyEasy, 1},
		{DifficultyNormal, 3},
		{DifficultyHard, 6},
		{"", 0},
		{"ultra", 0},
	}
	for _, tt := range tests {
		if got := GravityForPreset(tt.preset); got != tt.want {
			t.Errorf("GravityForPreset(%q) = %v, want %v", tt.preset, got, tt.want)
		}
	}
}

func TestApplyCubesPreset(t *testing.T) {
	cfg := DefaultCubesConfig()

	ApplyCubesPreset(&cfg, DifficultyHard)
	if cfg.Gravity.UpdatesPerSecond != 6 {
		t.Errorf("gravity = %v after hard preset, want 6", cfg.Gravity.UpdatesPerSecond)
	}

	// Unknown preset keeps the configured rate
	ApplyCubesPreset(&cfg, "mystery")
	if cfg.Gravity.UpdatesPerSecond != 6 {
		t.Errorf("gravity = %v after unknown preset, want unchanged 6", cfg.Gravity.UpdatesPerSecond)
	}
}
