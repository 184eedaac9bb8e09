package config

import (
	_ "embed"
)

//go:embed defaults/cubes.yaml
var defaultCubesYAML []byte

// DefaultCubesConfig returns the default game configuration, matching the
// mature variant of the original prototype: 10x20 board, spawn at (4, 0),
// three gravity updates per second.
func DefaultCubesConfig() CubesConfig {
	return CubesConfig{
		Board: BoardConfig{
			Columns: 10,
			Rows:    20,
		},
		Spawn: SpawnConfig{
			Column: 4,
			Row:    0,
		},
		Gravity: GravityConfig{
			UpdatesPerSecond: 3,
		},
		Scoring: ScoringConfig{
			PerPiece:  10,
			LineClear: []int{100, 300, 500, 800},
		},
	}
}
