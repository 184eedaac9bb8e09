// Package config provides YAML-based game configuration loading and
// difficulty management for the cubes platform.
package config

// CubesConfig contains all configuration for the falling-cubes game.
type CubesConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// SpawnConfig defines where new pieces appear.
type SpawnConfig struct {
	Column int `yaml:"column"`
	Row    int `yaml:"row"`
}

// GravityConfig defines the falling cadence. The original prototype shipped
// with 1, 3 and 6 updates per second across its iterations; those map to the
// easy/normal/hard presets.
type GravityConfig struct {
	UpdatesPerSecond float64 `yaml:"updates_per_second"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	PerPiece  int   `yaml:"per_piece"`
	LineClear []int `yaml:"line_clear"` // bonus for 1..4 rows cleared at once
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// GravityForPreset returns the updates-per-second rate for a preset, or 0
// when the preset is unknown (keep the configured rate).
func GravityForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 0
	}
}

// ApplyCubesPreset overrides the gravity rate based on a difficulty preset.
// An empty or unknown preset leaves the config untouched.
func ApplyCubesPreset(cfg *CubesConfig, preset DifficultyPreset) {
	if rate := GravityForPreset(preset); rate > 0 {
		cfg.Gravity.UpdatesPerSecond = rate
	}
}
