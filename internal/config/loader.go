package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCubes loads the game configuration.
// Search order: customPath -> ~/.cubes/configs/cubes.yaml ->
// ./configs/cubes.yaml -> embedded default.
func LoadCubes(customPath string) (CubesConfig, error) {
	var cfg CubesConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cubes.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/cubes.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCubesYAML, &cfg); err != nil {
		return DefaultCubesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cubes", "configs", filename)
}

// pieceFrameSpan is the side length of a piece's local sub-grid. The board
// must be at least this wide and tall, and the spawn anchor must leave room
// for the whole frame, or a wide piece would spawn partially off the board.
const pieceFrameSpan = 4

// normalize fills zero-valued or unusable fields with defaults so a partial
// YAML file still yields a playable configuration.
func normalize(cfg CubesConfig) CubesConfig {
	def := DefaultCubesConfig()

	if cfg.Board.Columns < pieceFrameSpan {
		cfg.Board.Columns = def.Board.Columns
	}
	if cfg.Board.Rows < pieceFrameSpan {
		cfg.Board.Rows = def.Board.Rows
	}
	if cfg.Spawn.Column < 0 || cfg.Spawn.Column+pieceFrameSpan > cfg.Board.Columns {
		cfg.Spawn.Column = def.Spawn.Column
		if cfg.Spawn.Column+pieceFrameSpan > cfg.Board.Columns {
			cfg.Spawn.Column = cfg.Board.Columns - pieceFrameSpan
		}
	}
	if cfg.Spawn.Row < 0 || cfg.Spawn.Row+pieceFrameSpan > cfg.Board.Rows {
		cfg.Spawn.Row = def.Spawn.Row
	}
	if cfg.Gravity.UpdatesPerSecond <= 0 {
		cfg.Gravity.UpdatesPerSecond = def.Gravity.UpdatesPerSecond
	}
	if cfg.Scoring.PerPiece <= 0 {
		cfg.Scoring.PerPiece = def.Scoring.PerPiece
	}
	if len(cfg.Scoring.LineClear) == 0 {
		cfg.Scoring.LineClear = def.Scoring.LineClear
	}
	return cfg
}
