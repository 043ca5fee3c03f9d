package config

import (
	_ "embed"
)

//go:embed defaults/rogue.yaml
var defaultRogueYAML []byte

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Maze: MazeConfig{
			Width:     15,
			Height:    9,
			Generator: "backtracker",
		},
		Progression: ProgressionConfig{
			Enabled:   true,
			Growth:    1,
			MaxWidth:  30,
			MaxHeight: 18,
		},
		Player: PlayerConfig{
			Health:       10,
			VisionRadius: 8,
		},
	}
}
