// Package config provides YAML-based game configuration loading and
// difficulty presets for the roguelike.
package config

// GameConfig contains all tunable parameters for a run.
type GameConfig struct {
	Maze        MazeConfig        `yaml:"maze"`
	Progression ProgressionConfig `yaml:"progression"`
	Player      PlayerConfig      `yaml:"player"`
}

// MazeConfig defines the shape of generated levels. Width and Height
// count maze cells; the rendered dungeon is roughly twice that size
// because walls occupy their own rows and columns.
type MazeConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Generator string `yaml:"generator"`
}

// ProgressionConfig defines how levels grow as the player descends.
type ProgressionConfig struct {
	Enabled   bool `yaml:"enabled"`
	Growth    int  `yaml:"growth"`     // cells added per axis per level
	MaxWidth  int  `yaml:"max_width"`  // cap in maze cells, 0 = uncapped
	MaxHeight int  `yaml:"max_height"` // cap in maze cells, 0 = uncapped
}

// PlayerConfig defines the player's starting stats.
type PlayerConfig struct {
	Health       int `yaml:"health"`
	VisionRadius int `yaml:"vision_radius"`
}
