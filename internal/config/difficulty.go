package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset modifies the config based on a difficulty preset.
// Easy starts small and grows slowly; hard starts large, grows every
// level, and never caps. Fixed disables growth entirely so every
// level reuses the starting dimensions. An unknown preset name is an
// error so a typo on the command line does not silently run a
// default game.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) error {
	switch preset {
	case DifficultyEasy:
		cfg.Maze.Width = 10
		cfg.Maze.Height = 6
		cfg.Progression.Enabled = true
		cfg.Progression.Growth = 1
		cfg.Progression.MaxWidth = 20
		cfg.Progression.MaxHeight = 12
		cfg.Player.Health = 15
	case DifficultyNormal:
		cfg.Progression.Enabled = true
	case DifficultyHard:
		cfg.Maze.Width = 20
		cfg.Maze.Height = 12
		cfg.Progression.Enabled = true
		cfg.Progression.Growth = 2
		cfg.Progression.MaxWidth = 0
		cfg.Progression.MaxHeight = 0
		cfg.Player.Health = 5
	case DifficultyFixed:
		cfg.Progression.Enabled = false
	default:
		return fmt.Errorf("unknown difficulty preset %q (want easy, normal, hard, or fixed)", preset)
	}
	return nil
}

// Growth returns the per-level growth in maze cells, honoring the
// enabled flag.
func (p ProgressionConfig) GrowthPerLevel() int {
	if !p.Enabled {
		return 0
	}
	return p.Growth
}
