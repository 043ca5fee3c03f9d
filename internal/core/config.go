package core

// RuntimeConfig contains the parameters a game session is created with.
// A fixed seed makes maze generation and entity layout fully reproducible.
type RuntimeConfig struct {
	Width     int    // Logical maze width for the first level
	Height    int    // Logical maze height for the first level
	Generator string // Maze generator ID (see internal/registry)
	Seed      int64  // RNG seed, 0 means derive from current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults. The
// playable dungeon is roughly twice the logical maze dimensions, so the
// defaults fit a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:     15,
		Height:    9,
		Generator: "backtracker",
		Seed:      0,
	}
}
