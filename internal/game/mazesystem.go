package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rogue/internal/ecs"
	"github.com/vovakirdan/tui-rogue/internal/grid"
	"github.com/vovakirdan/tui-rogue/internal/maze"
)

// MazeSystem builds the grid for the world's current level: it runs the
// configured generator, guarantees a path between entry and exit, and
// materializes one wall entity per wall cell. Idempotent within a level:
// re-running for the level it last generated is a no-op, so it can sit in
// the world's system list without regenerating every turn.
type MazeSystem struct {
	logger      *log.Logger
	generatorID string
	baseSeed    int64

	baseWidth  int
	baseHeight int
	growth     int // cells added per dimension per level
	maxWidth   int
	maxHeight  int

	lastLevel int
}

// MazeSystemConfig bundles the generation parameters.
type MazeSystemConfig struct {
	GeneratorID string
	Seed        int64
	Width       int
	Height      int
	Growth      int
	MaxWidth    int
	MaxHeight   int
}

// NewMazeSystem creates the system. A nil logger disables logging.
func NewMazeSystem(cfg MazeSystemConfig, logger *log.Logger) *MazeSystem {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &MazeSystem{
		logger:      logger,
		generatorID: cfg.GeneratorID,
		baseSeed:    cfg.Seed,
		baseWidth:   cfg.Width,
		baseHeight:  cfg.Height,
		growth:      cfg.Growth,
		maxWidth:    cfg.MaxWidth,
		maxHeight:   cfg.MaxHeight,
		lastLevel:   0,
	}
}

// Name implements ecs.System.
func (s *MazeSystem) Name() string { return "maze" }

// DimsFor returns the grid dimensions for a level index (levels start at
// 1). Dimensions grow with the level up to the configured caps.
func (s *MazeSystem) DimsFor(level int) (width, height int) {
	width = s.baseWidth + (level-1)*s.growth
	height = s.baseHeight + (level-1)*s.growth
	if s.maxWidth > 0 && width > s.maxWidth {
		width = s.maxWidth
	}
	if s.maxHeight > 0 && height > s.maxHeight {
		height = s.maxHeight
	}
	return width, height
}

// levelSeed derives a per-level seed so any level regenerates identically
// from the base seed alone, including after a snapshot load.
func (s *MazeSystem) levelSeed(level int) int64 {
	return s.baseSeed + int64(level)
}

// Update implements ecs.System: generates the grid and wall entities for
// the world's current level, once per level. The maze is carved on a
// logical grid of DimsFor cells and projected to the playable dungeon
// grid, which puts the entry at (1,1) and the exit at
// (height-2, width-2).
func (s *MazeSystem) Update(w *ecs.World) error {
	level := w.Level()
	if level == s.lastLevel {
		return nil
	}

	width, height := s.DimsFor(level)
	logical, err := grid.New(width, height)
	if err != nil {
		return fmt.Errorf("game: level %d: %w", level, err)
	}

	rng := rand.New(rand.NewSource(s.levelSeed(level)))
	if err := maze.Generate(logical, s.generatorID, rng); err != nil {
		return fmt.Errorf("game: level %d: %w", level, err)
	}

	dungeon := maze.Project(logical)
	maze.EnsurePath(dungeon, maze.Entry(dungeon), maze.Exit(dungeon))

	w.SetGrid(dungeon)
	walls := SpawnWalls(w, dungeon)
	s.lastLevel = level

	s.logger.Info("level generated",
		"level", level, "generator", s.generatorID,
		"width", dungeon.Width(), "height", dungeon.Height(), "walls", walls)
	return nil
}

// Entry returns the fixed entry cell of the current grid.
func (s *MazeSystem) Entry(g *grid.Grid) *grid.Cell {
	return maze.Entry(g)
}

// Exit returns the fixed exit cell of the current grid.
func (s *MazeSystem) Exit(g *grid.Grid) *grid.Cell {
	return maze.Exit(g)
}
