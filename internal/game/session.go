package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rogue/internal/components"
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/ecs"
)

// State is the session's turn-loop state.
type State int

const (
	// StateIdle is the initial state before the first SetupLevel call.
	StateIdle State = iota
	// StateRunning means the session is consuming one input per turn.
	StateRunning
	// StateTerminated is entered on the quit intent; no further turns run.
	StateTerminated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

// TurnResult reports what a single turn did.
type TurnResult struct {
	LevelCompleted bool // Player reached the stairs this turn
	Level          int  // Level index after the turn
	Terminated     bool // Quit intent consumed; session is over
}

// Session owns the world and drives the turn loop: exactly one input
// action is consumed per turn, processed strictly in input → movement →
// level-check order, single-threaded. One session exists per running game.
type Session struct {
	world  *ecs.World
	maze   *MazeSystem
	logger *log.Logger

	cfg          core.RuntimeConfig
	playerHealth int
	visionRadius int
	state        State
	turns        int

	started time.Time
}

// SessionConfig bundles session construction parameters beyond the
// runtime config.
type SessionConfig struct {
	Runtime core.RuntimeConfig
	Growth  int // logical cells added per dimension per level
	MaxW    int // logical width cap, 0 = uncapped
	MaxH    int // logical height cap, 0 = uncapped

	PlayerHealth int // starting/max health, 0 = default
	VisionRadius int // 0 = default
}

// NewSession builds a world with the movement and maze systems installed
// in fixed order. A zero seed is replaced with the current time, after
// which all generation is deterministic. A nil logger disables logging.
func NewSession(cfg SessionConfig, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := cfg.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if cfg.PlayerHealth <= 0 {
		cfg.PlayerHealth = defaultPlayerHealth
	}
	if cfg.VisionRadius <= 0 {
		cfg.VisionRadius = defaultVisionRadius
	}

	w := ecs.NewWorld()
	mazeSys := NewMazeSystem(MazeSystemConfig{
		GeneratorID: rt.Generator,
		Seed:        rt.Seed,
		Width:       rt.Width,
		Height:      rt.Height,
		Growth:      cfg.Growth,
		MaxWidth:    cfg.MaxW,
		MaxHeight:   cfg.MaxH,
	}, logger)
	w.AddSystem(mazeSys)
	w.AddSystem(NewMovementSystem(logger))

	return &Session{
		world:        w,
		maze:         mazeSys,
		logger:       logger,
		cfg:          rt,
		playerHealth: cfg.PlayerHealth,
		visionRadius: cfg.VisionRadius,
		state:        StateIdle,
		started:      time.Now(),
	}
}

// World exposes the session's world, mainly for rendering and tests.
func (s *Session) World() *ecs.World { return s.world }

// State returns the current turn-loop state.
func (s *Session) State() State { return s.state }

// Level returns the current level index (1-based after setup).
func (s *Session) Level() int { return s.world.Level() }

// Turns returns how many turns have been consumed this session.
func (s *Session) Turns() int { return s.turns }

// Seed returns the effective RNG seed the session runs with.
func (s *Session) Seed() int64 { return s.cfg.Seed }

// Generator returns the maze generator ID in use.
func (s *Session) Generator() string { return s.cfg.Generator }

// Duration returns the wall-clock time since the session started.
func (s *Session) Duration() time.Duration { return time.Since(s.started) }

// SetupLevel generates the first level and spawns the player and stairs.
// Valid only in the idle state.
func (s *Session) SetupLevel() error {
	if s.state != StateIdle {
		return fmt.Errorf("game: SetupLevel in state %s", s.state)
	}
	s.world.SetLevel(1)
	if err := s.populateLevel(); err != nil {
		return err
	}
	s.state = StateRunning
	return nil
}

// populateLevel runs the maze system for the current level index and
// places the player at the entry and the stairs at the exit.
func (s *Session) populateLevel() error {
	if err := s.maze.Update(s.world); err != nil {
		return err
	}
	g := s.world.Grid()
	entry := s.maze.Entry(g)
	exit := s.maze.Exit(g)
	SpawnStairs(s.world, exit.Row, exit.Column)
	SpawnPlayer(s.world, entry.Row, entry.Column, s.playerHealth, s.visionRadius)
	return nil
}

// RunTurn consumes exactly one input action: quit terminates the session;
// a movement action becomes the player's intent, the movement system
// resolves it, and the level-completion check runs immediately after.
// Any other action is a no-op turn.
func (s *Session) RunTurn(action core.Action) (TurnResult, error) {
	res := TurnResult{Level: s.world.Level()}

	switch s.state {
	case StateIdle:
		return res, fmt.Errorf("game: RunTurn before SetupLevel")
	case StateTerminated:
		res.Terminated = true
		return res, nil
	}

	if action == core.ActionQuit {
		s.state = StateTerminated
		res.Terminated = true
		s.logger.Info("session terminated", "turns", s.turns, "level", s.world.Level())
		return res, nil
	}

	s.turns++

	player := s.world.FirstWithTag(components.TagPlayer)
	if player == nil {
		return res, fmt.Errorf("game: no player entity")
	}
	if inputC, ok := player.Component(components.TypeInput); ok {
		inputC.(*components.Input).Intent = action
	}

	if err := s.world.Update(); err != nil {
		return res, err
	}

	if s.levelComplete(player) {
		if err := s.advanceLevel(); err != nil {
			return res, err
		}
		res.LevelCompleted = true
	}
	res.Level = s.world.Level()
	return res, nil
}

// levelComplete compares the player's position to the stairs entity's
// position; exact equality triggers the transition.
func (s *Session) levelComplete(player *ecs.Entity) bool {
	stairs := s.world.FirstWithTag(components.TagStairs)
	if stairs == nil {
		return false
	}
	pPos, ok := player.Component(components.TypePosition)
	if !ok {
		return false
	}
	sPos, ok := stairs.Component(components.TypePosition)
	if !ok {
		return false
	}
	p := pPos.(*components.Position)
	q := sPos.(*components.Position)
	return p.Row == q.Row && p.Col == q.Col
}

// advanceLevel tears the level down and rebuilds it fresh: clears all
// entities, increments the level counter, regenerates the grid, and
// rematerializes walls, player, and stairs.
func (s *Session) advanceLevel() error {
	s.world.ClearEntities()
	s.world.SetLevel(s.world.Level() + 1)
	s.logger.Info("level complete", "next", s.world.Level(), "turns", s.turns)
	return s.populateLevel()
}
