package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rogue/internal/components"
	"github.com/vovakirdan/tui-rogue/internal/ecs"
)

// MovementSystem resolves pending movement intents: it computes the
// candidate position, rejects moves that leave the grid, enter a wall cell,
// or collide with a blocking entity, and commits accepted ones. Rejection
// is a normal turn outcome, logged at debug only.
type MovementSystem struct {
	logger *log.Logger
}

// NewMovementSystem creates the system. A nil logger disables logging.
func NewMovementSystem(logger *log.Logger) *MovementSystem {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &MovementSystem{logger: logger}
}

// Name implements ecs.System.
func (s *MovementSystem) Name() string { return "movement" }

// Update implements ecs.System.
func (s *MovementSystem) Update(w *ecs.World) error {
	w.EachEntity(func(e *ecs.Entity) bool {
		s.resolve(w, e)
		return true
	})
	return nil
}

func (s *MovementSystem) resolve(w *ecs.World, e *ecs.Entity) {
	inputC, ok := e.Component(components.TypeInput)
	if !ok {
		return
	}
	input := inputC.(*components.Input)
	dir, isMove := input.Intent.Direction()
	if !isMove {
		input.Clear()
		return
	}
	// Intent is consumed whether or not the move lands.
	defer input.Clear()

	posC, ok := e.Component(components.TypePosition)
	if !ok {
		return
	}
	pos := posC.(*components.Position)

	steps := 1
	if moveC, ok := e.Component(components.TypeMovement); ok {
		movement := moveC.(*components.Movement)
		if !movement.CanMove(dir) {
			s.logger.Debug("direction not permitted", "entity", e.ID, "dir", dir)
			return
		}
		steps = movement.Speed
	}

	dRow, dCol := dir.Delta()
	for i := 0; i < steps; i++ {
		row, col := pos.Row+dRow, pos.Col+dCol
		if !s.walkable(w, row, col) {
			s.logger.Debug("move rejected", "entity", e.ID, "dir", dir, "row", row, "col", col)
			return
		}
		pos.Row, pos.Col = row, col
	}
}

// walkable checks the candidate cell against grid bounds, wall tiles, and
// blocking entity occupancy. Walls are authoritative in the grid; wall
// entities carry the blocking tag so both checks agree.
func (s *MovementSystem) walkable(w *ecs.World, row, col int) bool {
	g := w.Grid()
	if g == nil {
		return false
	}
	cell := g.At(row, col)
	if cell == nil || cell.IsWall() {
		return false
	}
	for _, blocker := range w.EntitiesWithTag(components.TagBlocking) {
		if posC, ok := blocker.Component(components.TypePosition); ok {
			p := posC.(*components.Position)
			if p.Row == row && p.Col == col {
				return false
			}
		}
	}
	return true
}
