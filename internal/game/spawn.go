// Package game wires the ECS runtime to the maze generators: the movement
// and maze systems, the level spawner, the turn-loop session state machine,
// and world snapshot serialization.
package game

import (
	"github.com/vovakirdan/tui-rogue/internal/components"
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/ecs"
	"github.com/vovakirdan/tui-rogue/internal/grid"
)

// Glyphs and colors for the built-in entity kinds.
const (
	playerGlyph = '@'
	stairsGlyph = '>'
	wallGlyph   = '#'
)

// Fallback player stats when the session config leaves them unset.
const (
	defaultPlayerHealth = 10
	defaultVisionRadius = 8
)

// SpawnPlayer creates the player entity at the given cell with the given
// starting stats.
func SpawnPlayer(w *ecs.World, row, col, health, visionRadius int) *ecs.Entity {
	e := w.CreateEntity()
	e.MustAddComponent(&components.Position{Row: row, Col: col})
	e.MustAddComponent(components.NewMovement())
	e.MustAddComponent(&components.Render{Glyph: playerGlyph, Color: core.ColorBrightYellow})
	e.MustAddComponent(components.NewHealth(health, health))
	e.MustAddComponent(&components.Input{})
	e.MustAddComponent(&components.Visibility{Visible: true, Radius: visionRadius})
	w.TagEntity(e, components.TagPlayer)
	return e
}

// SpawnStairs creates the level exit entity at the given cell.
func SpawnStairs(w *ecs.World, row, col int) *ecs.Entity {
	e := w.CreateEntity()
	e.MustAddComponent(&components.Position{Row: row, Col: col})
	e.MustAddComponent(&components.Render{Glyph: stairsGlyph, Color: core.ColorBrightCyan})
	e.MustAddComponent(&components.Stairs{Down: true})
	e.MustAddComponent(&components.Visibility{Visible: true})
	w.TagEntity(e, components.TagStairs)
	return e
}

// SpawnWall creates one blocking wall entity at the given cell.
func SpawnWall(w *ecs.World, row, col int) *ecs.Entity {
	e := w.CreateEntity()
	e.MustAddComponent(&components.Position{Row: row, Col: col})
	e.MustAddComponent(&components.Render{Glyph: wallGlyph, Color: core.ColorGray})
	e.MustAddComponent(&components.Visibility{Visible: true})
	w.TagEntity(e, components.TagWall)
	w.TagEntity(e, components.TagBlocking)
	return e
}

// SpawnWalls materializes a wall entity for every wall cell of the grid.
func SpawnWalls(w *ecs.World, g *grid.Grid) int {
	count := 0
	g.EachCell(func(c *grid.Cell) bool {
		if c.IsWall() {
			SpawnWall(w, c.Row, c.Column)
			count++
		}
		return true
	})
	return count
}
