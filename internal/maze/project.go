package maze

import "github.com/vovakirdan/tui-rogue/internal/grid"

// Project expands a carved logical maze onto a playable dungeon grid of
// (2w+1)×(2h+1) cells. Logical cell (r,c) maps to dungeon cell
// (2r+1, 2c+1); the cell between two logical neighbors is floor exactly
// when they are linked, and everything else (including the border) is
// wall. Floor cells are linked through the opened gaps, so on the
// projected grid wall state and link count stay consistent and the link
// graph mirrors logical connectivity.
//
// The projection puts the entry corner at (1,1) and the exit corner at
// (height-2, width-2) of the dungeon grid.
// Entry returns the entry cell of a projected dungeon grid.
func Entry(g *grid.Grid) *grid.Cell {
	return g.At(1, 1)
}

// Exit returns the exit cell of a projected dungeon grid.
func Exit(g *grid.Grid) *grid.Cell {
	return g.At(g.Height()-2, g.Width()-2)
}

func Project(logical *grid.Grid) *grid.Grid {
	width := 2*logical.Width() + 1
	height := 2*logical.Height() + 1
	dungeon, err := grid.New(width, height)
	if err != nil {
		// Unreachable: a valid logical grid always projects to valid dims.
		panic(err)
	}

	dungeon.EachCell(func(c *grid.Cell) bool {
		c.SetWall(true)
		return true
	})

	logical.EachCell(func(c *grid.Cell) bool {
		room := dungeon.At(2*c.Row+1, 2*c.Column+1)
		room.SetWall(false)

		// Open east and south gaps for links; the symmetric directions are
		// handled when the neighbor is visited.
		if c.East != nil && c.Linked(c.East) {
			gap := dungeon.At(2*c.Row+1, 2*c.Column+2)
			east := dungeon.At(2*c.Row+1, 2*c.Column+3)
			gap.SetWall(false)
			east.SetWall(false)
			dungeon.Link(room, gap, true)
			dungeon.Link(gap, east, true)
		}
		if c.South != nil && c.Linked(c.South) {
			gap := dungeon.At(2*c.Row+2, 2*c.Column+1)
			south := dungeon.At(2*c.Row+3, 2*c.Column+1)
			gap.SetWall(false)
			south.SetWall(false)
			dungeon.Link(room, gap, true)
			dungeon.Link(gap, south, true)
		}
		return true
	})

	return dungeon
}
