// Package maze implements the maze generation algorithms and the
// post-generation connectivity guarantor. Algorithms register themselves
// with the registry package; callers go through Generate so every
// algorithm's output gets the same wall finalize pass.
package maze

import (
	"math/rand"

	"github.com/vovakirdan/tui-rogue/internal/grid"
	"github.com/vovakirdan/tui-rogue/internal/registry"
)

// Generator IDs as registered. Exposed as constants so config and CLI
// defaults don't repeat string literals.
const (
	BinaryTreeID          = "binarytree"
	RecursiveBacktrackerID = "backtracker"
	AldousBroderID         = "aldousbroder"
)

// Generate runs the named generator on g and applies the wall finalize
// pass. Returns an error only for an unknown generator ID.
func Generate(g *grid.Grid, generatorID string, rng *rand.Rand) error {
	gen, err := registry.Create(generatorID)
	if err != nil {
		return err
	}
	gen.Carve(g, rng)
	Finalize(g)
	return nil
}

// Finalize derives wall state from the link graph: a cell with zero links
// is a wall, a cell with at least one link is floor. Applied uniformly
// after every algorithm so output is consistent regardless of which ran.
func Finalize(g *grid.Grid) {
	g.EachCell(func(c *grid.Cell) bool {
		c.SetWall(c.LinkCount() == 0)
		return true
	})
}
