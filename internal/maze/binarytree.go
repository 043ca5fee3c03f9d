package maze

import (
	"math/rand"

	"github.com/vovakirdan/tui-rogue/internal/grid"
	"github.com/vovakirdan/tui-rogue/internal/registry"
)

func init() {
	registry.Register(BinaryTreeID, func() registry.Generator { return BinaryTree{} })
}

// BinaryTree links every cell to its north or east neighbor, chosen at
// random when both exist. The row-major scan guarantees every non-corner
// cell gets exactly one link into the already-linked region, so the result
// is always fully connected, with the characteristic corridor bias along
// the north and east edges.
type BinaryTree struct{}

func (BinaryTree) ID() string    { return BinaryTreeID }
func (BinaryTree) Title() string { return "Binary Tree" }

func (BinaryTree) Carve(g *grid.Grid, rng *rand.Rand) {
	g.EachCell(func(c *grid.Cell) bool {
		switch {
		case c.North != nil && c.East != nil:
			if rng.Intn(2) == 0 {
				g.Link(c, c.North, true)
			} else {
				g.Link(c, c.East, true)
			}
		case c.North != nil:
			g.Link(c, c.North, true)
		case c.East != nil:
			g.Link(c, c.East, true)
		}
		// The north-east corner has neither; it gets linked to by others.
		return true
	})
}
