package maze

import (
	"math/rand"

	"github.com/vovakirdan/tui-rogue/internal/grid"
	"github.com/vovakirdan/tui-rogue/internal/registry"
)

func init() {
	registry.Register(RecursiveBacktrackerID, func() registry.Generator { return RecursiveBacktracker{} })
}

// RecursiveBacktracker carves a depth-first spanning tree: from the top of
// the stack, link to a random unvisited grid-neighbor and push it, or pop
// when none remain. Produces long winding passages with few branch points.
type RecursiveBacktracker struct{}

func (RecursiveBacktracker) ID() string    { return RecursiveBacktrackerID }
func (RecursiveBacktracker) Title() string { return "Recursive Backtracker" }

func (RecursiveBacktracker) Carve(g *grid.Grid, rng *rand.Rand) {
	stack := []*grid.Cell{g.RandomCell(rng)}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var unvisited []*grid.Cell
		for _, n := range current.Neighbors() {
			if n.LinkCount() == 0 {
				unvisited = append(unvisited, n)
			}
		}

		if len(unvisited) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := unvisited[rng.Intn(len(unvisited))]
		g.Link(current, next, true)
		stack = append(stack, next)
	}
}
