package maze

import (
	"math/rand"

	"github.com/vovakirdan/tui-rogue/internal/grid"
	"github.com/vovakirdan/tui-rogue/internal/registry"
)

func init() {
	registry.Register(AldousBroderID, func() registry.Generator { return AldousBroder{} })
}

// AldousBroder performs an unbiased random walk and links every cell the
// walk first enters to the cell it arrived from, yielding a uniform
// spanning tree. Expected runtime grows superlinearly with cell count, so
// it is a poor default for large levels.
type AldousBroder struct{}

func (AldousBroder) ID() string    { return AldousBroderID }
func (AldousBroder) Title() string { return "Aldous-Broder" }

func (AldousBroder) Carve(g *grid.Grid, rng *rand.Rand) {
	current := g.RandomCell(rng)
	unvisited := g.Size() - 1

	for unvisited > 0 {
		neighbors := current.Neighbors()
		next := neighbors[rng.Intn(len(neighbors))]

		if next.LinkCount() == 0 {
			g.Link(current, next, true)
			unvisited--
		}
		current = next
	}
}
