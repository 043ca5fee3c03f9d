package maze

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-rogue/internal/grid"
	"github.com/vovakirdan/tui-rogue/internal/registry"
)

var allGenerators = []string{BinaryTreeID, RecursiveBacktrackerID, AldousBroderID}

func generate(t *testing.T, id string, w, h int, seed int64) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	if err := Generate(g, id, rand.New(rand.NewSource(seed))); err != nil {
		t.Fatalf("Generate(%s): %v", id, err)
	}
	return g
}

func TestGeneratorsRegistered(t *testing.T) {
	for _, id := range allGenerators {
		if !registry.Exists(id) {
			t.Errorf("generator %q not registered", id)
		}
	}
	if got := len(registry.List()); got < len(allGenerators) {
		t.Errorf("registry lists %d generators, want at least %d", got, len(allGenerators))
	}
}

func TestGenerateUnknownID(t *testing.T) {
	g, _ := grid.New(4, 4)
	if err := Generate(g, "nope", rand.New(rand.NewSource(1))); err == nil {
		t.Error("Generate with unknown ID should fail")
	}
}

func TestWallLinkConsistency(t *testing.T) {
	for _, id := range allGenerators {
		t.Run(id, func(t *testing.T) {
			g := generate(t, id, 12, 9, 7)
			g.EachCell(func(c *grid.Cell) bool {
				if c.IsWall() != (c.LinkCount() == 0) {
					t.Errorf("(%d,%d): wall=%v but links=%d", c.Row, c.Column, c.IsWall(), c.LinkCount())
				}
				return true
			})
		})
	}
}

func TestLinkSymmetryAfterGeneration(t *testing.T) {
	for _, id := range allGenerators {
		t.Run(id, func(t *testing.T) {
			g := generate(t, id, 10, 10, 21)
			g.EachCell(func(c *grid.Cell) bool {
				for _, l := range c.Links() {
					if !l.Linked(c) {
						t.Errorf("link (%d,%d)->(%d,%d) not symmetric", c.Row, c.Column, l.Row, l.Column)
					}
				}
				return true
			})
		})
	}
}

func TestSpanningTreeConnectivity(t *testing.T) {
	// All three algorithms produce spanning trees: every cell reachable
	// from any other over the link graph.
	for _, id := range allGenerators {
		t.Run(id, func(t *testing.T) {
			g := generate(t, id, 8, 8, 99)
			dm := grid.DistancesFrom(g.At(0, 0))
			g.EachCell(func(c *grid.Cell) bool {
				if _, ok := dm.Distance(c); !ok {
					t.Errorf("cell (%d,%d) unreachable from origin", c.Row, c.Column)
				}
				return true
			})
		})
	}
}

func TestBinaryTreeNoWalls(t *testing.T) {
	// Binary tree links every cell, so the finalize pass marks none as wall.
	g := generate(t, BinaryTreeID, 15, 11, 3)
	g.EachCell(func(c *grid.Cell) bool {
		if c.IsWall() {
			t.Errorf("binary tree left wall at (%d,%d)", c.Row, c.Column)
		}
		return true
	})
}

func TestBinaryTreeCorridorBias(t *testing.T) {
	// Row 0 cells have no north neighbor, so each links east: the top row
	// is always one unbroken corridor.
	g := generate(t, BinaryTreeID, 10, 6, 123)
	for col := 0; col < g.Width()-1; col++ {
		if !g.At(0, col).Linked(g.At(0, col+1)) {
			t.Errorf("top-row corridor broken between columns %d and %d", col, col+1)
		}
	}
	// Likewise the east column always links north.
	last := g.Width() - 1
	for row := 1; row < g.Height(); row++ {
		if !g.At(row, last).Linked(g.At(row-1, last)) {
			t.Errorf("east-column corridor broken between rows %d and %d", row-1, row)
		}
	}
}

func TestGenerationDeterministic(t *testing.T) {
	for _, id := range allGenerators {
		t.Run(id, func(t *testing.T) {
			a := generate(t, id, 9, 9, 4242)
			b := generate(t, id, 9, 9, 4242)

			a.EachCell(func(c *grid.Cell) bool {
				other := b.At(c.Row, c.Column)
				if c.IsWall() != other.IsWall() || c.LinkCount() != other.LinkCount() {
					t.Errorf("(%d,%d) diverged between identically seeded runs", c.Row, c.Column)
				}
				return true
			})
		})
	}
}
