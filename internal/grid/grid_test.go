package grid

import (
	"math/rand"
	"testing"
)

func TestNewRejectsInvalidDimensions(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -1, 5},
		{"negative height", 5, -3},
		{"both zero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.w, tc.h); err == nil {
				t.Errorf("New(%d, %d) should fail", tc.w, tc.h)
			}
		})
	}
}

func TestAtBounds(t *testing.T) {
	g, err := New(4, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if c := g.At(0, 0); c == nil || c.Row != 0 || c.Column != 0 {
		t.Errorf("At(0,0) = %v, want cell (0,0)", c)
	}
	if c := g.At(2, 3); c == nil {
		t.Error("At(2,3) should be in bounds for 4x3 grid")
	}

	outside := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {100, 100}}
	for _, p := range outside {
		if c := g.At(p[0], p[1]); c != nil {
			t.Errorf("At(%d,%d) = %v, want nil", p[0], p[1], c)
		}
	}
}

func TestNeighborWiring(t *testing.T) {
	g, _ := New(3, 3)

	center := g.At(1, 1)
	if center.North != g.At(0, 1) || center.South != g.At(2, 1) ||
		center.West != g.At(1, 0) || center.East != g.At(1, 2) {
		t.Error("center cell neighbors wired incorrectly")
	}

	corner := g.At(0, 0)
	if corner.North != nil || corner.West != nil {
		t.Error("corner cell should have nil north/west neighbors")
	}
	if corner.South != g.At(1, 0) || corner.East != g.At(0, 1) {
		t.Error("corner cell south/east neighbors wired incorrectly")
	}
}

func TestLinkSymmetry(t *testing.T) {
	g, _ := New(3, 3)
	a := g.At(0, 0)
	b := g.At(0, 1)

	if err := g.Link(a, b, true); err != nil {
		t.Fatalf("Link: %v", err)
	}
	if !a.Linked(b) || !b.Linked(a) {
		t.Error("bidirectional link should be symmetric")
	}

	g.Unlink(a, b, true)
	if a.Linked(b) || b.Linked(a) {
		t.Error("Unlink should remove both directions")
	}
}

func TestLinkUnidirectional(t *testing.T) {
	g, _ := New(3, 3)
	a := g.At(1, 1)
	b := g.At(1, 2)

	if err := g.Link(a, b, false); err != nil {
		t.Fatalf("Link: %v", err)
	}
	if !a.Linked(b) {
		t.Error("a should link to b")
	}
	if b.Linked(a) {
		t.Error("b should not link back to a")
	}
}

func TestSelfLinkRejected(t *testing.T) {
	g, _ := New(3, 3)
	g.EachCell(func(c *Cell) bool {
		if err := g.Link(c, c, true); err == nil {
			t.Errorf("self-link of (%d,%d) should fail", c.Row, c.Column)
		}
		return true
	})
}

func TestEachCellRowMajor(t *testing.T) {
	g, _ := New(3, 2)

	var visited [][2]int
	g.EachCell(func(c *Cell) bool {
		visited = append(visited, [2]int{c.Row, c.Column})
		return true
	})

	want := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if len(visited) != len(want) {
		t.Fatalf("visited %d cells, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("cell %d visited as %v, want %v", i, visited[i], want[i])
		}
	}

	// Restartable: second traversal yields the same first cell.
	g.EachCell(func(c *Cell) bool {
		if c.Row != 0 || c.Column != 0 {
			t.Errorf("restarted traversal began at (%d,%d)", c.Row, c.Column)
		}
		return false
	})
}

func TestEachCellEarlyStop(t *testing.T) {
	g, _ := New(5, 5)
	count := 0
	g.EachCell(func(c *Cell) bool {
		count++
		return count < 7
	})
	if count != 7 {
		t.Errorf("traversal visited %d cells after early stop, want 7", count)
	}
}

func TestRandomCellDeterministic(t *testing.T) {
	g, _ := New(10, 10)

	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		a := g.RandomCell(r1)
		b := g.RandomCell(r2)
		if a != b {
			t.Fatalf("pick %d diverged: (%d,%d) vs (%d,%d)", i, a.Row, a.Column, b.Row, b.Column)
		}
	}
}
