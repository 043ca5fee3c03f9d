package grid

import (
	"fmt"
	"math/rand"
)

// Grid is a rectangular field of cells addressed by (row, column).
// Dimensions are fixed at construction; one Grid exists per dungeon level
// and the whole instance is replaced on level transition.
type Grid struct {
	width  int // columns
	height int // rows
	cells  [][]*Cell
}

// New creates a width×height grid with neighbor pointers wired and every
// cell starting with no links and no wall flag set. Non-positive dimensions
// are a construction error, never clamped.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid: invalid dimensions %dx%d", width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([][]*Cell, height),
	}
	for row := 0; row < height; row++ {
		g.cells[row] = make([]*Cell, width)
		for col := 0; col < width; col++ {
			g.cells[row][col] = newCell(row, col)
		}
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := g.cells[row][col]
			c.North = g.At(row-1, col)
			c.South = g.At(row+1, col)
			c.West = g.At(row, col-1)
			c.East = g.At(row, col+1)
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Size returns the total cell count.
func (g *Grid) Size() int {
	return g.width * g.height
}

// At returns the cell at (row, column), or nil when the coordinates fall
// outside the grid. Out-of-range lookup is not an error; callers check.
func (g *Grid) At(row, column int) *Cell {
	if row < 0 || row >= g.height || column < 0 || column >= g.width {
		return nil
	}
	return g.cells[row][column]
}

// Link records a passage between a and b. Links are bidirectional unless
// bidi is false. Linking a cell to itself or to nil is rejected.
func (g *Grid) Link(a, b *Cell, bidi bool) error {
	if a == nil || b == nil {
		return fmt.Errorf("grid: cannot link nil cell")
	}
	if a == b {
		return fmt.Errorf("grid: cell (%d,%d) cannot link to itself", a.Row, a.Column)
	}
	a.links[b] = struct{}{}
	if bidi {
		b.links[a] = struct{}{}
	}
	return nil
}

// Unlink removes the passage between a and b (both directions when bidi).
func (g *Grid) Unlink(a, b *Cell, bidi bool) {
	if a == nil || b == nil {
		return
	}
	delete(a.links, b)
	if bidi {
		delete(b.links, a)
	}
}

// EachCell calls fn for every cell in row-major order. Returning false from
// fn stops the traversal early. The traversal is restartable: each call
// begins again at (0,0).
func (g *Grid) EachCell(fn func(*Cell) bool) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if !fn(g.cells[row][col]) {
				return
			}
		}
	}
}

// RandomCell returns a uniformly chosen cell using the provided source.
func (g *Grid) RandomCell(rng *rand.Rand) *Cell {
	return g.cells[rng.Intn(g.height)][rng.Intn(g.width)]
}
