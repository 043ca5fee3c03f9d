// Package grid provides the dungeon grid: a rectangular field of cells with
// directional neighbor references and a passage-link graph carved by the
// maze generators. It contains no external dependencies to keep generation
// and pathfinding logic pure and testable.
package grid

// Cell is a single grid square. Its identity is (Row, Column) and its
// neighbor pointers are wired once at grid construction; only the link set
// and the wall flag change afterwards.
type Cell struct {
	Row    int
	Column int

	// Directional neighbors, nil at the grid edge. Fixed after construction.
	North *Cell
	South *Cell
	East  *Cell
	West  *Cell

	wall  bool
	links map[*Cell]struct{}
}

func newCell(row, column int) *Cell {
	return &Cell{
		Row:    row,
		Column: column,
		links:  make(map[*Cell]struct{}),
	}
}

// IsWall reports whether the cell is currently a wall tile.
func (c *Cell) IsWall() bool {
	return c.wall
}

// SetWall sets the cell's wall flag. Generators and the connectivity
// guarantor are the only intended callers.
func (c *Cell) SetWall(wall bool) {
	c.wall = wall
}

// Linked reports whether a passage exists between c and other.
func (c *Cell) Linked(other *Cell) bool {
	if other == nil {
		return false
	}
	_, ok := c.links[other]
	return ok
}

// Links returns the cells c has a passage to. The returned slice is a copy;
// mutating it does not affect the cell.
func (c *Cell) Links() []*Cell {
	out := make([]*Cell, 0, len(c.links))
	for l := range c.links {
		out = append(out, l)
	}
	return out
}

// LinkCount returns the number of passages out of c.
func (c *Cell) LinkCount() int {
	return len(c.links)
}

// Neighbors returns the non-nil directional neighbors in north, south,
// east, west order.
func (c *Cell) Neighbors() []*Cell {
	out := make([]*Cell, 0, 4)
	for _, n := range []*Cell{c.North, c.South, c.East, c.West} {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
