package maze

import "github.com/vovakirdan/tui-rogue/internal/grid"

// EnsurePath guarantees a navigable route between start and end. It first
// runs a breadth-first reachability search over non-wall cells; when that
// already reaches end the call is a no-op. Otherwise it carves a Manhattan
// corridor from start toward end, horizontal steps before vertical, forcing
// every cell along the way to floor and linking consecutive corridor cells
// so the link graph stays consistent with the wall flags.
//
// Idempotent: calling it on an already-connected pair performs only the
// search and mutates nothing.
func EnsurePath(g *grid.Grid, start, end *grid.Cell) {
	if start == nil || end == nil || start == end {
		return
	}
	if wallReachable(start, end) {
		return
	}
	carveCorridor(g, start, end)
}

// wallReachable reports whether end can be reached from start moving only
// through non-wall cells (raw grid adjacency, not the link graph).
func wallReachable(start, end *grid.Cell) bool {
	if start.IsWall() || end.IsWall() {
		return false
	}

	visited := map[*grid.Cell]struct{}{start: {}}
	queue := []*grid.Cell{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == end {
			return true
		}
		for _, n := range current.Neighbors() {
			if n.IsWall() {
				continue
			}
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return false
}

// carveCorridor walks from start toward end one cell at a time, horizontal
// first then vertical, clearing walls and linking each step to the last.
func carveCorridor(g *grid.Grid, start, end *grid.Cell) {
	current := start
	current.SetWall(false)

	for current != end {
		var next *grid.Cell
		switch {
		case current.Column < end.Column:
			next = current.East
		case current.Column > end.Column:
			next = current.West
		case current.Row < end.Row:
			next = current.South
		default:
			next = current.North
		}

		next.SetWall(false)
		if !current.Linked(next) {
			g.Link(current, next, true)
		}
		current = next
	}
}
