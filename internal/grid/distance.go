package grid

import "errors"

// ErrNoPath is returned by PathTo when the goal is unreachable from the
// distance map's source. Distinct from a zero-length path, which only
// occurs when source and goal are the same cell.
var ErrNoPath = errors.New("grid: no path to goal")

// DistanceMap records the breadth-first hop count from a source cell to
// every cell reachable over the link graph. A cell absent from the map is
// unreachable. Maps are ephemeral: recomputed per query, never persisted.
type DistanceMap struct {
	source    *Cell
	distances map[*Cell]int
}

// DistancesFrom performs a breadth-first expansion over the link graph
// (not raw grid adjacency) starting at source.
func DistancesFrom(source *Cell) *DistanceMap {
	dm := &DistanceMap{
		source:    source,
		distances: map[*Cell]int{source: 0},
	}

	frontier := []*Cell{source}
	for len(frontier) > 0 {
		next := frontier[:0:0]
		for _, cell := range frontier {
			for linked := range cell.links {
				if _, seen := dm.distances[linked]; seen {
					continue
				}
				dm.distances[linked] = dm.distances[cell] + 1
				next = append(next, linked)
			}
		}
		frontier = next
	}
	return dm
}

// Source returns the cell the map was computed from.
func (dm *DistanceMap) Source() *Cell {
	return dm.source
}

// Distance returns the hop count from the source to cell, and whether the
// cell is reachable at all.
func (dm *DistanceMap) Distance(cell *Cell) (int, bool) {
	d, ok := dm.distances[cell]
	return d, ok
}

// PathTo reconstructs a source-to-goal path by walking the distance
// gradient backwards from goal: at each step move to any linked neighbor
// whose distance is exactly one less. Returns ErrNoPath when goal is not
// in the map.
func (dm *DistanceMap) PathTo(goal *Cell) ([]*Cell, error) {
	if _, ok := dm.distances[goal]; !ok {
		return nil, ErrNoPath
	}

	path := []*Cell{goal}
	current := goal
	for current != dm.source {
		want := dm.distances[current] - 1
		var step *Cell
		for linked := range current.links {
			if d, ok := dm.distances[linked]; ok && d == want {
				step = linked
				break
			}
		}
		if step == nil {
			// Cannot happen on a map produced by DistancesFrom: every
			// discovered cell has a predecessor one hop closer.
			return nil, ErrNoPath
		}
		path = append(path, step)
		current = step
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// PathExists reports whether goal is reachable from source over the link
// graph. Convenience over computing and inspecting a full map.
func PathExists(source, goal *Cell) bool {
	if source == nil || goal == nil {
		return false
	}
	_, ok := DistancesFrom(source).Distance(goal)
	return ok
}
