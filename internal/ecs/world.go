package ecs

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-rogue/internal/grid"
)

// World owns the entity table, the ordered system list, and the current
// level's grid. One world exists per game session; entities and grid are
// replaced on level transition but the world persists.
type World struct {
	entities map[EntityID]*Entity
	nextID   EntityID

	tagIndex map[string]map[EntityID]*Entity

	systems []System

	grid  *grid.Grid
	level int
}

// NewWorld creates an empty world with no grid and level 0.
func NewWorld() *World {
	return &World{
		entities: make(map[EntityID]*Entity),
		nextID:   1,
		tagIndex: make(map[string]map[EntityID]*Entity),
	}
}

// CreateEntity allocates the next entity ID and adds the entity to the
// table.
func (w *World) CreateEntity() *Entity {
	e := NewEntity(w.nextID)
	w.nextID++
	w.entities[e.ID] = e
	return e
}

// AddEntity inserts a pre-built entity (snapshot load path) and indexes
// its tags. IDs at or above the current counter bump the counter so later
// CreateEntity calls cannot collide.
func (w *World) AddEntity(e *Entity) error {
	if _, exists := w.entities[e.ID]; exists {
		return fmt.Errorf("ecs: entity %d already in world", e.ID)
	}
	w.entities[e.ID] = e
	for _, tag := range e.Tags() {
		w.indexTag(e, tag)
	}
	if e.ID >= w.nextID {
		w.nextID = e.ID + 1
	}
	return nil
}

// RemoveEntity deletes an entity and its tag index entries.
func (w *World) RemoveEntity(id EntityID) {
	e, ok := w.entities[id]
	if !ok {
		return
	}
	for _, tag := range e.Tags() {
		w.dropTag(e, tag)
	}
	delete(w.entities, id)
}

// ClearEntities empties the entity table, used when a level is torn down.
// The ID counter keeps advancing so IDs stay unique across levels.
func (w *World) ClearEntities() {
	w.entities = make(map[EntityID]*Entity)
	w.tagIndex = make(map[string]map[EntityID]*Entity)
}

// Entity looks up an entity by ID.
func (w *World) Entity(id EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return len(w.entities)
}

// EachEntity visits entities in ascending ID order (creation order, since
// IDs are sequential). Deterministic iteration keeps system behavior and
// render output reproducible.
func (w *World) EachEntity(fn func(*Entity) bool) {
	for _, id := range w.sortedIDs() {
		if !fn(w.entities[id]) {
			return
		}
	}
}

func (w *World) sortedIDs() []EntityID {
	ids := make([]EntityID, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// TagEntity tags an entity and records it in the world's tag index.
func (w *World) TagEntity(e *Entity, tag string) {
	e.Tag(tag)
	w.indexTag(e, tag)
}

// UntagEntity removes a tag from the entity and the index.
func (w *World) UntagEntity(e *Entity, tag string) {
	e.Untag(tag)
	w.dropTag(e, tag)
}

func (w *World) indexTag(e *Entity, tag string) {
	bucket, ok := w.tagIndex[tag]
	if !ok {
		bucket = make(map[EntityID]*Entity)
		w.tagIndex[tag] = bucket
	}
	bucket[e.ID] = e
}

func (w *World) dropTag(e *Entity, tag string) {
	if bucket, ok := w.tagIndex[tag]; ok {
		delete(bucket, e.ID)
		if len(bucket) == 0 {
			delete(w.tagIndex, tag)
		}
	}
}

// EntitiesWithTag returns tagged entities in ascending ID order.
func (w *World) EntitiesWithTag(tag string) []*Entity {
	bucket, ok := w.tagIndex[tag]
	if !ok {
		return nil
	}
	ids := make([]EntityID, 0, len(bucket))
	for id := range bucket {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, bucket[id])
	}
	return out
}

// FirstWithTag returns the lowest-ID entity carrying the tag, or nil.
func (w *World) FirstWithTag(tag string) *Entity {
	tagged := w.EntitiesWithTag(tag)
	if len(tagged) == 0 {
		return nil
	}
	return tagged[0]
}

// AddSystem appends a system to the fixed processing order.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
}

// Systems returns the registered systems in processing order.
func (w *World) Systems() []System {
	return w.systems
}

// Update runs every system once, in registration order. The first system
// error aborts the turn.
func (w *World) Update() error {
	for _, s := range w.systems {
		if err := s.Update(w); err != nil {
			return fmt.Errorf("ecs: system %s: %w", s.Name(), err)
		}
	}
	return nil
}

// Grid returns the current level's grid, nil before the first level setup.
func (w *World) Grid() *grid.Grid {
	return w.grid
}

// SetGrid replaces the current grid (level transition).
func (w *World) SetGrid(g *grid.Grid) {
	w.grid = g
}

// Level returns the current level index, starting at 0 before setup.
func (w *World) Level() int {
	return w.level
}

// SetLevel sets the current level index.
func (w *World) SetLevel(level int) {
	w.level = level
}

// NextEntityID exposes the ID counter for snapshots.
func (w *World) NextEntityID() EntityID {
	return w.nextID
}

// SetNextEntityID restores the ID counter from a snapshot.
func (w *World) SetNextEntityID(id EntityID) {
	w.nextID = id
}
