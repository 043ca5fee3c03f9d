package ecs

import (
	"errors"
	"fmt"
	"sort"
)

// EntityID is a unique identifier for an entity within a world.
type EntityID uint64

// ErrDuplicateComponent is returned when adding a component of a type the
// entity already holds. The entity is left unmodified.
var ErrDuplicateComponent = errors.New("ecs: duplicate component type")

// Entity is an identity plus a type-keyed bag of components and a set of
// string tags for cheap categorical filtering ("player", "stairs", "wall").
type Entity struct {
	ID EntityID

	components map[string]Component
	tags       map[string]struct{}
}

// NewEntity creates an entity with the given ID and no components or tags.
// Worlds assign IDs; use World.CreateEntity in normal play.
func NewEntity(id EntityID) *Entity {
	return &Entity{
		ID:         id,
		components: make(map[string]Component),
		tags:       make(map[string]struct{}),
	}
}

// AddComponent attaches a component. At most one component per type per
// entity: a second add of the same type fails and changes nothing.
func (e *Entity) AddComponent(c Component) error {
	if _, exists := e.components[c.Type()]; exists {
		return fmt.Errorf("%w: %q on entity %d", ErrDuplicateComponent, c.Type(), e.ID)
	}
	e.components[c.Type()] = c
	return nil
}

// MustAddComponent is AddComponent for construction sites where a
// duplicate indicates a programming bug.
func (e *Entity) MustAddComponent(c Component) *Entity {
	if err := e.AddComponent(c); err != nil {
		panic(err)
	}
	return e
}

// Component returns the component of the given type, if present.
func (e *Entity) Component(componentType string) (Component, bool) {
	c, ok := e.components[componentType]
	return c, ok
}

// HasComponent reports whether the entity holds a component of the type.
func (e *Entity) HasComponent(componentType string) bool {
	_, ok := e.components[componentType]
	return ok
}

// RemoveComponent detaches and returns the component of the given type,
// or nil when absent.
func (e *Entity) RemoveComponent(componentType string) Component {
	c, ok := e.components[componentType]
	if !ok {
		return nil
	}
	delete(e.components, componentType)
	return c
}

// ComponentCount returns the number of attached components.
func (e *Entity) ComponentCount() int {
	return len(e.components)
}

// Tag adds a tag to the entity. Prefer World.TagEntity so the world's tag
// index stays in sync.
func (e *Entity) Tag(tag string) {
	e.tags[tag] = struct{}{}
}

// Untag removes a tag from the entity.
func (e *Entity) Untag(tag string) {
	delete(e.tags, tag)
}

// HasTag reports whether the entity carries the tag.
func (e *Entity) HasTag(tag string) bool {
	_, ok := e.tags[tag]
	return ok
}

// Tags returns the entity's tags in sorted order.
func (e *Entity) Tags() []string {
	out := make([]string, 0, len(e.tags))
	for tag := range e.tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// EntityRecord is the generic serialized form of an entity.
type EntityRecord struct {
	ID         uint64   `yaml:"id" json:"id"`
	Components []Record `yaml:"components" json:"components"`
	Tags       []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// ToRecord serializes the entity: id, every component's record with its
// type tag injected, and tags. Components are emitted in sorted type order
// so output is deterministic.
func (e *Entity) ToRecord() EntityRecord {
	types := make([]string, 0, len(e.components))
	for t := range e.components {
		types = append(types, t)
	}
	sort.Strings(types)

	records := make([]Record, 0, len(types))
	for _, t := range types {
		rec := e.components[t].Encode()
		rec["type"] = t
		records = append(records, rec)
	}

	return EntityRecord{
		ID:         uint64(e.ID),
		Components: records,
		Tags:       e.Tags(),
	}
}

// EntityFromRecord reconstructs an entity, dispatching every component
// record through the codec registry by its type tag. An unknown type is an
// error; a partially loaded entity would silently corrupt game state.
func EntityFromRecord(rec EntityRecord) (*Entity, error) {
	e := NewEntity(EntityID(rec.ID))
	for _, compRec := range rec.Components {
		componentType := compRec.String("type")
		c, err := DecodeComponent(componentType, compRec)
		if err != nil {
			return nil, err
		}
		if err := e.AddComponent(c); err != nil {
			return nil, err
		}
	}
	for _, tag := range rec.Tags {
		e.Tag(tag)
	}
	return e, nil
}
