// Package ecs provides the entity-component-system data model: entities as
// type-keyed bags of serializable components, a process-wide component
// codec registry for generic deserialization, and the world that owns the
// entity table and runs systems in a fixed order once per turn.
package ecs

import (
	"errors"
	"fmt"
	"sync"
)

// Record is the generic serialized form of a component: a flat field map
// plus the "type" discriminator injected during entity serialization.
type Record map[string]any

// Component is a pure-data unit of entity state. Implementations carry a
// unique type discriminator and round-trip all fields through Encode and
// their registered decode function. Components never call systems or hold
// references to other components; cross-component effects belong to
// systems.
type Component interface {
	// Type returns the unique discriminator for this component kind.
	Type() string

	// Encode serializes all fields into a generic record. The "type" key
	// is reserved; entity serialization fills it in.
	Encode() Record
}

// DecodeFunc reconstructs a component from its generic record.
type DecodeFunc func(Record) (Component, error)

// ErrUnknownComponent is returned when deserialization meets a type tag
// with no registered codec. Failing loudly here prevents silently dropping
// component state from a snapshot.
var ErrUnknownComponent = errors.New("ecs: unknown component type")

var (
	codecMu sync.RWMutex
	codecs  = make(map[string]DecodeFunc)
)

// RegisterComponent installs the decode function for a component type.
// Called from component packages at init time. Re-registering a type
// replaces the previous codec; registration never fails.
func RegisterComponent(componentType string, decode DecodeFunc) {
	codecMu.Lock()
	defer codecMu.Unlock()
	codecs[componentType] = decode
}

// DecodeComponent dispatches a record to the codec registered for its
// type tag.
func DecodeComponent(componentType string, rec Record) (Component, error) {
	codecMu.RLock()
	decode, ok := codecs[componentType]
	codecMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, componentType)
	}
	c, err := decode(rec)
	if err != nil {
		return nil, fmt.Errorf("ecs: decode %q: %w", componentType, err)
	}
	return c, nil
}

// Record field helpers. YAML and JSON decoders hand back loosely typed
// values (int, int64, uint64, float64), so numeric reads normalize.

// Int reads an integer field from a record.
func (r Record) Int(key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// String reads a string field from a record.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Bool reads a boolean field from a record.
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// Float reads a float field from a record.
func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Strings reads a string-slice field from a record.
func (r Record) Strings(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
