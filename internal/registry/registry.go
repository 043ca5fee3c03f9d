// Package registry provides a global registry for maze generator factories.
// Generators register themselves in init() functions, allowing the CLI and
// config layer to discover and instantiate them without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-rogue/internal/grid"
)

// Generator is the interface all maze generation algorithms implement.
// Carve mutates the grid's link graph in place; wall flags are derived
// afterwards by the shared finalize pass from link counts.
type Generator interface {
	// ID returns a unique identifier for this generator (e.g., "binarytree").
	// Used for CLI flags and config values.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Carve populates the grid's links using the provided random source.
	// The same seed must always produce the same maze.
	Carve(g *grid.Grid, rng *rand.Rand)
}

// GeneratorInfo contains metadata about a registered generator.
type GeneratorInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a generator.
type Factory func() Generator

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a generator factory to the registry.
// Typically called from a generator's init() function.
// Panics if a generator with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: generator %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered generators, sorted by ID.
func List() []GeneratorInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GeneratorInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GeneratorInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new generator by its ID.
// Returns an error if the generator ID is not registered.
func Create(id string) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown generator %q", id)
	}

	return f(), nil
}

// Exists checks if a generator with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
