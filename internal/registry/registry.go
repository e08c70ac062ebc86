// Package registry provides a global registry of named world presets.
// Presets register themselves in init() functions, allowing the CLI to
// discover and select terrain layouts without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-sandbox/internal/world"
)

// Preset is a named terrain generation layout.
type Preset struct {
	ID          string
	Title       string
	Description string
	Gen         world.GenConfig
}

// Factory builds a fresh preset. Factories must return independent
// GenConfig values so callers can modify them.
type Factory func() Preset

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a preset factory to the registry.
// Panics if a preset with the same ID is already registered or the preset's
// generation config is invalid.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", id))
	}
	if err := f().Gen.Validate(); err != nil {
		panic(fmt.Sprintf("registry: preset %q: %v", id, err))
	}

	factories[id] = f
}

// List returns all registered presets, sorted by ID.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(factories))
	for _, f := range factories {
		result = append(result, f())
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get builds the preset with the given ID.
// Returns an error if the preset ID is not registered.
func Get(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown preset %q", id)
	}

	return f(), nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
