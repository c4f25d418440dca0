// Package levels provides a global registry of playable levels. Shipped
// presets register themselves in init(), and hosts can add levels loaded
// from disk, so the CLI discovers levels without hardcoded wiring.
package levels

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lunarisgames/rotagems/internal/config"
)

// Info is the display metadata for a registered level.
type Info struct {
	Name        string
	Description string
	Width       int
	Height      int
}

// Loader produces the level's configuration, resolving user overrides at
// play time rather than at registration.
type Loader func() (config.LevelConfig, error)

var (
	loaders = make(map[string]Loader)
	infos   = make(map[string]Info)
	mu      sync.RWMutex
)

// Register adds a level to the registry.
// Panics if a level with the same name is already registered.
func Register(name string, info Info, l Loader) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := loaders[name]; exists {
		panic(fmt.Sprintf("levels: level %q already registered", name))
	}
	loaders[name] = l
	infos[name] = info
}

// List returns the metadata of all registered levels, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Load resolves a level's configuration by name.
// Returns an error if the name is not registered or the level fails to load.
func Load(name string) (config.LevelConfig, error) {
	mu.RLock()
	l, ok := loaders[name]
	mu.RUnlock()

	if !ok {
		return config.LevelConfig{}, fmt.Errorf("levels: unknown level %q", name)
	}
	return l()
}

// Exists reports whether a level with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := loaders[name]
	return ok
}
