package canvas

import (
	"fmt"
	"sort"
	"sync"
)

// ProviderFactory returns a fresh SurfaceProvider.
type ProviderFactory func() SurfaceProvider

var (
	providersMu sync.RWMutex
	providers   = make(map[string]ProviderFactory)
)

// RegisterSurfaceProvider makes a provider available by name. Provider
// packages call it from init, so importing the package for side effects
// is enough:
//
//	import _ "github.com/gogpu/canvas/raster"
//
//	p, err := canvas.NewSurfaceProvider("raster")
//
// It panics when factory is nil or name is already taken.
func RegisterSurfaceProvider(name string, factory ProviderFactory) {
	providersMu.Lock()
	defer providersMu.Unlock()

	if factory == nil {
		panic("canvas: RegisterSurfaceProvider factory is nil")
	}
	if _, dup := providers[name]; dup {
		panic("canvas: RegisterSurfaceProvider called twice for " + name)
	}
	providers[name] = factory
}

// UnregisterSurfaceProvider removes name from the registry. Tests use it
// to clean up; unknown names are ignored.
func UnregisterSurfaceProvider(name string) {
	providersMu.Lock()
	defer providersMu.Unlock()
	delete(providers, name)
}

// NewSurfaceProvider returns a new provider registered under name.
func NewSurfaceProvider(name string) (SurfaceProvider, error) {
	providersMu.RLock()
	factory, ok := providers[name]
	providersMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("canvas: %q (forgotten import?): %w", name, ErrUnknownProvider)
	}
	return factory(), nil
}

// SurfaceProviders returns the registered names in sorted order.
func SurfaceProviders() []string {
	providersMu.RLock()
	defer providersMu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSurfaceProviderRegistered reports whether name is registered.
func IsSurfaceProviderRegistered(name string) bool {
	providersMu.RLock()
	defer providersMu.RUnlock()
	_, ok := providers[name]
	return ok
}
