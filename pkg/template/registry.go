package template

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores driver factories by backend identifier. It is constructed
// once at process start and passed to whatever builds template contexts;
// there is no ambient global registry.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a driver factory under backend. Duplicate names return an
// error.
func (r *Registry) Register(backend string, factory Factory) error {
	if backend == "" {
		return fmt.Errorf("template: backend name is required")
	}
	if factory == nil {
		return fmt.Errorf("template: driver factory is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[backend]; exists {
		return fmt.Errorf("template: driver %q already registered", backend)
	}

	r.factories[backend] = factory
	return nil
}

// MustRegister panics on registration failure. Useful for startup wiring.
func (r *Registry) MustRegister(backend string, factory Factory) {
	if err := r.Register(backend, factory); err != nil {
		panic(err)
	}
}

// Get retrieves a driver factory by backend identifier.
func (r *Registry) Get(backend string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[backend]
	if !ok {
		return nil, fmt.Errorf("template: no driver registered for backend %q", backend)
	}
	return factory, nil
}

// Has reports whether a backend is registered.
func (r *Registry) Has(backend string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[backend]
	return ok
}

// List returns the registered backend identifiers, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
