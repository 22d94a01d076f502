package schema

import (
	"slices"
	"sync"

	"github.com/kbukum/github2/errors"
)

// Registry maps record kind names to schemas. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register adds a schema. Names are unique within a registry.
func (r *Registry) Register(s *Schema) error {
	if s == nil {
		return errors.Schema("<nil>", "cannot register nil schema")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[s.name]; exists {
		return errors.Schema(s.name, "already registered")
	}
	r.schemas[s.name] = s
	return nil
}

// MustRegister is like Register but panics on error. It returns s so
// declarations can be chained.
func (r *Registry) MustRegister(s *Schema) *Schema {
	if err := r.Register(s); err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (*Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	if !ok {
		return nil, errors.NotFound("schema", name)
	}
	return s, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// --- Default registry ---

// Default is the process-wide registry used by the github package.
var Default = NewRegistry()

// Register adds a schema to the default registry.
func Register(s *Schema) error { return Default.Register(s) }

// MustRegister adds a schema to the default registry, panicking on error.
func MustRegister(s *Schema) *Schema { return Default.MustRegister(s) }

// Lookup returns a schema from the default registry.
func Lookup(name string) (*Schema, error) { return Default.Lookup(name) }
