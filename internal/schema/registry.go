package schema

import (
	"fmt"
	"sync"

	"github.com/protokin/kin/pkg/object"
)

// Registry holds the constructors built from a document, keyed by
// type name. It is safe for concurrent lookups.
type Registry struct {
	mu    sync.RWMutex
	store map[string]*object.Constructor
	order []string
}

func NewRegistry() *Registry {
	return &Registry{store: make(map[string]*object.Constructor)}
}

// Register adds c under its name. A second constructor under a taken
// name is rejected even when the two are distinct tokens.
func (r *Registry) Register(c *object.Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if have, ok := r.store[c.Name()]; ok {
		return fmt.Errorf("type already registered: %s (have %s, got %s)", c.Name(), have.ID(), c.ID())
	}
	r.store[c.Name()] = c
	r.order = append(r.order, c.Name())
	return nil
}

func (r *Registry) Lookup(name string) (*object.Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.store[name]
	return c, ok
}

// Names returns the registered type names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.store)
}
