// Package handlers keeps the ordered set of registered content-type handlers.
package handlers

import (
	"sync"

	"go.trai.ch/modfind/internal/core/domain"
	"go.trai.ch/modfind/internal/core/ports"
)

var _ ports.ExtensionRegistry = (*Registry)(nil)

// Registry records handler extensions in registration order.
type Registry struct {
	mu    sync.RWMutex
	order []string
	seen  map[string]struct{}
}

// NewRegistry creates a Registry with the given extensions registered in order.
func NewRegistry(exts ...string) (*Registry, error) {
	r := &Registry{seen: make(map[string]struct{}, len(exts))}
	for _, ext := range exts {
		if err := r.Register(ext); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register appends ext to the precedence list. Registering a known extension is a no-op.
func (r *Registry) Register(ext string) error {
	if err := domain.ValidateExtension(ext); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[ext]; ok {
		return nil
	}
	r.seen[ext] = struct{}{}
	r.order = append(r.order, ext)
	return nil
}

// Extensions returns a copy of the registered extensions in precedence order.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
