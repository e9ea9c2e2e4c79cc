// Package hmr implements hot module reloading: the accept-call transformer
// invoked by the rewriter, the boundary registry, the websocket push server,
// and the invalidation walker that decides between targeted updates and a
// full page reload.
package hmr

import "sync"

// Boundary describes a module that registered a hot-reload accept call.
type Boundary struct {
	// SelfAccepting is set when the module accepts its own updates.
	SelfAccepting bool
	// Deps are the normalized paths of dependencies the module accepts
	// updates for.
	Deps map[string]struct{}
}

// Registry tracks HMR boundaries discovered by the accept transformer.
// Re-registering an importer replaces its previous boundary, mirroring how
// the dependency graph treats repeated rewrite passes.
type Registry struct {
	mu         sync.RWMutex
	boundaries map[string]Boundary
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{boundaries: make(map[string]Boundary)}
}

// Register records the importer as a boundary. An empty dep list means the
// module accepts its own updates.
func (r *Registry) Register(importer string, deps []string) {
	b := Boundary{SelfAccepting: len(deps) == 0, Deps: make(map[string]struct{}, len(deps))}
	for _, dep := range deps {
		b.Deps[dep] = struct{}{}
	}
	r.mu.Lock()
	r.boundaries[importer] = b
	r.mu.Unlock()
}

// Boundary returns the boundary registered for the module, if any.
func (r *Registry) Boundary(module string) (Boundary, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.boundaries[module]
	return b, ok
}

// Accepts reports whether the boundary module accepts updates of dep.
func (r *Registry) Accepts(boundary, dep string) bool {
	b, ok := r.Boundary(boundary)
	if !ok {
		return false
	}
	_, ok = b.Deps[dep]
	return ok
}
