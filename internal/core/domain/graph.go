package domain

import "sync"

// ModuleGraph is the bidirectional module dependency graph maintained across
// rewrite passes. It keeps two adjacency maps keyed by normalized module
// path: importer to importees and importee to importers. The maps are kept
// symmetric: whenever an importee is recorded for an importer, the importer
// is recorded for that importee, and edge removal updates both sides.
// Entries are created lazily on first edge insertion and live for the whole
// process; the only pruning is the stale-edge diff performed when an
// importer is re-analyzed.
//
// Rewrites run on HTTP handler goroutines while the invalidation walker
// reads from the watcher goroutine, so every operation locks.
type ModuleGraph struct {
	mu        sync.RWMutex
	importees map[InternedString]map[InternedString]struct{}
	importers map[InternedString]map[InternedString]struct{}
}

// NewModuleGraph creates an empty ModuleGraph.
func NewModuleGraph() *ModuleGraph {
	return &ModuleGraph{
		importees: make(map[InternedString]map[InternedString]struct{}),
		importers: make(map[InternedString]map[InternedString]struct{}),
	}
}

// SetImportees replaces the importer's edge set with the given importees.
// Reverse edges for importees a previous pass recorded but this set no
// longer contains are removed, and new reverse edges are added, all under a
// single lock so concurrent rewrites never observe the maps asymmetric.
func (g *ModuleGraph) SetImportees(importer string, importees map[string]struct{}) {
	imp := NewInternedString(importer)
	set := make(map[InternedString]struct{}, len(importees))
	for importee := range importees {
		set[NewInternedString(importee)] = struct{}{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for previous := range g.importees[imp] {
		if _, ok := set[previous]; !ok {
			delete(g.importers[previous], imp)
		}
	}
	for importee := range set {
		reverse, ok := g.importers[importee]
		if !ok {
			reverse = make(map[InternedString]struct{})
			g.importers[importee] = reverse
		}
		reverse[imp] = struct{}{}
	}
	g.importees[imp] = set
}

// RemoveImporter removes the importer from the importee's reverse edge set.
func (g *ModuleGraph) RemoveImporter(importee, importer string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if reverse, ok := g.importers[NewInternedString(importee)]; ok {
		delete(reverse, NewInternedString(importer))
	}
}

// Importees returns a copy of the importer's current importee set.
func (g *ModuleGraph) Importees(importer string) map[string]struct{} {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return copySet(g.importees[NewInternedString(importer)])
}

// Importers returns a copy of the importee's current importer set.
func (g *ModuleGraph) Importers(importee string) map[string]struct{} {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return copySet(g.importers[NewInternedString(importee)])
}

func copySet(set map[InternedString]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(set))
	for member := range set {
		out[member.String()] = struct{}{}
	}
	return out
}
