package hmr

import (
	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/core/ports"
)

// Propagator walks the dependency graph upward from a changed module to
// decide what must be pushed to clients: a targeted update for each HMR
// boundary that accepts the change, or a full page reload when the walk
// reaches a module nothing accepts.
type Propagator struct {
	graph    *domain.ModuleGraph
	registry *Registry
	server   *Server
	logger   ports.Logger
}

// NewPropagator creates a Propagator.
func NewPropagator(graph *domain.ModuleGraph, registry *Registry, server *Server, logger ports.Logger) *Propagator {
	return &Propagator{
		graph:    graph,
		registry: registry,
		server:   server,
		logger:   logger,
	}
}

// Propagate pushes the consequences of a change to the module at request
// path. The timestamp becomes the cache-busting token clients refetch with.
func (p *Propagator) Propagate(request string, timestamp int64) {
	boundaries := make(map[string]struct{})
	visited := make(map[string]struct{})

	// An import cycle with no boundary walks to completion without
	// collecting anything; that is as unaccepted as hitting a graph root.
	if !p.walk(request, boundaries, visited) || len(boundaries) == 0 {
		p.logger.Info("no hot-reload boundary accepts " + request + ", full reload")
		p.server.Broadcast(Message{Type: MessageReload, Timestamp: timestamp})
		return
	}

	for boundary := range boundaries {
		p.logger.Info("hot update: " + boundary)
		p.server.Broadcast(Message{Type: MessageUpdate, Path: boundary, Timestamp: timestamp})
	}
}

// walk ascends the importer chain of module, collecting accepting
// boundaries. It reports false as soon as any path escapes unaccepted,
// which forces a full reload.
func (p *Propagator) walk(module string, boundaries, visited map[string]struct{}) bool {
	if _, ok := visited[module]; ok {
		return true
	}
	visited[module] = struct{}{}

	if b, ok := p.registry.Boundary(module); ok && b.SelfAccepting {
		boundaries[module] = struct{}{}
		return true
	}

	importers := p.graph.Importers(module)
	if len(importers) == 0 {
		// Changed module sits at the top of the graph with no boundary.
		return false
	}

	for importer := range importers {
		if p.registry.Accepts(importer, module) {
			boundaries[importer] = struct{}{}
			continue
		}
		if !p.walk(importer, boundaries, visited) {
			return false
		}
	}
	return true
}
