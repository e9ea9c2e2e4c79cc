// Package rewrite implements the source rewriting engine: it lexes module
// source for import specifiers, rewrites each specifier into a request the
// server can resolve, and keeps the dependency graph in sync with the
// imports observed on every pass.
package rewrite

import (
	"context"

	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/core/ports"
	"go.trai.ch/serv/internal/engine/eslex"
	"go.trai.ch/zerr"
)

// Rewriter rewrites ECMAScript module source and maintains the module
// dependency graph as a side effect of each pass.
type Rewriter struct {
	resolver ports.Resolver
	graph    *domain.ModuleGraph
	hmr      ports.HMRTransformer
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates a Rewriter.
func New(
	resolver ports.Resolver,
	graph *domain.ModuleGraph,
	hmr ports.HMRTransformer,
	logger ports.Logger,
	tracer ports.Tracer,
) *Rewriter {
	return &Rewriter{
		resolver: resolver,
		graph:    graph,
		hmr:      hmr,
		logger:   logger,
		tracer:   tracer,
	}
}

// Graph exposes the dependency graph for the invalidation walker.
func (r *Rewriter) Graph() *domain.ModuleGraph {
	return r.graph
}

// Rewrite lexes the source served for importer, rewrites every static
// import specifier, and commits the importer's new edge set to the graph.
// Rewriting is best-effort: malformed source is logged and returned
// unmodified, never surfaced as a failure. When nothing needed rewriting the
// original string is returned unchanged, so callers can compare against the
// input to skip re-caching work.
func (r *Rewriter) Rewrite(ctx context.Context, source, importer, refreshToken string) string {
	_, span := r.tracer.Start(ctx, "rewrite")
	defer span.End()
	span.SetAttribute("importer", importer)

	specs, err := eslex.Scan(source)
	if err != nil {
		r.logger.Error(zerr.With(zerr.Wrap(err, "failed to lex module source"), "importer", importer))
		return source
	}
	if len(specs) == 0 {
		// No imports at all: nothing to rewrite and no graph entry to touch.
		return source
	}

	current := make(map[string]struct{}, len(specs))

	edits := &domain.EditList{}
	importsClient := false
	dynamicCount := 0

	for _, spec := range specs {
		if spec.Dynamic {
			// Recorded for diagnostics only; dynamic expressions are
			// resolved by the browser at runtime.
			dynamicCount++
			continue
		}
		c := r.classify(spec.Value, importer, refreshToken)
		if c.text != spec.Value {
			edits.Replace(spec.Start, spec.End, c.text)
		}
		current[c.importee] = struct{}{}
		if c.importsClient {
			importsClient = true
		}
	}
	span.SetAttribute("dynamic_imports", dynamicCount)

	if importsClient {
		if err := r.hmr.RewriteAccepts(source, importer, edits); err != nil {
			r.logger.Error(zerr.With(zerr.Wrap(err, "hot-reload transform failed"), "importer", importer))
		}
	}

	// Commit the new edge set. The graph diffs it against the previous
	// pass and prunes stale reverse edges atomically, so concurrent
	// rewrites of other importers cannot interleave with the swap.
	r.graph.SetImportees(importer, current)

	if edits.Empty() {
		return source
	}
	patched, err := edits.Apply(source)
	if err != nil {
		r.logger.Error(zerr.With(zerr.Wrap(err, "failed to splice rewritten imports"), "importer", importer))
		return source
	}
	return patched
}
