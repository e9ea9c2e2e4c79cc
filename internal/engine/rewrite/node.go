package rewrite

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/serv/internal/adapters/hmr"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/serv/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/serv/internal/adapters/resolver"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/serv/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the rewriter Graft node.
	NodeID graft.ID = "engine.rewriter"
	// GraphNodeID is the unique identifier for the module graph Graft node.
	GraphNodeID graft.ID = "engine.module_graph"
)

func init() {
	// The module graph is process-wide shared state; registering it as a
	// cacheable node gives every consumer the same instance.
	graft.Register(graft.Node[*domain.ModuleGraph]{
		ID:        GraphNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*domain.ModuleGraph, error) {
			return domain.NewModuleGraph(), nil
		},
	})

	graft.Register(graft.Node[*Rewriter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			GraphNodeID,
			resolver.NodeID,
			hmr.TransformerNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Rewriter, error) {
			graph, err := graft.Dep[*domain.ModuleGraph](ctx)
			if err != nil {
				return nil, err
			}

			res, err := graft.Dep[ports.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			transformer, err := graft.Dep[ports.HMRTransformer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(res, graph, transformer, log, tracer), nil
		},
	})
}
