package hmr

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/serv/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/serv/internal/core/ports"
)

const (
	// RegistryNodeID is the unique identifier for the boundary registry Graft node.
	RegistryNodeID graft.ID = "adapter.hmr_registry"
	// TransformerNodeID is the unique identifier for the accept transformer Graft node.
	TransformerNodeID graft.ID = "adapter.hmr_transformer"
	// ServerNodeID is the unique identifier for the push server Graft node.
	ServerNodeID graft.ID = "adapter.hmr_server"
)

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return NewRegistry(), nil
		},
	})

	graft.Register(graft.Node[ports.HMRTransformer]{
		ID:        TransformerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RegistryNodeID},
		Run: func(ctx context.Context) (ports.HMRTransformer, error) {
			registry, err := graft.Dep[*Registry](ctx)
			if err != nil {
				return nil, err
			}
			return NewTransformer(registry), nil
		},
	})

	graft.Register(graft.Node[*Server]{
		ID:        ServerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Server, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewServer(log), nil
		},
	})
}
