package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/serv/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "adapter.resolver"

func init() {
	graft.Register(graft.Node[ports.Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.Resolver, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg), nil
		},
	})
}
