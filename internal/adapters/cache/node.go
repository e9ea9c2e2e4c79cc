package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/serv/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/core/ports"
)

// NodeID is the unique identifier for the rewrite cache Graft node.
const NodeID graft.ID = "adapter.rewrite_cache"

func init() {
	graft.Register(graft.Node[ports.RewriteCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.RewriteCache, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.CacheCapacity)
		},
	})
}
