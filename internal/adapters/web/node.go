package web

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/serv/internal/adapters/cache"     //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/serv/internal/adapters/config"    //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/serv/internal/adapters/hmr"       //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/serv/internal/adapters/logger"    //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/serv/internal/adapters/resolver"  //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/serv/internal/adapters/telemetry" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/core/ports"
	"go.trai.ch/serv/internal/engine/rewrite" //nolint:depguard // Wired in adapter wiring
)

const (
	// InterceptorNodeID is the unique identifier for the response interceptor Graft node.
	InterceptorNodeID graft.ID = "adapter.web_interceptor"
	// NodeID is the unique identifier for the dev server Graft node.
	NodeID graft.ID = "adapter.web_server"
)

func init() {
	graft.Register(graft.Node[*Interceptor]{
		ID:        InterceptorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			rewrite.NodeID,
			cache.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Interceptor, error) {
			rw, err := graft.Dep[*rewrite.Rewriter](ctx)
			if err != nil {
				return nil, err
			}

			rc, err := graft.Dep[ports.RewriteCache](ctx)
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

			return NewInterceptor(rw, rc, log, tracer), nil
		},
	})

	graft.Register(graft.Node[*Server]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			InterceptorNodeID,
			hmr.ServerNodeID,
			resolver.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Server, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			interceptor, err := graft.Dep[*Interceptor](ctx)
			if err != nil {
				return nil, err
			}

			hmrServer, err := graft.Dep[*hmr.Server](ctx)
			if err != nil {
				return nil, err
			}

			res, err := graft.Dep[ports.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewServer(cfg, interceptor, hmrServer, res, log), nil
		},
	})
}
