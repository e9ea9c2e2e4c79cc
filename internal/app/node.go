package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/serv/internal/adapters/cache"    //nolint:depguard // Wired in app layer
	"go.trai.ch/serv/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/serv/internal/adapters/hmr"      //nolint:depguard // Wired in app layer
	"go.trai.ch/serv/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/serv/internal/adapters/resolver" //nolint:depguard // Wired in app layer
	"go.trai.ch/serv/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/serv/internal/adapters/web"      //nolint:depguard // Wired in app layer
	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/core/ports"
	"go.trai.ch/serv/internal/engine/rewrite" //nolint:depguard // Wired in app layer
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			web.NodeID,
			watcher.NodeID,
			resolver.NodeID,
			cache.NodeID,
			rewrite.GraphNodeID,
			hmr.RegistryNodeID,
			hmr.ServerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    a,
				Logger: log,
				Config: cfg,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	server, err := graft.Dep[*web.Server](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[ports.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	rc, err := graft.Dep[ports.RewriteCache](ctx)
	if err != nil {
		return nil, err
	}

	graph, err := graft.Dep[*domain.ModuleGraph](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*hmr.Registry](ctx)
	if err != nil {
		return nil, err
	}

	hmrServer, err := graft.Dep[*hmr.Server](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	propagator := hmr.NewPropagator(graph, registry, hmrServer, log)

	return New(cfg, server, w, res, rc, propagator, log), nil
}
