// Package app implements the application layer for serv.
package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"go.trai.ch/zerr"

	"go.trai.ch/serv/internal/adapters/hmr"     //nolint:depguard // Wired in app layer
	"go.trai.ch/serv/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/serv/internal/adapters/web"     //nolint:depguard // Wired in app layer
	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/core/ports"
)

// App ties the dev server to the file watch pipeline.
type App struct {
	cfg        *domain.Config
	server     *web.Server
	watcher    ports.Watcher
	resolver   ports.Resolver
	cache      ports.RewriteCache
	propagator *hmr.Propagator
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	server *web.Server,
	w ports.Watcher,
	resolver ports.Resolver,
	cache ports.RewriteCache,
	propagator *hmr.Propagator,
	logger ports.Logger,
) *App {
	return &App{
		cfg:        cfg,
		server:     server,
		watcher:    w,
		resolver:   resolver,
		cache:      cache,
		propagator: propagator,
		logger:     logger,
	}
}

// ServeOptions carries command-line overrides for the loaded configuration.
type ServeOptions struct {
	// Port overrides the configured listen port when non-zero.
	Port int
	// Root overrides the configured project root when non-empty.
	Root string
}

// Serve runs the dev server and the change pipeline until the context is
// canceled.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	if opts.Port != 0 {
		a.cfg.Port = opts.Port
	}
	if opts.Root != "" {
		a.cfg.Root = opts.Root
	}

	if err := a.watcher.Start(ctx, a.cfg.Root); err != nil {
		return zerr.Wrap(err, "failed to start file watcher")
	}
	defer func() { _ = a.watcher.Stop() }()

	debouncer := watcher.NewDebouncer(watcher.DebounceWindow(a.cfg), a.handleChanges)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.server.Start(ctx)
	})

	g.Go(func() error {
		for event := range a.watcher.Events() {
			if event.Operation == ports.OpCreate {
				continue
			}
			debouncer.Add(event.Path)
		}
		debouncer.Flush()
		return nil
	})

	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "dev server failed")
	}
	return nil
}

// handleChanges invalidates cached rewrites for the changed files and pushes
// reload notifications to connected clients. Paths arrive debounced, so a
// rapid save burst produces a single batch.
func (a *App) handleChanges(paths []string) {
	timestamp := time.Now().UnixMilli()
	for _, path := range paths {
		request := a.resolver.RequestForFile(path)
		a.cache.Invalidate(request)
		a.logger.Info("changed " + request)
		a.propagator.Propagate(request, timestamp)
	}
}
