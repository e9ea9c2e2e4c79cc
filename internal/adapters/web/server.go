package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/serv/internal/adapters/hmr" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/core/ports"
)

const shutdownTimeout = 5 * time.Second

// Server is the development HTTP server: static files from the project
// root, the module namespace, and the reload client endpoint, all behind
// the rewriting interceptor.
type Server struct {
	cfg         *domain.Config
	interceptor *Interceptor
	hmrServer   *hmr.Server
	resolver    ports.Resolver
	logger      ports.Logger
}

// NewServer creates a new Server. The request pipeline is assembled in
// Start, after command-line overrides have been applied to the config.
func NewServer(
	cfg *domain.Config,
	interceptor *Interceptor,
	hmrServer *hmr.Server,
	resolver ports.Resolver,
	logger ports.Logger,
) *Server {
	return &Server{
		cfg:         cfg,
		interceptor: interceptor,
		hmrServer:   hmrServer,
		resolver:    resolver,
		logger:      logger,
	}
}

// Handler assembles the request pipeline.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(domain.ClientPublicPath, s.hmrServer)
	mux.Handle(domain.ModulesPrefix, &moduleHandler{resolver: s.resolver})
	mux.Handle("/", http.FileServer(http.Dir(s.cfg.Root)))
	return s.interceptor.Wrap(mux)
}

// Start serves until the context is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("dev server listening on " + httpServer.Addr)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// moduleHandler serves files for module-namespace requests.
type moduleHandler struct {
	resolver ports.Resolver
}

func (h *moduleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, domain.ModulesPrefix)
	file, ok := h.resolver.FileForModule(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/javascript")
	http.ServeFile(w, r, file)
}
