// Package server exposes the rink renderer over HTTP.
//
// Routes:
//
//	GET /healthz          liveness and build version
//	GET /catalog          markings grouped by layer, as JSON
//	GET /catalog/graph    the same grouping as an SVG diagram
//	GET /rink/{format}    a rendered rink (svg, png, pdf or json)
//
// The rink endpoint reads its options from the query string:
// orientation, x, y, length, style, dpi, transparent, title, refresh and
// repeated marker=x,y pairs.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/rinkplot/internal/config"
	"github.com/matzehuels/rinkplot/pkg/errors"
	"github.com/matzehuels/rinkplot/pkg/pipeline"
)

// DefaultRenderTimeout bounds a single render request.
const DefaultRenderTimeout = 20 * time.Second

// Options configures a Server.
type Options struct {
	Runner        *pipeline.Runner
	Logger        *log.Logger
	Defaults      config.Render // applied to query options that are unset
	RenderTimeout time.Duration
}

// Server handles rink rendering requests.
type Server struct {
	runner        *pipeline.Runner
	logger        *log.Logger
	defaults      config.Render
	renderTimeout time.Duration
	router        chi.Router
}

// New creates a server. A nil runner renders without a cache.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runner == nil {
		opts.Runner = pipeline.NewRunner(nil, nil, opts.Logger)
	}
	if opts.RenderTimeout <= 0 {
		opts.RenderTimeout = DefaultRenderTimeout
	}

	s := &Server{
		runner:        opts.Runner,
		logger:        opts.Logger,
		defaults:      opts.Defaults,
		renderTimeout: opts.RenderTimeout,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(s.recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/catalog", s.handleCatalog)
	r.Get("/catalog/graph", s.handleCatalogGraph)
	r.Get("/rink/{format}", s.handleRink)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no route for %s", r.URL.Path))
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.Server) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
