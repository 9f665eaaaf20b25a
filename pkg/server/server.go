// Package server exposes word chaining over HTTP.
//
// # Routes
//
//	GET  /healthz       liveness and build version
//	GET  /modes         available chaining modes
//	POST /chains        chain a word list, recorded in history
//	GET  /chains        recent runs, newest first (?limit=N)
//	GET  /chains/{id}   a recorded run
//	POST /graph         render the letter graph as DOT or SVG
//
// Request and response bodies are JSON except for POST /graph, which returns
// the rendered document. Errors are returned as
//
//	{"error": {"code": "NO_CIRCUIT", "message": "..."}}
//
// with 400 for invalid input, 404 for unknown runs, 422 when the words
// cannot be chained and 500 otherwise. An unchainable POST /chains is still
// recorded and its response carries the run ID next to the error.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/wordchain/pkg/history"
	"github.com/matzehuels/wordchain/pkg/pipeline"
)

// DefaultMaxBodySize bounds request bodies.
const DefaultMaxBodySize = 10 << 20

// Option configures optional Server behavior.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxBodySize overrides [DefaultMaxBodySize].
func WithMaxBodySize(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// Server holds the chi router, the pipeline runner and the run history.
type Server struct {
	router  chi.Router
	runner  *pipeline.Runner
	store   history.Store
	logger  *log.Logger
	maxBody int64
}

// New creates a Server with all routes configured. A nil store keeps
// history in memory.
func New(runner *pipeline.Runner, store history.Store, opts ...Option) *Server {
	if store == nil {
		store = history.NewMemoryStore(0)
	}
	s := &Server{
		runner:  runner,
		store:   store,
		logger:  log.Default(),
		maxBody: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/modes", s.handleModes)

	r.Route("/chains", func(r chi.Router) {
		r.Get("/", s.handleListChains)
		r.Post("/", s.handleCreateChain)
		r.Get("/{id}", s.handleGetChain)
	})

	r.Post("/graph", s.handleGraph)

	return r
}

// ServeHTTP implements the http.Handler interface, delegating to the chi router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully, giving in-flight requests up to ten seconds to finish.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is like ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       2 * time.Minute,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
