// Package server exposes the renderers over HTTP.
//
// The service is deliberately small: one POST endpoint that accepts a
// linkage JSON document and returns the requested artifact (text
// diagram, PostScript, flat listings, DOT, or SVG), plus a health
// probe. Artifacts are optionally cached keyed by the request body and
// option bundle, so horizontally scaled replicas behind a shared Redis
// never render the same request twice.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/solversa/link-grammar/pkg/cache"
	"github.com/solversa/link-grammar/pkg/corpus"
	"github.com/solversa/link-grammar/pkg/dict"
)

// Config assembles the server's collaborators. Zero values select
// sensible defaults: English markers, no caching, no corpus scorer.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Markers is the dictionary marker table. Nil selects English.
	Markers *dict.Markers

	// Cache stores rendered artifacts. Nil disables caching.
	Cache cache.Cache

	// Keyer derives artifact cache keys. Nil selects the default.
	Keyer cache.Keyer

	// Scorer provides corpus statistics for the disjunct and sense
	// listings. Nil renders them in their score-free forms.
	Scorer corpus.Scorer

	// Logger receives request logs. Nil selects the default logger.
	Logger *log.Logger
}

// Server is the HTTP rendering service.
type Server struct {
	cfg    Config
	router chi.Router
	http   *http.Server
}

// New builds the service and its route table.
func New(cfg Config) *Server {
	if cfg.Markers == nil {
		cfg.Markers = dict.English()
	}
	if cfg.Cache == nil {
		cfg.Cache = cache.NewNullCache()
	}
	if cfg.Keyer == nil {
		cfg.Keyer = cache.NewDefaultKeyer()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	s := &Server{cfg: cfg}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(logMiddleware(cfg.Logger))

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)

	s.router = r
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the route table for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until the context is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}
