// Package web exposes the primary ports over HTTP.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/example/fretsvg/internal/ports/primary"
)

// Server is the HTTP adapter for the catalog, diagram and progression services.
type Server struct {
	catalog      primary.CatalogService
	diagrams     primary.DiagramService
	progressions primary.ProgressionService
	logger       *log.Logger
	handler      http.Handler
}

// NewServer creates a new Server with injected services.
func NewServer(catalog primary.CatalogService, diagrams primary.DiagramService, progressions primary.ProgressionService, logger *log.Logger) *Server {
	s := &Server{
		catalog:      catalog,
		diagrams:     diagrams,
		progressions: progressions,
		logger:       logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chord-diagram", s.handleChordDiagram)
	mux.HandleFunc("POST /api/scale-diagram", s.handleScaleDiagram)
	mux.HandleFunc("GET /api/chords", s.handleListChords)
	mux.HandleFunc("POST /api/chords", s.handleRegisterChord)
	mux.HandleFunc("GET /api/chords/{name}", s.handleGetChord)
	mux.HandleFunc("GET /api/scales", s.handleListScales)
	mux.HandleFunc("GET /api/scales/{name}", s.handleGetScale)
	mux.HandleFunc("GET /api/progression", s.handleProgression)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.handler = s.withRequestID(s.withAccessLog(mux))
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down,
// waiting up to shutdownTimeout for in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln, shutdownTimeout)
}
