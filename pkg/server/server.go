// Package server exposes the card pipeline over HTTP. One route renders
// cards, one reports health; everything else is middleware around them.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/config"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/pipeline"
)

// Server wires the router, the pipeline runner and the listener.
type Server struct {
	cfg    config.Config
	runner *pipeline.Runner
	logger *log.Logger
	http   *http.Server
}

// New builds a server around a configured runner.
func New(cfg config.Config, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:    cfg,
		runner: runner,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(s.recoverer)
	r.Get("/", s.handleCard)
	r.Get("/api/card", s.handleCard)
	r.Get("/health", s.handleHealth)

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel}),
	}
	return s
}

// Router returns the HTTP handler, for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.http.Handler
}

// Start listens until ctx is canceled, then drains connections within
// the configured shutdown window.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	drain := time.Duration(s.cfg.ShutdownSeconds) * time.Second
	s.logger.Info("shutting down", "drain", drain)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), drain)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return s.runner.Close()
}
