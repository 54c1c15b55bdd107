package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/config"
)

// Server wraps the HTTP server with its configuration.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a configured HTTP server instance.
func NewServer(cfg *config.Config, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		httpServer: &http.Server{
			Addr:    cfg.ServerPort,
			Handler: handler,
			// Generous timeouts so long model responses and streams survive
			ReadTimeout:  300 * time.Second,
			WriteTimeout: 300 * time.Second,
		},
		logger: logger,
	}
}

// Start listens and serves until the server is shut down. A clean
// shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("server listening", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server. In-flight
// streaming responses get until ctx expires to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.httpServer.Shutdown(ctx)
}
