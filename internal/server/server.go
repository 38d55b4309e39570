// Package server provides the inbound HTTP surface of the bot: the Telegram
// webhook endpoint and a liveness endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/steppepulse/steppebot/internal/content"
)

const shutdownTimeout = 5 * time.Second

// WebhookPath is the route Telegram posts updates to.
const WebhookPath = "/webhook"

// Server wraps the HTTP listener hosting the webhook and liveness routes.
type Server struct {
	logger     *slog.Logger
	httpServer *http.Server
}

// New creates a Server on listenAddr. webhookHandler is the bot library's
// update receiver; it is mounted at WebhookPath.
func New(logger *slog.Logger, listenAddr string, webhookHandler http.Handler) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		logger: logger.With("component", "http_server"),
		httpServer: &http.Server{
			Addr:              listenAddr,
			Handler:           NewMux(webhookHandler),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// NewMux builds the route table: the webhook receiver and the liveness probe.
func NewMux(webhookHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST "+WebhookPath, webhookHandler)
	mux.HandleFunc("GET /{$}", HealthHandler)
	return mux
}

// HealthHandler answers the liveness probe with a fixed body.
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(content.HealthBody)); err != nil {
		slog.Error("Failed to write health response", "error", err)
	}
}

// Run serves HTTP until the context is cancelled, then shuts the listener
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server stopped gracefully.")
	return nil
}
