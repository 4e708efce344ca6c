// Package server exposes the analysis pipeline over a small JSON API.
// Handlers only format: all derivation happens in calculator and strategy.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"NiftyPulse/internal/collector"
)

// Server wraps the HTTP listener.
type Server struct {
	server *http.Server
}

// NewServer creates the HTTP server. cacheMaxAge sets the Cache-Control
// freshness window on data responses, aligned with the collector TTL.
func NewServer(port int, col *collector.Collector, cacheMaxAge time.Duration) *Server {
	mux := http.NewServeMux()
	registerHandlers(mux, col, cacheMaxAge)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      mux,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// Start blocks serving requests until Stop is called.
func (s *Server) Start() error {
	log.Printf("[INFO] HTTP server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Println("[INFO] shutting down HTTP server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
