// Package server hosts the Launchdex HTTP API: route registration, core
// endpoints, middleware, and RFC 7807 problem responses.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mfreitag/launchdex/internal/version"
)

// RouteRegistrar is implemented by feature handlers that mount routes on
// the server mux.
type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

// Options configures a Server.
type Options struct {
	Addr      string
	RateLimit float64 // requests per second; 0 disables limiting
	Logger    *zap.Logger
}

// Server is the Launchdex HTTP server.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	mux        *http.ServeMux
}

// New creates a Server, mounts core and feature routes, and wraps the mux
// in the middleware chain (request ID, access log, rate limit, metrics).
func New(opts Options, registrars ...RouteRegistrar) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()

	s := &Server{
		logger: logger,
		mux:    mux,
	}

	s.registerCoreRoutes()
	for _, r := range registrars {
		r.RegisterRoutes(mux)
	}

	// Rate limiting sits inside metrics so 429 rejections are counted.
	var handler http.Handler = mux
	if opts.RateLimit > 0 {
		burst := int(opts.RateLimit) * 2
		if burst < 1 {
			burst = 1
		}
		handler = withRateLimit(handler, rate.NewLimiter(rate.Limit(opts.RateLimit), burst))
	}
	handler = withMetrics(handler)
	handler = withAccessLog(handler, logger)
	handler = withRequestID(handler)

	s.httpServer = &http.Server{
		Addr:         opts.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// registerCoreRoutes sets up routes that are always available.
func (s *Server) registerCoreRoutes() {
	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	s.mux.Handle("GET /metrics", promhttp.Handler())
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the fully wrapped handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Launchdex-Version", version.Short())
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "launchdex",
		"version": version.Map(),
	})
}
