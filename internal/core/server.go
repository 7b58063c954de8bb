// Package core provides the API chassis for the Outings service. It creates
// a chi router and enforces cross-cutting concerns -- logging, request
// correlation, timeouts, and error handling -- before requests reach the
// domain handlers.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"outings/internal/config"
)

// Server encapsulates the HTTP-facing dependencies of the Outings API,
// allowing for easy injection during testing.
type Server struct {
	Config    *config.Config
	Logger    *slog.Logger
	Validator *Validator

	// V1RouteRegistrars is populated by the application entry point; each
	// registrar mounts one handler group under /v1. This indirection avoids
	// import cycles between core and handler packages.
	V1RouteRegistrars []func(chi.Router)

	// HealthProbes are checked by GET /health.
	HealthProbes []HealthProbe

	router        *chi.Mux
	shutdownHooks []func(ctx context.Context) error
}

// NewServer initializes the server chassis. It performs a fail-fast check on
// critical dependencies; the caller mounts routes afterwards via MountRoutes.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	return &Server{
		Config:    cfg,
		Logger:    logger,
		Validator: NewValidator(logger),
		router:    chi.NewRouter(),
	}, nil
}

// Handler returns the http.Handler for the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Router returns the underlying chi.Mux for route registration and tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// OnShutdown registers a hook to run during graceful shutdown, in
// registration order. Used to close the database pool and flush resources.
func (s *Server) OnShutdown(hook func(ctx context.Context) error) {
	s.shutdownHooks = append(s.shutdownHooks, hook)
}

// Shutdown runs the registered shutdown hooks. The first hook error is
// returned after all hooks have run.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("server shutdown initiated")

	var firstErr error
	for _, hook := range s.shutdownHooks {
		if err := hook(ctx); err != nil {
			s.Logger.Error("shutdown hook failed", "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	s.Logger.Info("server shutdown complete")
	return firstErr
}
