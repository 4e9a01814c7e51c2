// Package api assembles the HTTP server: middleware chain, router and
// graceful shutdown.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/justinas/alice"

	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/metrics"
	"github.com/vfg2006/ads-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	httpServer *http.Server
}

// NewServer wraps the router in the middleware chain. Panic recovery
// sits outermost so it also covers the other middlewares.
func NewServer(cfg *config.Config, m *metrics.Metrics, handler http.Handler) *Server {
	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(m),
		middleware.Cors(cfg.Server.FrontendURL),
	).Then(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	log.L.WithField("addr", s.httpServer.Addr).Info("api: server listening")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.Info("api: shutting down")

	return s.httpServer.Shutdown(ctx)
}
