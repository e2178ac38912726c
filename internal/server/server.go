// Package server runs the pinboard API over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/johann/pinboard/internal/config"
	"github.com/johann/pinboard/internal/router"
)

// Server represents the API server
type Server struct {
	config   *config.ServerConfig
	engine   *gin.Engine
	routes   *router.Router
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *Metrics
}

// New creates a server serving routes, which must already carry the base
// path. A nil registry gets a fresh one with Go and process collectors.
func New(cfg *config.ServerConfig, routes *router.Router, logger *zap.Logger, reg *prometheus.Registry) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	s := &Server{
		config:   cfg,
		engine:   router.NewEngine(),
		routes:   routes,
		logger:   logger,
		registry: reg,
		metrics:  NewMetrics(reg),
	}

	s.engine.Use(
		gin.Recovery(),
		requestID(),
		securityHeaders(cfg.TLS),
		accessLog(logger, cfg.TrustProxy),
		s.metrics.middleware(),
	)

	if err := routes.Install(s.engine); err != nil {
		return nil, fmt.Errorf("install routes: %w", err)
	}

	return s, nil
}

// Handler returns the API handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// MetricsHandler serves the server's registry in the Prometheus format.
func (s *Server) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry})
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.ListenAddr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. The metrics listener is started alongside when configured.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	servers := []*http.Server{srv}
	errCh := make(chan error, 2)

	if s.config.MetricsPort > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", s.MetricsHandler())
		metricsSrv := &http.Server{
			Addr:              fmt.Sprintf(":%d", s.config.MetricsPort),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}
		servers = append(servers, metricsSrv)

		go func() {
			s.logger.Info("metrics listening", zap.String("addr", metricsSrv.Addr))
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	go func() {
		s.logger.Info("api listening",
			zap.String("addr", ln.Addr().String()),
			zap.Int("routes", s.routes.Len()),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("api server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout())
	defer cancel()

	s.logger.Info("shutting down")
	for _, hs := range servers {
		if err := hs.Shutdown(shutdownCtx); err != nil {
			runErr = errors.Join(runErr, err)
		}
	}
	return runErr
}
