// Package server exposes the Prometheus metrics endpoint while a long
// evaluation runs.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/rotcoef/internal/logging"
	"github.com/agbru/rotcoef/internal/metrics"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// MetricsServer serves /metrics on a dedicated listener.
type MetricsServer struct {
	srv    *http.Server
	logger logging.Logger
}

// New creates a MetricsServer listening on addr. It registers the process
// memory collector alongside the default evaluation metrics; registration
// failure is logged and otherwise ignored, the endpoint still serves.
func New(addr string, logger logging.Logger) *MetricsServer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	if collector, err := metrics.NewMemoryCollector(); err != nil {
		logger.Warn("memory collector unavailable", logging.Err(err))
	} else if err := prometheus.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			logger.Warn("memory collector registration failed", logging.Err(err))
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
		logger: logger,
	}
}

// Start serves in a new goroutine and returns immediately. Listen errors
// other than graceful shutdown are logged, not returned: metrics are a side
// channel and must never abort an evaluation.
func (m *MetricsServer) Start() {
	m.logger.Info("metrics server listening", logging.String("addr", m.srv.Addr))
	go func() {
		if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.logger.Error("metrics server failed", logging.Err(err))
		}
	}()
}

// Shutdown stops the server gracefully, bounded by shutdownTimeout.
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return m.srv.Shutdown(ctx)
}
