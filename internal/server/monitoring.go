package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// NewMonitoringHandler serves /metrics from reg and /healthz from a HealthChecker.
func NewMonitoringHandler(log *slog.Logger, reg *prometheus.Registry, db DBPinger, apiURL string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	mux.Handle("/healthz", NewHealthChecker(db, apiURL, log))

	return mux
}

// StartMonitoringServer runs the metrics and health server on port until ctx is done.
func StartMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	db DBPinger,
	port int,
	apiURL string,
) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewMonitoringHandler(log, reg, db, apiURL),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.InfoContext(ctx, "Starting monitoring server", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.ErrorContext(ctx, "Monitoring server failed", sl.Err(err))
		}
	}()

	<-ctx.Done()

	log.InfoContext(ctx, "Shutting down monitoring server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "Monitoring server shutdown failed", sl.Err(err))
		return
	}
	log.InfoContext(ctx, "Monitoring server stopped gracefully.")
}
