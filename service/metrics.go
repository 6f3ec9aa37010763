package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's prometheus instruments. Each server owns
// its registry so tests can run servers side by side.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "archlens",
		Name:      "requests_total",
		Help:      "Requests handled, by subject and outcome.",
	}, []string{"subject", "outcome"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "archlens",
		Name:      "request_duration_seconds",
		Help:      "Request handling latency, by subject.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"subject"})

	registry.MustRegister(requests, duration)
	return &metrics{registry: registry, requests: requests, duration: duration}
}

func (m *metrics) observe(subject string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.requests.WithLabelValues(subject, outcome).Inc()
	m.duration.WithLabelValues(subject).Observe(time.Since(start).Seconds())
}

// serveMetrics exposes /metrics on addr until ctx is cancelled.
func (m *metrics) serve(ctx context.Context, addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics endpoint failed", "addr", addr, "error", err)
		}
	}()
}
