package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/staffdesk/staffdesk/internal/config"
)

const (
	OutcomeSuccess = "success"
	// OutcomeFailure is a failure whose message was passed to the caller
	OutcomeFailure = "failure"
	// OutcomeInternal is a failure replaced by a fixed message
	OutcomeInternal = "internal"
)

// Metrics records one sample per service verb call
type Metrics struct {
	registry *prometheus.Registry
	backend  string
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	enabled  bool
}

func NewMetrics(cfg *config.Configuration) *Metrics {
	namespace := cfg.Metrics.Namespace
	if namespace == "" {
		namespace = "staffdesk"
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		backend:  string(cfg.Backend.Type),
		enabled:  cfg.Metrics.Enabled,
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "service",
			Name:      "calls_total",
			Help:      "Service verb calls by operation, backend and outcome.",
		}, []string{"operation", "backend", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "service",
			Name:      "call_duration_seconds",
			Help:      "Service verb latency by operation and backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "backend"}),
	}

	m.registry.MustRegister(
		m.calls,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// NewNopMetrics returns metrics that record nothing
func NewNopMetrics() *Metrics {
	return NewMetrics(&config.Configuration{})
}

// Observe records the outcome and latency of one call
func (m *Metrics) Observe(operation, outcome string, took time.Duration) {
	if m == nil || !m.enabled {
		return
	}
	m.calls.WithLabelValues(operation, m.backend, outcome).Inc()
	m.duration.WithLabelValues(operation, m.backend).Observe(took.Seconds())
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
