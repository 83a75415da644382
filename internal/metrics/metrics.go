package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/45h1f/learn-docker/internal/health"
)

// Registry holds the Prometheus collectors shared by the demo apps. The
// namespace separates the sysinfo and webapp binaries when both are scraped.
type Registry struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	DependencyUp          *prometheus.GaugeVec
	DependencyProbesTotal *prometheus.CounterVec
}

// NewRegistry initializes all collectors under the given namespace and
// registers them with the default registerer.
func NewRegistry(namespace string) *Registry {
	return &Registry{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests processed by endpoint, method and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distribution in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "HTTP requests currently being processed",
			},
		),
		DependencyUp: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dependency_up",
				Help:      "1 when the last probe of the dependency succeeded, 0 otherwise",
			},
			[]string{"dependency"},
		),
		DependencyProbesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dependency_probes_total",
				Help:      "Dependency probes by name and outcome",
			},
			[]string{"dependency", "outcome"},
		),
	}
}

// RecordReport updates the dependency gauges and probe counters from an
// aggregated health report. Safe on a nil registry so handlers can run
// without instrumentation in tests.
func (r *Registry) RecordReport(report health.Report) {
	if r == nil {
		return
	}
	for _, check := range report.Checks {
		outcome := "reachable"
		up := 1.0
		if !check.Reachable {
			outcome = "unreachable"
			up = 0
		}
		r.DependencyUp.WithLabelValues(check.Name).Set(up)
		r.DependencyProbesTotal.WithLabelValues(check.Name, outcome).Inc()
	}
}
