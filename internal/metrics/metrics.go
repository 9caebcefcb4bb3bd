// Package metrics exposes Prometheus counters for the submission pipeline
// and the HTTP surface.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	// SubmissionsTotal counts finished submissions by outcome
	// (accepted, honeypot, throttled, captcha_failed, invalid, failed).
	SubmissionsTotal *prometheus.CounterVec

	// GateRejections counts pipeline short-circuits by gate name.
	GateRejections *prometheus.CounterVec

	// HTTPRequestsTotal counts requests by method, route and status.
	HTTPRequestsTotal *prometheus.CounterVec

	// SubmissionDuration observes end-to-end Submit latency.
	SubmissionDuration prometheus.Histogram
}

// New registers the collectors on a fresh registry. Tests create their own
// instance so repeated registration never panics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		SubmissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_submissions_total",
				Help: "Total number of order submissions by outcome",
			},
			[]string{"outcome"},
		),
		GateRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_gate_rejections_total",
				Help: "Total number of submissions stopped at a pipeline gate",
			},
			[]string{"gate"},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		SubmissionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "order_submission_duration_seconds",
				Help:    "Order submission duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// Handler serves the registry for GET /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
