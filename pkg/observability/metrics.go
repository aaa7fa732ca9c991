// Package observability provides Prometheus metrics for the chat pipeline.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics handles application metrics and monitoring. It owns its registry
// so tests can create isolated instances without collector name collisions.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	messagesProcessed  *prometheus.CounterVec
	responseOutcomes   *prometheus.CounterVec
	generationFailures *prometheus.CounterVec
	generationDuration prometheus.Histogram
	sessionsEvicted    prometheus.Counter
	liveSessions       prometheus.GaugeFunc
}

// NewMetrics creates a metrics instance. sessionCount, when non-nil, backs a
// gauge reporting the number of live sessions.
func NewMetrics(sessionCount func() float64) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "narad",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),

		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "narad",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),

		messagesProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "narad",
			Name:      "messages_processed_total",
			Help:      "Chat messages processed by classified intent.",
		}, []string{"intent"}),

		responseOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "narad",
			Name:      "response_outcomes_total",
			Help:      "Pipeline outcomes by degradation level.",
		}, []string{"outcome"}),

		generationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "narad",
			Name:      "generation_failures_total",
			Help:      "External generation failures by kind.",
		}, []string{"kind"}),

		generationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "narad",
			Name:      "generation_duration_seconds",
			Help:      "External generation call latency.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),

		sessionsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "narad",
			Name:      "sessions_evicted_total",
			Help:      "Sessions evicted from the in-memory store.",
		}),
	}

	registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.messagesProcessed,
		m.responseOutcomes,
		m.generationFailures,
		m.generationDuration,
		m.sessionsEvicted,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if sessionCount != nil {
		m.liveSessions = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "narad",
			Name:      "live_sessions",
			Help:      "Sessions currently retained in memory.",
		}, sessionCount)
		registry.MustRegister(m.liveSessions)
	}

	return m
}

// Handler returns the scrape endpoint for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordMessage records one processed chat message.
func (m *Metrics) RecordMessage(intent string) {
	m.messagesProcessed.WithLabelValues(intent).Inc()
}

// RecordOutcome records the degradation level of one pipeline run.
func (m *Metrics) RecordOutcome(outcome string) {
	m.responseOutcomes.WithLabelValues(outcome).Inc()
}

// RecordGenerationFailure records an external generation failure.
func (m *Metrics) RecordGenerationFailure(kind string) {
	m.generationFailures.WithLabelValues(kind).Inc()
}

// RecordGenerationDuration records the latency of one generation call.
func (m *Metrics) RecordGenerationDuration(d time.Duration) {
	m.generationDuration.Observe(d.Seconds())
}

// RecordSessionEvicted records one evicted session.
func (m *Metrics) RecordSessionEvicted() {
	m.sessionsEvicted.Inc()
}
