package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "brewnotes"

// Metrics holds the Prometheus collectors used by the application.
// All methods are safe to call on a nil *Metrics, which records nothing.
type Metrics struct {
	registry *prometheus.Registry

	exciseCalculations  *prometheus.CounterVec
	exciseSubmissions   prometheus.Counter
	batchesRecorded     prometheus.Counter
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on a dedicated registry
// together with the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		exciseCalculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "excise_calculations_total",
			Help:      "Total number of excise calculations, by pipeline entry stage",
		}, []string{"entry"}),
		exciseSubmissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "excise_submissions_total",
			Help:      "Total number of accepted excise calculator submissions",
		}),
		batchesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_recorded_total",
			Help:      "Total number of recorded batches",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP request handling in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.exciseCalculations,
		m.exciseSubmissions,
		m.batchesRecorded,
		m.httpRequests,
		m.httpRequestDuration,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveCalculation counts one pass through the excise pipeline.
func (m *Metrics) ObserveCalculation(entry string) {
	if m == nil {
		return
	}
	m.exciseCalculations.WithLabelValues(entry).Inc()
}

// ObserveSubmission counts one accepted calculator submission.
func (m *Metrics) ObserveSubmission() {
	if m == nil {
		return
	}
	m.exciseSubmissions.Inc()
}

// ObserveBatchRecorded counts one recorded batch.
func (m *Metrics) ObserveBatchRecorded() {
	if m == nil {
		return
	}
	m.batchesRecorded.Inc()
}

// ObserveHTTPRequest records the outcome and latency of one HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, status, route string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, status).Inc()
	m.httpRequestDuration.WithLabelValues(route).Observe(seconds)
}
