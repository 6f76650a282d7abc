// Package metrics provides Prometheus metrics for the vitarank match service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// scoreBuckets histogram buckets for 0-100 score distributions.
var scoreBuckets = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100} //nolint:gochecknoglobals // shared bucket layout

// Manager manages all Prometheus metrics for the vitarank service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core Business Metrics - scoring and ranking throughput
	matchRequests  prometheus.Counter
	productsScored prometheus.Counter
	floorDiscards  prometheus.Counter
	rankLatency    prometheus.Histogram
	composeLatency prometheus.Histogram

	// Score Quality Metrics - distribution of emitted scores
	totalScores prometheus.Histogram
	subScores   *prometheus.HistogramVec

	// Operational Health Metrics
	catalogSize prometheus.Gauge
	workerCount prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	scoringErrors     prometheus.Counter
	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "vitarank",
		subsystem:        "match",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.matchRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "match_requests_total",
		Help:      "Total number of catalog match requests served",
	})

	m.productsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "products_scored_total",
		Help:      "Total number of products composed into match results",
	})

	m.floorDiscards = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "floor_discards_total",
		Help:      "Total number of products discarded below the relevance floor",
	})

	m.rankLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_latency_milliseconds",
		Help:      "Histogram of catalog rank latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.composeLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "compose_latency_milliseconds",
		Help:      "Histogram of single-product compose latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.totalScores = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_score",
		Help:      "Distribution of emitted total match scores",
		Buckets:   scoreBuckets,
	})

	m.subScores = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "sub_score",
			Help:      "Distribution of emitted sub-scores by component",
			Buckets:   scoreBuckets,
		},
		[]string{"component"},
	)

	m.catalogSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_size",
		Help:      "Current number of products in the catalog",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Configured number of scoring workers",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.scoringErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_errors_total",
		Help:      "Total number of scoring errors",
	})

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total errors by component and error type",
		},
		[]string{"component", "error_type"},
	)
}

// RecordMatchRequest increments the match request counter.
func RecordMatchRequest() {
	globalManager.matchRequests.Inc()
}

// RecordProductScored increments the products scored counter.
func RecordProductScored() {
	globalManager.productsScored.Inc()
}

// RecordFloorDiscard increments the relevance floor discard counter.
func RecordFloorDiscard() {
	globalManager.floorDiscards.Inc()
}

// RecordRankLatency records catalog rank latency in milliseconds.
func RecordRankLatency(latencyMs float64) {
	globalManager.rankLatency.Observe(latencyMs)
}

// RecordComposeLatency records single-product compose latency in milliseconds.
func RecordComposeLatency(latencyMs float64) {
	globalManager.composeLatency.Observe(latencyMs)
}

// RecordTotalScore records an emitted total match score.
func RecordTotalScore(score float64) {
	globalManager.totalScores.Observe(score)
}

// RecordSubScore records an emitted sub-score for a component.
func RecordSubScore(component string, score float64) {
	globalManager.subScores.WithLabelValues(component).Observe(score)
}

// UpdateCatalogSize updates the catalog size gauge.
func UpdateCatalogSize(size int) {
	globalManager.catalogSize.Set(float64(size))
}

// UpdateWorkerCount updates the worker count gauge.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordScoringError increments the scoring error counter.
func RecordScoringError() {
	globalManager.scoringErrors.Inc()
}

// RecordErrorByComponent increments the per-component error counter.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
