// Package metrics provides Prometheus metrics for the bacrama ranking tool.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus collectors of the ranking pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	deltaBuckets     []float64
	registry         prometheus.Registerer

	// Ranking
	batchesEvaluated  prometheus.Counter
	duelsEvaluated    prometheus.Counter
	evaluationLatency prometheus.Histogram
	ratingDelta       prometheus.Histogram
	batchDisplacement prometheus.Histogram

	// Registry
	bacchiatoriRegistered prometheus.Gauge
	bacchiatoriPlacing    prometheus.Gauge

	// Ingestion
	filesLoaded prometheus.Counter
	loadLatency prometheus.Histogram

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorRateByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "bacrama",
		subsystem:        "ranking",
		histogramBuckets: prometheus.DefBuckets,
		deltaBuckets:     []float64{-150, -100, -50, -25, -10, -1, 0, 1, 10, 25, 50, 100, 150},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.batchesEvaluated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batches_evaluated_total",
		Help:      "Total number of rating batches evaluated",
	})

	m.duelsEvaluated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duels_evaluated_total",
		Help:      "Total number of duels folded into ratings",
	})

	m.evaluationLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluation_latency_milliseconds",
		Help:      "Time spent building and evaluating one batch in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.ratingDelta = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duel_rating_delta",
		Help:      "Rating delta reported for each side of each duel",
		Buckets:   m.deltaBuckets,
	})

	m.batchDisplacement = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_displacement",
		Help:      "Sum of absolute rating deltas applied by a batch",
		Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
	})

	m.bacchiatoriRegistered = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "bacchiatori_registered",
		Help:      "Number of bacchiatori known to the registry",
	})

	m.bacchiatoriPlacing = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "bacchiatori_placing",
		Help:      "Number of bacchiatori in their placement period at the start of the last batch",
	})

	m.filesLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "files_loaded_total",
		Help:      "Total number of simulation files parsed",
	})

	m.loadLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "load_latency_milliseconds",
		Help:      "Time spent parsing one simulation file in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component",
		},
		[]string{"component", "error_type"},
	)
}

// RecordBatchEvaluated counts one evaluated batch and its duels.
func RecordBatchEvaluated(duels int, latencyMs float64) {
	globalManager.batchesEvaluated.Inc()
	globalManager.duelsEvaluated.Add(float64(duels))
	globalManager.evaluationLatency.Observe(latencyMs)
}

// RecordRatingDelta records the delta reported for one side of a duel.
func RecordRatingDelta(delta int) {
	globalManager.ratingDelta.Observe(float64(delta))
}

// RecordBatchDisplacement records the total rating movement of a batch.
func RecordBatchDisplacement(displacement int) {
	globalManager.batchDisplacement.Observe(float64(displacement))
}

// UpdateBacchiatoriRegistered sets the registry size.
func UpdateBacchiatoriRegistered(count int) {
	globalManager.bacchiatoriRegistered.Set(float64(count))
}

// UpdateBacchiatoriPlacing sets the placing count of the last batch.
func UpdateBacchiatoriPlacing(count int) {
	globalManager.bacchiatoriPlacing.Set(float64(count))
}

// RecordFileLoaded counts one parsed file.
func RecordFileLoaded(latencyMs float64) {
	globalManager.filesLoaded.Inc()
	globalManager.loadLatency.Observe(latencyMs)
}

// RecordHTTPRequest counts one served request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records the latency of one served request.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes the current metrics in text exposition format to path,
// for pickup by a node_exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, customRegistry); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return nil
}
