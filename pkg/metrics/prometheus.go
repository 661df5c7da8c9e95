// Package metrics provides Prometheus metrics for the scoring pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds all Prometheus metrics for the pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Ingestion metrics
	readingsIngested   *prometheus.CounterVec
	readingsRejected   *prometheus.CounterVec
	readingsSuperseded prometheus.Counter
	provisionalModels  prometheus.Counter

	// Run metrics
	runsSucceeded *prometheus.CounterVec
	runsFailed    *prometheus.CounterVec
	runDuration   *prometheus.HistogramVec

	// Board state metrics
	qualifiedModels *prometheus.GaugeVec
	trackedModels   *prometheus.GaugeVec
	ledgerDates     *prometheus.GaugeVec

	// Snapshot metrics
	snapshotsSealed   *prometheus.CounterVec
	snapshotLastUnix  *prometheus.GaugeVec
	integrityFailures *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// Registry returns the registry backing the global manager.
func Registry() *prometheus.Registry {
	return customRegistry
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "trainingrun",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
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

	m.readingsIngested = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "readings_ingested_total",
			Help:      "Total number of readings accepted into the store",
		},
		[]string{"board", "source"},
	)

	m.readingsRejected = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "readings_rejected_total",
			Help:      "Total number of readings rejected at ingestion (invalid value or type)",
		},
		[]string{"board", "source"},
	)

	m.readingsSuperseded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "readings_superseded_total",
		Help:      "Total number of readings that replaced an earlier reading for the same key",
	})

	m.provisionalModels = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "provisional_models_total",
		Help:      "Total number of provisional model identities created for unknown names",
	})

	m.runsSucceeded = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "runs_succeeded_total",
			Help:      "Total number of successful board scoring runs",
		},
		[]string{"board"},
	)

	m.runsFailed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "runs_failed_total",
			Help:      "Total number of failed board scoring runs",
		},
		[]string{"board"},
	)

	m.runDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "run_duration_seconds",
			Help:      "Duration of a full board scoring run in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"board"},
	)

	m.qualifiedModels = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "qualified_models",
			Help:      "Number of models that met the qualification threshold in the latest run",
		},
		[]string{"board"},
	)

	m.trackedModels = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "tracked_models",
			Help:      "Number of models carried in the board snapshot",
		},
		[]string{"board"},
	)

	m.ledgerDates = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "ledger_dates",
			Help:      "Length of the board's date axis",
		},
		[]string{"board"},
	)

	m.snapshotsSealed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "snapshots_sealed_total",
			Help:      "Total number of snapshots checksummed and published",
		},
		[]string{"board"},
	)

	m.snapshotLastUnix = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "snapshot_last_publish_unix",
			Help:      "Unix time of the last successful snapshot publish",
		},
		[]string{"board"},
	)

	m.integrityFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "integrity_failures_total",
			Help:      "Total number of checksum mismatches detected when reading snapshots",
		},
		[]string{"board"},
	)
}

// RecordReadingIngested increments the ingested readings counter.
func RecordReadingIngested(board, source string) {
	globalManager.readingsIngested.WithLabelValues(board, source).Inc()
}

// RecordReadingRejected increments the rejected readings counter.
func RecordReadingRejected(board, source string) {
	globalManager.readingsRejected.WithLabelValues(board, source).Inc()
}

// RecordReadingSuperseded increments the superseded readings counter.
func RecordReadingSuperseded() {
	globalManager.readingsSuperseded.Inc()
}

// RecordProvisionalModel increments the provisional identity counter.
func RecordProvisionalModel() {
	globalManager.provisionalModels.Inc()
}

// RecordRunSucceeded increments the successful runs counter for a board.
func RecordRunSucceeded(board string) {
	globalManager.runsSucceeded.WithLabelValues(board).Inc()
}

// RecordRunFailed increments the failed runs counter for a board.
func RecordRunFailed(board string) {
	globalManager.runsFailed.WithLabelValues(board).Inc()
}

// RecordRunDuration records the duration of a board run in seconds.
func RecordRunDuration(board string, seconds float64) {
	globalManager.runDuration.WithLabelValues(board).Observe(seconds)
}

// UpdateQualifiedModels sets the qualified model count for a board.
func UpdateQualifiedModels(board string, count int) {
	globalManager.qualifiedModels.WithLabelValues(board).Set(float64(count))
}

// UpdateTrackedModels sets the tracked model count for a board.
func UpdateTrackedModels(board string, count int) {
	globalManager.trackedModels.WithLabelValues(board).Set(float64(count))
}

// UpdateLedgerDates sets the date-axis length for a board.
func UpdateLedgerDates(board string, count int) {
	globalManager.ledgerDates.WithLabelValues(board).Set(float64(count))
}

// RecordSnapshotSealed increments the sealed snapshot counter for a board.
func RecordSnapshotSealed(board string) {
	globalManager.snapshotsSealed.WithLabelValues(board).Inc()
}

// UpdateSnapshotLastPublish sets the last publish time for a board.
func UpdateSnapshotLastPublish(board string, unix int64) {
	globalManager.snapshotLastUnix.WithLabelValues(board).Set(float64(unix))
}

// RecordIntegrityFailure increments the checksum mismatch counter for a board.
func RecordIntegrityFailure(board string) {
	globalManager.integrityFailures.WithLabelValues(board).Inc()
}
