package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the ingestion service

var (
	// Fetch metrics
	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mlbstats_fetches_total",
			Help: "Total number of upstream source fetches",
		},
		[]string{"source", "status"},
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mlbstats_fetch_duration_seconds",
			Help:    "Duration of upstream fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// Load metrics
	RowsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mlbstats_rows_ingested_total",
			Help: "Total number of rows inserted per table",
		},
		[]string{"table"},
	)

	RowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mlbstats_rows_skipped_total",
			Help: "Total number of rows skipped as already present",
		},
		[]string{"table"},
	)

	DaysSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mlbstats_statcast_days_skipped_total",
			Help: "Total number of statcast days skipped after fetch failure",
		},
	)

	LoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mlbstats_load_duration_seconds",
			Help:    "Duration of load operations in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"table"},
	)

	// Database metrics
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mlbstats_db_connections_active",
			Help: "Number of active database connections",
		},
	)

	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mlbstats_db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// Cache metrics
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mlbstats_cache_hits_total",
			Help: "Total number of archive cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mlbstats_cache_misses_total",
			Help: "Total number of archive cache misses",
		},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mlbstats_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)

	// Refresh metrics
	LastSuccessfulRefresh = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mlbstats_last_successful_refresh_timestamp",
			Help: "Timestamp of last successful nightly refresh",
		},
	)

	SystemUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mlbstats_system_uptime_seconds",
			Help: "System uptime in seconds",
		},
	)
)

// RecordFetch records an upstream fetch
func RecordFetch(source, status string, duration float64) {
	FetchesTotal.WithLabelValues(source, status).Inc()
	FetchDuration.WithLabelValues(source).Observe(duration)
}

// RecordLoad records a completed load for a table
func RecordLoad(table string, inserted, skipped int, duration float64) {
	RowsIngested.WithLabelValues(table).Add(float64(inserted))
	RowsSkipped.WithLabelValues(table).Add(float64(skipped))
	LoadDuration.WithLabelValues(table).Observe(duration)
}

// RecordDaySkipped records a statcast day abandoned after a fetch failure
func RecordDaySkipped() {
	DaysSkipped.Inc()
}

// RecordCacheHit records an archive cache hit
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss records an archive cache miss
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// RecordError records an error
func RecordError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}

// UpdateDBConnectionStats updates database connection pool statistics
func UpdateDBConnectionStats(active, idle int32) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
