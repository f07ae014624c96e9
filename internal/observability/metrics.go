package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusnet_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "campusnet_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// FeedCacheResults counts feed cache lookups by outcome (hit or miss).
	FeedCacheResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusnet_feed_cache_results_total",
		Help: "Total feed cache lookups by outcome",
	}, []string{"outcome"})

	// InteractionsRecorded counts recorded interactions by type.
	InteractionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusnet_interactions_recorded_total",
		Help: "Total interactions recorded by type",
	}, []string{"type"})

	// RecommendationsServed counts recommendation responses by source strategy.
	RecommendationsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusnet_recommendations_served_total",
		Help: "Total recommendation responses by source strategy",
	}, []string{"source"})
)

// DatabaseMetrics wraps query latency recording.
type DatabaseMetrics struct{}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics() *DatabaseMetrics {
	return &DatabaseMetrics{}
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
