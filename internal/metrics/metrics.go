// Package metrics holds the Prometheus collectors of the service. All of them
// are registered on the default registry and served at /v1/metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_query_duration_seconds",
			Help:    "Duration of store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	enrichBatchSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enrich_batch_size",
			Help:    "Number of records enriched per mapper call",
			Buckets: []float64{1, 5, 10, 20, 50, 100, 250, 500, 1000},
		},
		[]string{"kind"},
	)

	aggregateCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aggregate_cache_requests_total",
			Help: "Aggregate cache lookups per key, by source and result",
		},
		[]string{"source", "result"},
	)
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

func ObserveQuery(op string, start time.Time) {
	storeQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func ObserveBatch(kind string, size int) {
	enrichBatchSize.WithLabelValues(kind).Observe(float64(size))
}

func CountCache(source, result string, n int) {
	if n <= 0 {
		return
	}
	aggregateCacheRequests.WithLabelValues(source, result).Add(float64(n))
}
