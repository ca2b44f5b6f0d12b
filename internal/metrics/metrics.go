package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RuleEvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dotoo_rule_evaluations_total",
			Help: "Total activity rule evaluations by verdict",
		},
		[]string{"suitability"},
	)

	RuleFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dotoo_rule_failures_total",
			Help: "Activity rules that panicked during evaluation",
		},
		[]string{"rule"},
	)

	FetchCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dotoo_fetch_calls_total",
			Help: "Total forecast page fetches",
		},
		[]string{"site", "status"},
	)

	FetchLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dotoo_fetch_latency_seconds",
			Help:    "Forecast page fetch latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"site"},
	)

	SnapshotCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dotoo_snapshot_cache_hits_total",
			Help: "Recommendations served from a cached forecast snapshot",
		},
	)

	SnapshotFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dotoo_snapshot_fallbacks_total",
			Help: "Fetch failures answered from an older cached snapshot",
		},
	)
)

// WriteTextfile writes every registered metric in the node exporter textfile
// format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
