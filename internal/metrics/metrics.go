package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ScansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "scans_total", Help: "Tickers analyzed, by result status"},
		[]string{"status"},
	)
	CacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "cache_hits_total", Help: "Analysis reports served from cache"},
	)
	FetchErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "fetch_errors_total", Help: "Upstream data fetch failures"},
	)
	BatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "batch_scan_duration_seconds",
			Help:    "Wall-clock duration of full universe scans",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)
)

func init() {
	prometheus.MustRegister(ScansTotal, CacheHitsTotal, FetchErrorsTotal, BatchDuration)
}
