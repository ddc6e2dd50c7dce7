package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cours-de-latin/minpairs"
)

// metrics holds the query instruments. Each Server registers its own set
// on its own registry.
type metrics struct {
	queries  *prometheus.CounterVec
	duration prometheus.Histogram
	pairs    prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer, finder *minpairs.Finder) *metrics {
	f := promauto.With(reg)
	m := &metrics{
		// queries counts queries by outcome: ok, empty, invalid_specification, invalid_configuration
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "minpairs_queries_total",
			Help: "Minimal pair queries by outcome",
		}, []string{"outcome"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "minpairs_query_duration_seconds",
			Help:    "Minimal pair query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}),
		pairs: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "minpairs_query_pairs",
			Help:    "Number of pairs returned per query",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		}),
	}
	f.NewCounterFunc(prometheus.CounterOpts{
		Name: "minpairs_cache_hits_total",
		Help: "Query cache hits",
	}, func() float64 {
		hits, _ := finder.CacheStats()
		return float64(hits)
	})
	f.NewCounterFunc(prometheus.CounterOpts{
		Name: "minpairs_cache_misses_total",
		Help: "Query cache misses",
	}, func() float64 {
		_, misses := finder.CacheStats()
		return float64(misses)
	})
	f.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "minpairs_lexicon_records",
		Help: "Records in the loaded lexicon",
	}, func() float64 {
		return float64(finder.Lexicon().Len())
	})
	return m
}
