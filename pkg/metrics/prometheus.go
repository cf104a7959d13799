package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the flight pipeline
type Metrics struct {
	LookupsServed  prometheus.Counter
	CacheHits      prometheus.Counter
	ProviderCalls  prometheus.Counter
	Fallbacks      *prometheus.CounterVec
	LookupDuration prometheus.Histogram
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		LookupsServed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_served_total",
			Help:      "The total number of flight status lookups served",
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "The total number of lookups answered from the cache",
		}),
		ProviderCalls: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "The total number of calls made to the flight provider",
		}),
		Fallbacks: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallbacks_total",
			Help:      "The total number of synthetic fallback responses",
		}, []string{"reason"}),
		LookupDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Time taken to answer a flight status lookup",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
