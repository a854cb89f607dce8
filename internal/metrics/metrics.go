// Package metrics exposes prometheus collectors fed by frontier search hooks.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector groups the search metrics registered on one registry.
type Collector struct {
	levels         prometheus.Counter
	frontierSize   prometheus.Histogram
	searches       *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	stableForests  prometheus.Gauge
}

// NewCollector registers the search metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		levels: f.NewCounter(prometheus.CounterOpts{
			Name: "magicforest_levels_total",
			Help: "Frontier levels built across all searches",
		}),
		frontierSize: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "magicforest_frontier_size",
			Help:    "Number of distinct forests per frontier level",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "magicforest_searches_total",
			Help: "Searches by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		searchDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "magicforest_search_duration_seconds",
			Help:    "Wall time of a full search",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"strategy"}),
		stableForests: f.NewGauge(prometheus.GaugeOpts{
			Name: "magicforest_stable_forests",
			Help: "Stable forests returned by the last search",
		}),
	}
}

// ObserveLevel records one frontier level. Its signature matches
// frontier.WithOnLevel.
func (c *Collector) ObserveLevel(_ int, size int) error {
	c.levels.Inc()
	c.frontierSize.Observe(float64(size))

	return nil
}

// ObserveSearch records a finished search. stable is ignored when err is non-nil.
func (c *Collector) ObserveSearch(strategy string, elapsed time.Duration, stable int, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	} else {
		c.stableForests.Set(float64(stable))
	}
	c.searches.WithLabelValues(strategy, outcome).Inc()
	c.searchDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}
