// Package metrics exports search statistics to Prometheus.
//
// A Collector implements thetastar.Observer; pass it to a Finder with
// thetastar.WithObserver. All series are registered on the Registerer given
// to NewCollector, so tests and tools can use a private registry.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/thetanav/thetastar"
)

// Collector turns finished searches into Prometheus series.
type Collector struct {
	searches *prometheus.CounterVec
	checks   prometheus.Counter
	expanded prometheus.Histogram
	points   prometheus.Histogram
	duration prometheus.Histogram
}

// NewCollector registers the thetanav series on reg. A nil reg uses the
// default registerer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		// searches counts finished searches by outcome
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "thetanav_searches_total",
			Help: "Total path searches by outcome",
		}, []string{"outcome"}),

		checks: f.NewCounter(prometheus.CounterOpts{
			Name: "thetanav_visibility_checks_total",
			Help: "Total line-of-sight queries issued by searches",
		}),

		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "thetanav_expanded_nodes",
			Help:    "Nodes closed per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
		}),

		points: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "thetanav_path_points",
			Help:    "Points in each returned path",
			Buckets: []float64{1, 2, 3, 4, 6, 8, 12, 16, 32},
		}),

		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "thetanav_search_duration_seconds",
			Help:    "Search wall time in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
	}
}

// ObserveSearch implements thetastar.Observer.
func (c *Collector) ObserveSearch(res *thetastar.Result, elapsed time.Duration) {
	c.searches.WithLabelValues(res.Outcome.String()).Inc()
	c.checks.Add(float64(res.VisibilityChecks))
	c.expanded.Observe(float64(res.Expanded))
	c.points.Observe(float64(len(res.Path)))
	c.duration.Observe(elapsed.Seconds())
}

// Searches returns the counter for searches that ended with outcome.
func (c *Collector) Searches(outcome thetastar.Outcome) prometheus.Counter {
	return c.searches.WithLabelValues(outcome.String())
}

// VisibilityChecks returns the line-of-sight query counter.
func (c *Collector) VisibilityChecks() prometheus.Counter {
	return c.checks
}

// WriteText writes every family gathered from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
