// Package metrics exports search run metrics to Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus implements search.Observer.
type Prometheus struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	matches  prometheus.Gauge
}

// NewPrometheus creates the collectors and registers them with reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "strandsearch_runs_total",
			Help: "Total search runs completed",
		}, []string{"threads"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "strandsearch_run_duration_seconds",
			Help:    "Wall time of the parallel worker phase of a search run",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 16),
		}, []string{"threads"}),
		matches: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "strandsearch_matches",
			Help: "Distinct matches found by the most recent run",
		}),
	}

	reg.MustRegister(p.runs, p.duration, p.matches)
	return p
}

// RecordRun implements search.Observer.
func (p *Prometheus) RecordRun(threads int, elapsed time.Duration, matches int) {
	label := strconv.Itoa(threads)
	p.runs.WithLabelValues(label).Inc()
	p.duration.WithLabelValues(label).Observe(elapsed.Seconds())
	p.matches.Set(float64(matches))
}
