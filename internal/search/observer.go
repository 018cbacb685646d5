package search

import "time"

// Observer defines an interface for collecting per-run metrics.
// Implement it to feed a monitoring system; see internal/metrics for a
// Prometheus implementation.
type Observer interface {
	// RecordRun is called after each run with the thread count, the timed
	// worker phase, and the number of distinct matches
	RecordRun(threads int, elapsed time.Duration, matches int)
}

// NoopObserver is a no-op implementation of Observer.
type NoopObserver struct{}

func (NoopObserver) RecordRun(int, time.Duration, int) {}
