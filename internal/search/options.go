package search

import (
	"log/slog"

	"github.com/dreamware/strandsearch/internal/matcher"
	"github.com/dreamware/strandsearch/internal/matchset"
)

// Option configures a Searcher.
type Option func(*Searcher)

// WithMatcher sets the matching algorithm. Defaults to matcher.Naive.
func WithMatcher(m matcher.Matcher) Option {
	return func(s *Searcher) {
		if m != nil {
			s.matcher = m
		}
	}
}

// WithCollector sets the factory for the Searcher's match collector.
// The factory is called once; the collector is reused for every run of that
// Searcher. Defaults to matchset.New.
func WithCollector(newCollector func() matchset.Collector) Option {
	return func(s *Searcher) {
		if newCollector != nil {
			s.collector = newCollector()
		}
	}
}

// WithLogger sets the structured logger. Defaults to discarding output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver sets the metrics observer notified after every run.
func WithObserver(o Observer) Option {
	return func(s *Searcher) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithReporter sets a function invoked by the consumer goroutine with the
// finalized result of every run, before RunOnce returns.
func WithReporter(report func(Run)) Option {
	return func(s *Searcher) {
		s.reporter = report
	}
}
