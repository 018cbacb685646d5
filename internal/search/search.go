package search

import (
	"bytes"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dreamware/strandsearch/internal/barrier"
	"github.com/dreamware/strandsearch/internal/matcher"
	"github.com/dreamware/strandsearch/internal/matchset"
	"github.com/dreamware/strandsearch/internal/partition"
)

// Run is the outcome of one parallel search.
type Run struct {
	Threads int           // Worker count actually used, at least 1
	Elapsed time.Duration // Wall time from first worker spawn to last join
	Offsets []int         // Distinct match offsets, ascending
	Raw     int           // Offsets reported by workers before dedup
}

// ElapsedMillis returns Elapsed in whole milliseconds.
func (r Run) ElapsedMillis() int64 {
	return r.Elapsed.Milliseconds()
}

// Searcher drives parallel searches over a shared, read-only text.
//
// Each run partitions the text, starts one worker goroutine per chunk plus a
// single consumer goroutine, and hands the consumer the finalized offsets
// once every worker has been joined. The collector is owned by the Searcher
// and reused across runs, so runs on the same Searcher are serialized.
// Separate Searchers share no state and may run concurrently.
type Searcher struct {
	matcher   matcher.Matcher
	collector matchset.Collector
	logger    *slog.Logger
	observer  Observer
	reporter  func(Run)

	// mu serializes RunOnce so the collector has one run at a time
	mu sync.Mutex
}

// New creates a Searcher. Without options it uses the naive matcher, a
// slice-backed collector, a discarding logger, and no observer.
func New(opts ...Option) *Searcher {
	s := &Searcher{
		matcher:   matcher.Naive{},
		collector: matchset.New(),
		logger:    slog.New(slog.DiscardHandler),
		observer:  NoopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunOnce searches text for pattern using numThreads workers and returns the
// elapsed worker time together with the sorted, deduplicated offsets.
//
// numThreads < 1 is treated as 1. An empty pattern, an empty text, or a
// pattern longer than the text all produce zero matches. The collector is
// empty again when RunOnce returns.
func (s *Searcher) RunOnce(text, pattern []byte, numThreads int) Run {
	s.mu.Lock()
	defer s.mu.Unlock()

	threads := max(numThreads, 1)
	chunks := partition.Partition(len(text), len(pattern), threads)
	matches := s.collector
	done := barrier.New()

	var (
		elapsed time.Duration
		run     Run
	)

	// The consumer only touches matches after the barrier opens, and the
	// barrier only opens after every worker has been joined
	consumed := make(chan struct{})
	go func() {
		defer close(consumed)
		done.Wait()

		raw := matches.Len()
		run = Run{
			Threads: threads,
			Elapsed: elapsed,
			Offsets: matches.Finalize(),
			Raw:     raw,
		}
		if s.reporter != nil {
			s.reporter(run)
		}
	}()

	start := time.Now()
	var workers errgroup.Group
	for _, c := range chunks {
		p := bytes.Clone(pattern)
		workers.Go(func() error {
			s.matcher.Find(text, p, c.Start, c.End, matches.Add)
			return nil
		})
	}
	_ = workers.Wait()
	elapsed = time.Since(start)

	done.Open()
	<-consumed
	matches.Reset()

	s.logger.Debug("search run completed",
		"threads", threads,
		"text_bytes", len(text),
		"pattern_bytes", len(pattern),
		"elapsed_ms", run.ElapsedMillis(),
		"raw", run.Raw,
		"matches", len(run.Offsets),
	)
	s.observer.RecordRun(threads, elapsed, len(run.Offsets))

	return run
}
