package bench

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dreamware/strandsearch/internal/search"
)

// Runner executes a schedule against one Searcher and feeds every timing to
// its sinks.
type Runner struct {
	Searcher *search.Searcher
	Sinks    []Sink
	Logger   *slog.Logger
}

// Run performs every repetition of every step in order. Cancellation is
// checked between runs; a run that has started always completes.
// Sinks are flushed before returning, also on error.
func (r *Runner) Run(ctx context.Context, text, pattern []byte, steps []Step) (timings []Timing, err error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	defer func() {
		for _, s := range r.Sinks {
			if ferr := s.Flush(); ferr != nil && err == nil {
				err = fmt.Errorf("flush sink: %w", ferr)
			}
		}
	}()

	for _, step := range steps {
		var total int64
		for rep := 0; rep < step.Repetitions; rep++ {
			if err := ctx.Err(); err != nil {
				return timings, err
			}

			run := r.Searcher.RunOnce(text, pattern, step.Threads)
			t := Timing{Threads: run.Threads, Millis: run.ElapsedMillis(), Matches: len(run.Offsets)}
			timings = append(timings, t)
			total += t.Millis

			for _, s := range r.Sinks {
				if err := s.Record(t); err != nil {
					return timings, fmt.Errorf("record timing: %w", err)
				}
			}
		}

		logger.Info("benchmark step completed",
			"threads", step.Threads,
			"repetitions", step.Repetitions,
			"mean_ms", float64(total)/float64(max(step.Repetitions, 1)),
		)
	}

	return timings, nil
}
