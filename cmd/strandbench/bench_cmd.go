package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dreamware/strandsearch/internal/bench"
	"github.com/dreamware/strandsearch/internal/search"
)

func newBenchCmd(opts *options) *cobra.Command {
	schedule := bench.DefaultSchedule()
	var threads, csvPath string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the search over a doubling schedule of thread counts",
		Long: `Run the search once per repetition at each thread count, doubling from
--start until --max is passed, and write one CSV row per run.

--threads takes an explicit comma-separated list and replaces the schedule.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := opts.patternBytes()
			if err != nil {
				return err
			}

			var steps []bench.Step
			if threads != "" {
				if steps, err = bench.ParseThreads(threads, schedule.Iterations); err != nil {
					return err
				}
			} else {
				if err := schedule.Validate(); err != nil {
					return err
				}
				steps = schedule.Steps()
			}

			text, release, err := opts.loadInput()
			if err != nil {
				return err
			}
			defer release()

			f, err := os.Create(csvPath)
			if err != nil {
				return fmt.Errorf("create csv: %w", err)
			}
			defer f.Close()

			csvSink, err := bench.NewCSVSink(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			logger := opts.logger(cmd.ErrOrStderr())
			display := bench.NewDisplay(out, opts.verbose)
			runner := &bench.Runner{
				Searcher: search.New(search.WithLogger(logger), search.WithReporter(display.Report)),
				Sinks:    []bench.Sink{csvSink},
				Logger:   logger,
			}

			timings, err := runner.Run(cmd.Context(), text, pattern, steps)
			if len(timings) > 0 {
				printSummary(out, summarize(timings), csvPath)
			}
			if err != nil {
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().IntVar(&schedule.Start, "start", schedule.Start, "First thread count")
	cmd.Flags().IntVar(&schedule.Max, "max", schedule.Max, "Largest thread count")
	cmd.Flags().IntVar(&schedule.Iterations, "iterations", schedule.Iterations, "Runs per thread count")
	cmd.Flags().StringVar(&threads, "threads", "", "Comma-separated thread counts, e.g. 1,4,16")
	cmd.Flags().StringVar(&csvPath, "csv", defaultCSV, "CSV file for timings")
	return cmd
}
