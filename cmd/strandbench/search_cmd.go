package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dreamware/strandsearch/internal/api"
	"github.com/dreamware/strandsearch/internal/bench"
	"github.com/dreamware/strandsearch/internal/search"
	"github.com/dreamware/strandsearch/internal/textsource"
)

func newSearchCmd(opts *options) *cobra.Command {
	var threads int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run the search once and print the matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := opts.patternBytes()
			if err != nil {
				return err
			}
			if threads < 1 {
				return fmt.Errorf("threads must be at least 1, got %d", threads)
			}

			text, release, err := opts.loadInput()
			if err != nil {
				return err
			}
			defer release()

			display := bench.NewDisplay(cmd.OutOrStdout(), opts.verbose)
			searcher := search.New(
				search.WithLogger(opts.logger(cmd.ErrOrStderr())),
				search.WithReporter(display.Report),
			)
			searcher.RunOnce(text, pattern, threads)
			return nil
		},
	}

	cmd.Flags().IntVar(&threads, "threads", 1, "Worker threads")
	return cmd
}

func newQueryCmd(opts *options) *cobra.Command {
	var (
		addr       string
		threads    int
		maxOffsets int
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Ask a running searchd to search its sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.patternBytes(); err != nil {
				return err
			}

			var resp api.SearchResponse
			err := api.PostJSON(cmd.Context(), strings.TrimRight(addr, "/")+"/search", api.SearchRequest{
				Pattern:    opts.pattern,
				Threads:    threads,
				MaxOffsets: maxOffsets,
			}, &resp)
			if err != nil {
				return fmt.Errorf("query %s: %w", addr, err)
			}

			out := cmd.OutOrStdout()
			if resp.Matches == 0 {
				fmt.Fprintln(out, "No matches found")
			} else {
				if opts.verbose {
					for _, offset := range resp.Offsets {
						fmt.Fprintf(out, "Found match at index: %d\n", offset)
					}
					if resp.Truncated {
						fmt.Fprintf(out, "(%d more not shown)\n", resp.Matches-len(resp.Offsets))
					}
				}
				fmt.Fprintf(out, "Found %d matches\n", resp.Matches)
			}
			fmt.Fprintf(out, "Time taken: %dms using %d thread(s)\n", resp.ElapsedMillis, resp.Threads)
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "http://localhost:8090", "searchd base URL")
	cmd.Flags().IntVar(&threads, "threads", 1, "Worker threads searchd should use")
	cmd.Flags().IntVar(&maxOffsets, "max-offsets", 0, "Limit the offsets returned (0 for all)")
	return cmd
}

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		length int
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random sequence over " + textsource.Alphabet,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if length < 0 {
				return fmt.Errorf("length must not be negative, got %d", length)
			}
			if err := os.WriteFile(output, textsource.Generate(length, opts.seed), 0o644); err != nil {
				return fmt.Errorf("write sequence: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", length, output)
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 20_000_000, "Sequence length in bytes")
	cmd.Flags().StringVarP(&output, "output", "o", defaultInput, "Output file")
	return cmd
}
