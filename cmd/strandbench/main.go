// Command strandbench times parallel substring search over a DNA sequence
// across a range of thread counts.
//
// Example usage:
//
//	strandbench generate --length 20000000
//	strandbench bench --pattern tgttaaatt --max 128 --iterations 3
//	strandbench search --threads 8 --verbose
//	strandbench query --addr http://localhost:8090 --threads 8
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dreamware/strandsearch/internal/textsource"
)

const (
	defaultInput   = "sequence20m.txt"
	defaultPattern = "tgttaaatt"
	defaultCSV     = "benchmark.csv"
)

// options holds the flags shared by every subcommand.
type options struct {
	input    string
	pattern  string
	generate int
	seed     uint64
	mmap     bool
	verbose  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "strandbench",
		Short: "Parallel substring search benchmark",
		Long: `strandbench searches a DNA sequence for every occurrence of a pattern,
splitting the text across worker threads, and records how long each run takes.

Use 'strandbench help <command>' for more information on a specific command.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.input, "input", defaultInput, "Sequence file to search")
	root.PersistentFlags().StringVar(&opts.pattern, "pattern", defaultPattern, "Pattern to search for")
	root.PersistentFlags().IntVar(&opts.generate, "generate", 0, "Search a generated sequence of this length instead of --input")
	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 1, "Seed for generated sequences")
	root.PersistentFlags().BoolVar(&opts.mmap, "mmap", false, "Memory-map the input instead of reading it")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Print every match offset and debug logs")

	root.AddCommand(
		newBenchCmd(opts),
		newSearchCmd(opts),
		newQueryCmd(opts),
		newGenerateCmd(opts),
	)
	return root
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *options) patternBytes() ([]byte, error) {
	if o.pattern == "" {
		return nil, errors.New("pattern must not be empty")
	}
	return []byte(o.pattern), nil
}

// loadInput returns the text to search and a function releasing it.
func (o *options) loadInput() ([]byte, func(), error) {
	if o.generate > 0 {
		return textsource.Generate(o.generate, o.seed), func() {}, nil
	}

	if o.mmap {
		m, err := textsource.Map(o.input)
		if err != nil {
			return nil, nil, loadError(o.input, err)
		}
		return m.Bytes(), func() { _ = m.Close() }, nil
	}

	text, err := textsource.Load(o.input)
	if err != nil {
		return nil, nil, loadError(o.input, err)
	}
	return text, func() {}, nil
}

func loadError(path string, err error) error {
	return fmt.Errorf("unable to load text file, make sure %s is in the folder you run strandbench from: %w", path, err)
}
