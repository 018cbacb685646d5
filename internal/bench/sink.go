package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/dreamware/strandsearch/internal/search"
)

// Timing is one benchmark record: the thread count and the elapsed worker
// time of a single run. Matches is carried along but not written to CSV.
type Timing struct {
	Threads int   `json:"threads"`
	Millis  int64 `json:"elapsed_ms"`
	Matches int   `json:"matches"`
}

// Sink consumes timings as a benchmark progresses.
type Sink interface {
	Record(t Timing) error
	Flush() error
}

// CSVHeader is the first line written by CSVSink
var CSVHeader = []string{"threads", "time (ms)"}

// CSVSink writes one header line and then one "threads,millis" row per run.
type CSVSink struct {
	w *csv.Writer
}

// NewCSVSink writes the header to w and returns the sink.
func NewCSVSink(w io.Writer) (*CSVSink, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	return &CSVSink{w: cw}, nil
}

// Record writes a row
func (s *CSVSink) Record(t Timing) error {
	return s.w.Write([]string{strconv.Itoa(t.Threads), strconv.FormatInt(t.Millis, 10)})
}

// Flush writes buffered rows to the underlying writer
func (s *CSVSink) Flush() error {
	s.w.Flush()
	return s.w.Error()
}

// Display prints the per-run report: every match offset when verbose, the
// match count, and the time taken. It is meant to be installed as a
// search.WithReporter callback so printing happens on the consumer side.
type Display struct {
	mu      sync.Mutex
	w       io.Writer
	verbose bool
}

// NewDisplay creates a Display writing to w.
func NewDisplay(w io.Writer, verbose bool) *Display {
	return &Display{w: w, verbose: verbose}
}

// Report prints run
func (d *Display) Report(run search.Run) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(run.Offsets) == 0 {
		fmt.Fprintln(d.w, "No matches found")
	} else {
		if d.verbose {
			for _, offset := range run.Offsets {
				fmt.Fprintf(d.w, "Found match at index: %d\n", offset)
			}
		}
		fmt.Fprintf(d.w, "Found %d matches\n", len(run.Offsets))
	}
	fmt.Fprintf(d.w, "Time taken: %dms using %d thread(s)\n", run.ElapsedMillis(), run.Threads)
}
