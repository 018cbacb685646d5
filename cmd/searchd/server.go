package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slices"

	"github.com/dreamware/strandsearch/internal/api"
	"github.com/dreamware/strandsearch/internal/bench"
	"github.com/dreamware/strandsearch/internal/search"
)

type config struct {
	maxThreads int // Largest thread count accepted per run
	history    int // Recent runs kept for /runs
}

type server struct {
	text     []byte
	cfg      config
	searcher *search.Searcher
	logger   *slog.Logger

	mu   sync.RWMutex
	runs []api.RunSummary
}

func newServer(text []byte, cfg config, logger *slog.Logger, observer search.Observer) *server {
	if cfg.maxThreads < 1 {
		cfg.maxThreads = 1
	}
	if cfg.history < 0 {
		cfg.history = 0
	}
	return &server{
		text:     text,
		cfg:      cfg,
		searcher: search.New(search.WithLogger(logger), search.WithObserver(observer)),
		logger:   logger,
	}
}

func (s *server) routes(gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/search", s.handleSearch)
	mux.HandleFunc("/benchmark", s.handleBenchmark)
	mux.HandleFunc("/runs", s.handleRuns)
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

// handleSearch runs one search over the loaded text
func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req api.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Pattern == "" {
		http.Error(w, "pattern required", http.StatusBadRequest)
		return
	}
	if req.Threads == 0 {
		req.Threads = 1
	}
	if req.Threads < 0 || req.Threads > s.cfg.maxThreads {
		http.Error(w, fmt.Sprintf("threads must be in range [1, %d]", s.cfg.maxThreads), http.StatusBadRequest)
		return
	}
	if req.MaxOffsets < 0 {
		http.Error(w, "max_offsets must not be negative", http.StatusBadRequest)
		return
	}

	run := s.searcher.RunOnce(s.text, []byte(req.Pattern), req.Threads)
	s.record(req.Pattern, run.Threads, run.ElapsedMillis(), len(run.Offsets))

	resp := api.SearchResponse{
		Threads:       run.Threads,
		ElapsedMillis: run.ElapsedMillis(),
		Matches:       len(run.Offsets),
		Offsets:       run.Offsets,
	}
	if resp.Offsets == nil {
		resp.Offsets = []int{}
	}
	if req.MaxOffsets > 0 && len(resp.Offsets) > req.MaxOffsets {
		resp.Offsets = resp.Offsets[:req.MaxOffsets]
		resp.Truncated = true
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// handleBenchmark runs a doubling thread schedule over the loaded text
func (s *server) handleBenchmark(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req api.BenchmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Pattern == "" {
		http.Error(w, "pattern required", http.StatusBadRequest)
		return
	}

	schedule := bench.Schedule{Start: req.Start, Max: req.Max, Iterations: req.Iterations}
	if schedule.Start == 0 {
		schedule.Start = bench.DefaultStartThreads
	}
	if schedule.Max == 0 {
		schedule.Max = min(bench.DefaultMaxThreads, s.cfg.maxThreads)
	}
	if schedule.Iterations == 0 {
		schedule.Iterations = bench.DefaultIterations
	}
	if err := schedule.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if schedule.Max > s.cfg.maxThreads {
		http.Error(w, fmt.Sprintf("max threads must not exceed %d", s.cfg.maxThreads), http.StatusBadRequest)
		return
	}

	runner := &bench.Runner{
		Searcher: s.searcher,
		Sinks:    []bench.Sink{&historySink{srv: s, pattern: req.Pattern}},
		Logger:   s.logger,
	}
	timings, err := runner.Run(r.Context(), s.text, []byte(req.Pattern), schedule.Steps())
	if err != nil {
		// historySink never fails, so the request was cancelled
		s.logger.Warn("benchmark aborted", "error", err, "completed_runs", len(timings))
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(api.BenchmarkResponse{Timings: timings})
}

// handleRuns returns the most recent runs, oldest first
func (s *server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	runs := slices.Clone(s.runs)
	s.mu.RUnlock()
	if runs == nil {
		runs = []api.RunSummary{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(api.RunsResponse{
		TextBytes: len(s.text),
		Runs:      runs,
	})
}

// record appends a run to the bounded history
func (s *server) record(pattern string, threads int, elapsedMillis int64, matches int) {
	if s.cfg.history == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = append(s.runs, api.RunSummary{
		At:            time.Now().UTC(),
		Pattern:       pattern,
		Threads:       threads,
		ElapsedMillis: elapsedMillis,
		Matches:       matches,
	})
	if over := len(s.runs) - s.cfg.history; over > 0 {
		s.runs = slices.Delete(s.runs, 0, over)
	}
}

// historySink records benchmark timings in the run history
type historySink struct {
	srv     *server
	pattern string
}

func (h *historySink) Record(t bench.Timing) error {
	h.srv.record(h.pattern, t.Threads, t.Millis, t.Matches)
	return nil
}

func (h *historySink) Flush() error { return nil }
