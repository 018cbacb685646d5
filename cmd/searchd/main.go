// Package main implements searchd, an HTTP service that holds one DNA
// sequence in memory and runs parallel substring searches over it on request.
//
// Configuration:
//   - SEARCHD_ADDR: Listen address (default: ":8090")
//   - SEARCHD_INPUT: Sequence file to search; memory-mapped read-only
//   - SEARCHD_GENERATE: Length of a generated sequence when no input is set (default: 1000000)
//   - SEARCHD_SEED: Seed for the generated sequence (default: 1)
//   - SEARCHD_MAX_THREADS: Largest thread count a request may ask for (default: 128)
//   - SEARCHD_HISTORY: Number of recent runs kept for /runs (default: 256)
//   - SEARCHD_LOG_LEVEL: debug, info, warn or error (default: info)
//
// Example usage:
//
//	SEARCHD_INPUT=sequence20m.txt ./searchd
//
//	curl -X POST localhost:8090/search \
//	  -d '{"pattern":"tgttaaatt","threads":8}'
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dreamware/strandsearch/internal/metrics"
	"github.com/dreamware/strandsearch/internal/textsource"
)

func main() {
	addr := getenv("SEARCHD_ADDR", ":8090")
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(getenv("SEARCHD_LOG_LEVEL", "info")),
	}))

	text, closeText, err := loadText(
		getenv("SEARCHD_INPUT", ""),
		getenvInt("SEARCHD_GENERATE", 1_000_000),
		uint64(getenvInt("SEARCHD_SEED", 1)), //nolint:gosec // seed only
	)
	if err != nil {
		log.Fatalf("load text: %v", err)
	}
	defer closeText()

	reg := prometheus.NewRegistry()
	srv := newServer(text, config{
		maxThreads: getenvInt("SEARCHD_MAX_THREADS", 128),
		history:    getenvInt("SEARCHD_HISTORY", 256),
	}, logger, metrics.NewPrometheus(reg))

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("searchd listening on %s (%d bytes of text)", addr, len(text))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctx)
	log.Println("searchd stopped")
}

// loadText maps path when set, otherwise generates n bytes from seed.
// The returned function releases the text.
func loadText(path string, n int, seed uint64) ([]byte, func(), error) {
	if path == "" {
		if n < 0 {
			return nil, nil, fmt.Errorf("generated length must not be negative, got %d", n)
		}
		return textsource.Generate(n, seed), func() {}, nil
	}

	m, err := textsource.Map(path)
	if err != nil {
		return nil, nil, err
	}
	return m.Bytes(), func() { _ = m.Close() }, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", k, v, err)
		return def
	}
	return n
}
