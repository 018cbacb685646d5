package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dreamware/strandsearch/internal/bench"
)

type stepSummary struct {
	Threads    int
	Runs       int
	MeanMillis float64
	Speedup    float64 // relative to the first thread count; 0 when unmeasurable
}

// summarize groups timings by thread count in order of first appearance.
func summarize(timings []bench.Timing) []stepSummary {
	var rows []stepSummary
	index := make(map[int]int)
	totals := make(map[int]int64)

	for _, t := range timings {
		i, ok := index[t.Threads]
		if !ok {
			i = len(rows)
			index[t.Threads] = i
			rows = append(rows, stepSummary{Threads: t.Threads})
		}
		rows[i].Runs++
		totals[t.Threads] += t.Millis
	}

	for i := range rows {
		rows[i].MeanMillis = float64(totals[rows[i].Threads]) / float64(rows[i].Runs)
	}
	if len(rows) > 0 {
		base := rows[0].MeanMillis
		for i := range rows {
			if rows[i].MeanMillis > 0 {
				rows[i].Speedup = base / rows[i].MeanMillis
			}
		}
	}
	return rows
}

func printSummary(w io.Writer, rows []stepSummary, csvPath string) {
	fmt.Fprint(w, "\n"+color.CyanString("=== Benchmark Summary ===\n"))
	fmt.Fprintf(w, "%8s %6s %10s %8s\n", "threads", "runs", "mean (ms)", "speedup")
	for _, r := range rows {
		speedup := color.YellowString("%8s", "-")
		if r.Speedup > 0 {
			speedup = color.GreenString("%7.2fx", r.Speedup)
		}
		fmt.Fprintf(w, "%8d %6d %10.1f %s\n", r.Threads, r.Runs, r.MeanMillis, speedup)
	}
	fmt.Fprint(w, color.CyanString("Timings written to %s\n", csvPath))
}
