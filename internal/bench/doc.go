// Package bench is the benchmark harness around the search core: it expands
// a thread-count schedule, runs each step through a search.Searcher, and
// hands timings to sinks such as a CSV file.
//
// The default schedule mirrors the classic experiment: thread counts
// 1, 2, 4, ... 128, one run each, results written as
//
//	threads,time (ms)
//	1,212
//	2,108
//	...
package bench
