// Package search orchestrates one parallel exact-substring search.
//
// # Run Lifecycle
//
//	RunOnce(text, pattern, N)
//	  │
//	  ├─ partition.Partition(len(text), len(pattern), N)
//	  ├─ spawn consumer ──────────────► barrier.Wait()
//	  ├─ clock start                          │
//	  ├─ spawn N workers                      │
//	  │    matcher.Find(chunk) → collector.Add│
//	  ├─ join N workers                       │
//	  ├─ clock stop                           │
//	  ├─ barrier.Open() ──────────────────────┤
//	  │                                       ├─ collector.Finalize()
//	  │                                       └─ reporter(Run)
//	  ├─ join consumer
//	  └─ collector.Reset()
//
// # Concurrency Model
//
// The text is shared read-only by every worker. Each worker gets a private
// copy of the pattern. The collector is the only mutable state workers
// share, and every Add is linearized by its lock. The consumer reads the
// collector only after the barrier opens, and the barrier opens only after
// all workers are joined, so every Add happens before Finalize.
//
// The timed interval covers spawning and joining the workers only; the
// consumer's spawn, finalize and join are excluded.
//
// State is held per Searcher, never in package variables, so independent
// Searchers can run side by side (as tests and the HTTP service do).
package search
