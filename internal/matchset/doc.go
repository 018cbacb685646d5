// Package matchset collects match offsets reported by concurrent search
// workers and turns them into the final result.
//
// Workers call Add from many goroutines. Offsets arrive in no particular
// order, and the same offset may arrive twice when a matcher reports an
// occurrence that lies inside the overlap window of two adjacent chunks.
// Once every worker has been joined, a single owner calls Finalize to get
// the deduplicated, ascending sequence.
//
// Two collectors are provided:
//   - MatchSet: a mutex-guarded slice; Finalize sorts and compacts in place.
//   - Bitmap: a roaring bitmap; dedup happens on insert.
//
// Both reset to empty for reuse across benchmark runs.
package matchset
