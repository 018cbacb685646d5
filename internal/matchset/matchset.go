package matchset

import (
	"sync"

	"golang.org/x/exp/slices"
)

// Collector defines the interface for gathering match offsets from
// concurrent workers.
// Add must be safe for concurrent use; Finalize, Len and Reset are called by
// a single owner once every worker has stopped adding.
type Collector interface {
	// Add records one match offset
	Add(offset int)

	// Len returns the number of offsets added since the last Reset
	Len() int

	// Finalize returns the deduplicated offsets in ascending order
	// Calling it again without further Adds returns the same sequence
	Finalize() []int

	// Reset empties the collector for reuse
	Reset()
}

// Stats contains counters about a collector's contents
type Stats struct {
	Raw       int // Offsets added, duplicates included
	Finalized int // Distinct offsets after the last Finalize
}

// MatchSet implements Collector with an append-only slice
// Uses sync.Mutex so that every append is linearized; the lock is held for a
// single append, not for the scan that produced it.
type MatchSet struct {
	mu        sync.Mutex // Protects offsets and finalized
	offsets   []int      // Raw offsets in arrival order until finalized
	finalized int        // Length after the last Finalize, 0 if none
}

// New creates an empty MatchSet
func New() *MatchSet {
	return &MatchSet{}
}

// Add appends an offset
func (m *MatchSet) Add(offset int) {
	m.mu.Lock()
	m.offsets = append(m.offsets, offset)
	m.mu.Unlock()
}

// Len returns the number of offsets currently held
func (m *MatchSet) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.offsets)
}

// Snapshot returns a copy of the offsets as they are stored
// Before Finalize the order is arrival order and duplicates are kept
func (m *MatchSet) Snapshot() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.offsets)
}

// Finalize sorts and deduplicates the stored offsets in place
// Returns a copy so the caller may keep it across Reset
func (m *MatchSet) Finalize() []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.offsets = Finalize(m.offsets)
	m.finalized = len(m.offsets)
	return slices.Clone(m.offsets)
}

// Reset truncates the set while keeping its backing array
func (m *MatchSet) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offsets = m.offsets[:0]
	m.finalized = 0
}

// Stats returns collector statistics
func (m *MatchSet) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{
		Raw:       len(m.offsets),
		Finalized: m.finalized,
	}
}

// Finalize sorts offsets ascending and drops duplicates, reusing the input's
// backing array. Applying it to its own output returns the output unchanged.
func Finalize(offsets []int) []int {
	slices.Sort(offsets)
	return slices.Compact(offsets)
}
