package matchset

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap implements Collector with a compressed roaring bitmap
// Duplicates collapse on insert, so memory tracks distinct offsets only.
// Offsets must fit in a uint32, which limits texts to 4 GiB.
type Bitmap struct {
	mu    sync.Mutex      // Protects rb and added
	rb    *roaring.Bitmap // Distinct offsets
	added int             // Adds since the last Reset, duplicates included
}

// NewBitmap creates an empty Bitmap collector
func NewBitmap() *Bitmap {
	return &Bitmap{rb: roaring.New()}
}

// Add records an offset
func (b *Bitmap) Add(offset int) {
	b.mu.Lock()
	b.rb.Add(uint32(offset)) //nolint:gosec // offsets are bounded by text length
	b.added++
	b.mu.Unlock()
}

// Len returns the number of Adds since the last Reset
func (b *Bitmap) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.added
}

// Finalize returns the distinct offsets in ascending order
func (b *Bitmap) Finalize() []int {
	b.mu.Lock()
	defer b.mu.Unlock()

	values := b.rb.ToArray()
	offsets := make([]int, len(values))
	for i, v := range values {
		offsets[i] = int(v)
	}
	return offsets
}

// Reset empties the bitmap
func (b *Bitmap) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rb.Clear()
	b.added = 0
}

// Stats returns collector statistics
func (b *Bitmap) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Stats{
		Raw:       b.added,
		Finalized: int(b.rb.GetCardinality()), //nolint:gosec // bounded by uint32 range
	}
}
