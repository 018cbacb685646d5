package partition

import (
	"testing"
)

// TestPartitionWidths tests the near-equal split of ownership ranges
func TestPartitionWidths(t *testing.T) {
	tests := []struct {
		name       string
		textLen    int
		patternLen int
		numChunks  int
		widths     []int
	}{
		{
			name:       "single chunk owns everything",
			textLen:    17,
			patternLen: 9,
			numChunks:  1,
			widths:     []int{17},
		},
		{
			name:       "remainder goes to earliest chunks",
			textLen:    17,
			patternLen: 9,
			numChunks:  4,
			widths:     []int{5, 4, 4, 4},
		},
		{
			name:       "even split",
			textLen:    12,
			patternLen: 2,
			numChunks:  3,
			widths:     []int{4, 4, 4},
		},
		{
			name:       "one byte per chunk",
			textLen:    5,
			patternLen: 3,
			numChunks:  5,
			widths:     []int{1, 1, 1, 1, 1},
		},
		{
			name:       "more chunks than bytes",
			textLen:    3,
			patternLen: 2,
			numChunks:  5,
			widths:     []int{1, 1, 1, 0, 0},
		},
		{
			name:       "empty text",
			textLen:    0,
			patternLen: 3,
			numChunks:  3,
			widths:     []int{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Partition(tt.textLen, tt.patternLen, tt.numChunks)

			if len(chunks) != len(tt.widths) {
				t.Fatalf("Expected %d chunks, got %d", len(tt.widths), len(chunks))
			}
			for i, c := range chunks {
				if c.Index != i {
					t.Errorf("Chunk %d has index %d", i, c.Index)
				}
				if c.Width() != tt.widths[i] {
					t.Errorf("Chunk %d: expected width %d, got %d", i, tt.widths[i], c.Width())
				}
			}
		})
	}
}

// TestPartitionCoverage tests that ownership ranges tile the text exactly
func TestPartitionCoverage(t *testing.T) {
	for textLen := 0; textLen <= 40; textLen++ {
		for numChunks := 1; numChunks <= 12; numChunks++ {
			chunks := Partition(textLen, 4, numChunks)

			next := 0
			for _, c := range chunks {
				if c.Start != next {
					t.Fatalf("L=%d N=%d: chunk %d starts at %d, expected %d", textLen, numChunks, c.Index, c.Start, next)
				}
				if c.OwnedEnd < c.Start {
					t.Fatalf("L=%d N=%d: chunk %d has negative width", textLen, numChunks, c.Index)
				}
				next = c.OwnedEnd
			}
			if next != textLen {
				t.Fatalf("L=%d N=%d: coverage ends at %d", textLen, numChunks, next)
			}
		}
	}
}

// TestPartitionExtension tests the right-extension of scan ranges
func TestPartitionExtension(t *testing.T) {
	t.Run("all but last are extended by pattern length minus one", func(t *testing.T) {
		chunks := Partition(100, 9, 4)

		for _, c := range chunks[:len(chunks)-1] {
			if c.Overlap() != 8 {
				t.Errorf("Chunk %d: expected overlap 8, got %d", c.Index, c.Overlap())
			}
		}

		last := chunks[len(chunks)-1]
		if last.End != 100 || last.Overlap() != 0 {
			t.Errorf("Last chunk should end at 100 unextended, got end=%d overlap=%d", last.End, last.Overlap())
		}
	})

	t.Run("extension is capped at text length", func(t *testing.T) {
		chunks := Partition(17, 9, 4)

		expected := []int{13, 17, 17, 17}
		for i, c := range chunks {
			if c.End != expected[i] {
				t.Errorf("Chunk %d: expected end %d, got %d", i, expected[i], c.End)
			}
		}
	})

	t.Run("extension may reach past the next chunk", func(t *testing.T) {
		chunks := Partition(10, 6, 5)

		// Widths are 2, so chunk 0 scans [0, 7) which spans chunks 1, 2 and 3
		if chunks[0].End != 7 {
			t.Errorf("Expected chunk 0 to end at 7, got %d", chunks[0].End)
		}
		if chunks[4].End != 10 {
			t.Errorf("Expected last chunk to end at 10, got %d", chunks[4].End)
		}
	})

	t.Run("single byte pattern has no overlap", func(t *testing.T) {
		for _, c := range Partition(10, 1, 3) {
			if c.Overlap() != 0 {
				t.Errorf("Chunk %d: expected no overlap, got %d", c.Index, c.Overlap())
			}
		}
	})
}

// TestPartitionDegenerate tests clamping of invalid parameters
func TestPartitionDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		textLen    int
		patternLen int
		numChunks  int
		wantChunks int
		wantEnd    int
	}{
		{"zero chunks clamps to one", 10, 3, 0, 1, 10},
		{"negative chunks clamps to one", 10, 3, -4, 1, 10},
		{"negative text length", -5, 3, 2, 2, 0},
		{"zero pattern length", 10, 0, 2, 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Partition(tt.textLen, tt.patternLen, tt.numChunks)
			if len(chunks) != tt.wantChunks {
				t.Fatalf("Expected %d chunks, got %d", tt.wantChunks, len(chunks))
			}
			if chunks[0].End != tt.wantEnd {
				t.Errorf("Expected first chunk end %d, got %d", tt.wantEnd, chunks[0].End)
			}
		})
	}
}

// TestOwner tests mapping an offset back to its chunk
func TestOwner(t *testing.T) {
	chunks := Partition(17, 9, 4)

	tests := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{4, 0},
		{5, 1},
		{8, 1},
		{9, 2},
		{16, 3},
		{17, -1},
		{-1, -1},
	}

	for _, tt := range tests {
		if got := Owner(chunks, tt.offset); got != tt.want {
			t.Errorf("Owner(%d) = %d, expected %d", tt.offset, got, tt.want)
		}
	}

	// Every offset of the text has exactly one owner
	for offset := 0; offset < 17; offset++ {
		owners := 0
		for _, c := range chunks {
			if c.Owns(offset) {
				owners++
			}
		}
		if owners != 1 {
			t.Errorf("Offset %d has %d owners", offset, owners)
		}
	}
}
