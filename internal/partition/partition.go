package partition

// Chunk describes one worker's slice of the text as half-open byte ranges.
//
// [Start, OwnedEnd) is the region the chunk owns: the owned regions of all
// chunks returned by Partition are contiguous, non-overlapping, and cover the
// whole text. [Start, End) is the region the matcher scans. End extends past
// OwnedEnd by up to patternLen-1 bytes so an occurrence that begins in the
// owned region and continues into the next chunk is still fully visible.
type Chunk struct {
	Index    int // Position of the chunk in the plan, 0-based
	Start    int // First byte owned and scanned
	OwnedEnd int // End of the ownership region (exclusive)
	End      int // End of the scan region (exclusive), never past the text
}

// Width returns the number of bytes the chunk owns.
func (c Chunk) Width() int {
	return c.OwnedEnd - c.Start
}

// Overlap returns how many bytes the scan region extends past ownership.
func (c Chunk) Overlap() int {
	return c.End - c.OwnedEnd
}

// Owns reports whether an occurrence starting at offset belongs to this chunk.
func (c Chunk) Owns(offset int) bool {
	return offset >= c.Start && offset < c.OwnedEnd
}

// Partition splits a text of textLen bytes into numChunks contiguous chunks
// for a pattern of patternLen bytes.
//
// The split is near-equal: every chunk owns floor(textLen/numChunks) bytes
// and the first textLen%numChunks chunks own one extra byte. Every chunk but
// the last has its scan end extended by patternLen-1, capped at textLen. The
// last chunk is never extended.
//
// Degenerate inputs are clamped rather than rejected: numChunks < 1 is
// treated as 1, textLen < 0 as 0, and patternLen < 1 disables extension.
// When numChunks > textLen the trailing chunks have zero width.
func Partition(textLen, patternLen, numChunks int) []Chunk {
	if numChunks < 1 {
		numChunks = 1
	}
	if textLen < 0 {
		textLen = 0
	}
	overlap := patternLen - 1
	if overlap < 0 {
		overlap = 0
	}

	base := textLen / numChunks
	remainder := textLen % numChunks

	chunks := make([]Chunk, numChunks)
	start := 0
	for i := range chunks {
		width := base
		if i < remainder {
			width++
		}
		owned := start + width

		end := owned
		if i < numChunks-1 {
			end = min(owned+overlap, textLen)
		}

		chunks[i] = Chunk{
			Index:    i,
			Start:    start,
			OwnedEnd: owned,
			End:      end,
		}
		start = owned
	}

	return chunks
}

// Owner returns the index of the chunk that owns offset, or -1 if offset
// lies outside the text covered by chunks.
func Owner(chunks []Chunk, offset int) int {
	for _, c := range chunks {
		if c.Owns(offset) {
			return c.Index
		}
	}
	return -1
}
