// Package partition divides a flat text buffer into contiguous chunks, one per
// search worker.
//
// # Overview
//
// A chunk has two ranges. The ownership range is what the chunk is
// responsible for; ownership ranges tile the text exactly. The scan range is
// what the matcher actually reads; it extends the ownership range to the
// right by patternLen-1 bytes so that no occurrence straddling a split point
// is lost:
//
//	text     a a a a a          patternLen = 3, numChunks = 2
//	chunk 0  [0 ───── 3)        owned
//	         [0 ──────────── 5) scanned (3 + 2, capped at 5)
//	chunk 1        [3 ─── 5)    owned and scanned (last chunk)
//
// # Load Balancing
//
// Ownership widths differ by at most one byte. The remainder of
// textLen/numChunks is spread over the earliest chunks, so for textLen 17 and
// numChunks 4 the widths are 5, 4, 4, 4.
//
// # Edge Cases
//
//   - numChunks greater than textLen yields zero-width trailing chunks.
//   - An extension may reach past the next chunk when patternLen-1 exceeds a
//     chunk's width; scan ends are still capped at textLen.
//   - The last chunk is never extended.
//
// All boundary arithmetic lives here so that matchers and the orchestrator
// never special-case the last chunk.
package partition
