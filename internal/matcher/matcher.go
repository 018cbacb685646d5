// Package matcher finds exact occurrences of a pattern within a byte range of
// a text. Offsets are always reported in whole-text coordinates.
package matcher

import "bytes"

// Matcher reports every occurrence o of pattern with start <= o and
// o+len(pattern) <= end, in ascending order, by calling emit.
// Implementations must not modify text or pattern.
type Matcher interface {
	Find(text, pattern []byte, start, end int, emit func(offset int))
}

// Naive is the brute-force scanner: a single forward pass with a pattern
// position j that advances on a hit and rewinds the text position by j on a
// miss. Worst case is O((end-start)*len(pattern)).
type Naive struct{}

// Find implements Matcher.
func (Naive) Find(text, pattern []byte, start, end int, emit func(offset int)) {
	p := len(pattern)
	start, end, ok := clamp(len(text), p, start, end)
	if !ok {
		return
	}

	j := 0
	for i := start; i < end; i++ {
		if pattern[j] == text[i] {
			j++
			if j == p {
				offset := i - (p - 1)
				emit(offset)
				// Resume one past the match start so self-overlapping
				// occurrences are reported too
				i = offset
				j = 0
			}
			continue
		}
		i -= j
		j = 0
	}
}

// Index finds occurrences with bytes.Index. It produces the same offsets as
// Naive.
type Index struct{}

// Find implements Matcher.
func (Index) Find(text, pattern []byte, start, end int, emit func(offset int)) {
	start, end, ok := clamp(len(text), len(pattern), start, end)
	if !ok {
		return
	}

	window := text[:end]
	for pos := start; pos+len(pattern) <= end; {
		k := bytes.Index(window[pos:], pattern)
		if k < 0 {
			return
		}
		emit(pos + k)
		pos += k + 1
	}
}

// FindAll collects the offsets m reports over text[start:end].
func FindAll(m Matcher, text, pattern []byte, start, end int) []int {
	var offsets []int
	m.Find(text, pattern, start, end, func(offset int) {
		offsets = append(offsets, offset)
	})
	return offsets
}

// clamp bounds [start, end) to the text and reports whether a pattern of
// length p can fit in it at all.
func clamp(textLen, p, start, end int) (int, int, bool) {
	if start < 0 {
		start = 0
	}
	if end > textLen {
		end = textLen
	}
	if p == 0 || end-start < p {
		return start, end, false
	}
	return start, end, true
}
