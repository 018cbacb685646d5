// Package textsource supplies the immutable byte sequence a search runs over:
// from a file read into memory, from a read-only memory mapping, or from a
// deterministic generator.
package textsource

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
)

// ErrInputUnavailable is returned when the text cannot be loaded
var ErrInputUnavailable = errors.New("input text unavailable")

// Alphabet is the DNA alphabet used by Generate
const Alphabet = "acgt"

// Load reads the whole file at path into memory.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	return data, nil
}

// Mapping is a read-only view of a file's contents.
// Bytes must not be used after Close.
type Mapping struct {
	data  []byte
	close func() error
}

// Bytes returns the mapped contents
func (m *Mapping) Bytes() []byte {
	return m.data
}

// Len returns the size of the mapped contents
func (m *Mapping) Len() int {
	return len(m.data)
}

// Close releases the mapping. Calling it twice is safe.
func (m *Mapping) Close() error {
	if m.close == nil {
		return nil
	}
	err := m.close()
	m.close = nil
	m.data = nil
	return err
}

// Map opens path as a read-only mapping. Writes to the returned bytes fault,
// which keeps the text immutable for the duration of a run.
func Map(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", ErrInputUnavailable, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInputUnavailable, path)
	}

	size := info.Size()
	if size == 0 {
		return &Mapping{data: []byte{}}, nil
	}
	if size != int64(int(size)) {
		return nil, fmt.Errorf("%w: %s too large to map (%d bytes)", ErrInputUnavailable, path, size)
	}

	data, unmap, err := mapFile(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %s: %w", ErrInputUnavailable, path, err)
	}
	return &Mapping{data: data, close: unmap}, nil
}

// Generate returns n bytes drawn uniformly from Alphabet. The same seed
// always yields the same sequence.
func Generate(n int, seed uint64) []byte {
	if n <= 0 {
		return []byte{}
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	text := make([]byte, n)
	for i := range text {
		text[i] = Alphabet[rng.IntN(len(Alphabet))]
	}
	return text
}
