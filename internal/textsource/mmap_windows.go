//go:build windows

package textsource

import (
	"io"
	"os"
)

// Windows mappings are not supported here; the file is read instead.
func mapFile(f *os.File, size int) ([]byte, func() error, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
