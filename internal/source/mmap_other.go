//go:build !unix

package source

import (
	"io"
	"os"
)

// mapFile falls back to plain buffered reads where mmap is unavailable.
func mapFile(file *os.File) (io.ReadCloser, error) {
	return file, nil
}
