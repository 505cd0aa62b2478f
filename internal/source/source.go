// Package source opens CSV inputs for reading.
//
// Regular files are memory mapped read-only where the platform allows it, so lines are
// scanned straight out of the page cache. Files whose name ends in ".lz4" are decompressed
// on the fly.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
	log "github.com/sirupsen/logrus"
)

// Lz4Suffix marks files holding an lz4 frame stream.
const Lz4Suffix = ".lz4"

// Open returns a reader over the contents of the file at path. The caller must Close it.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}

	if strings.HasSuffix(path, Lz4Suffix) {
		log.Debugf("reading %s as lz4 stream", path)
		return &lz4Source{Reader: lz4.NewReader(file), file: file}, nil
	}

	src, err := mapFile(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("map csv file %s: %w", path, err)
	}
	return src, nil
}

// lz4Source decompresses a file and closes it when done.
type lz4Source struct {
	*lz4.Reader
	file *os.File
}

func (s *lz4Source) Close() error {
	return s.file.Close()
}
