package fixedcsv

import (
	"fmt"

	"github.com/oleg578/fixedcsv/internal/source"
	log "github.com/sirupsen/logrus"
)

// LoadFile reads the file at path into a Table with n columns. Each configure function is applied
// to the Reader before the header is read. Files ending in ".lz4" are decompressed. The file is
// closed before LoadFile returns, whether or not loading succeeded.
func LoadFile(path string, n int, configure ...func(*Reader)) (t *Table, err error) {
	src, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			t, err = nil, fmt.Errorf("close csv file %s: %w", path, cerr)
		}
	}()

	r, err := NewReader(src, n)
	if err != nil {
		return nil, err
	}
	for _, fn := range configure {
		fn(r)
	}

	t, err = r.ReadTable()
	if err != nil {
		return nil, fmt.Errorf("read csv file %s: %w", path, err)
	}
	log.Debugf("loaded %d rows of %d columns from %s (%d lines)", t.Len(), t.NumColumns(), path, r.Line())
	return t, nil
}
