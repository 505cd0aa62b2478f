//go:build unix

package source

import (
	"bytes"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// mappedFile serves reads from a read-only shared mapping of the whole file.
type mappedFile struct {
	*bytes.Reader
	data []byte
	file *os.File
}

// mapFile maps file into memory. Empty files cannot be mapped and are served from an empty reader.
func mapFile(file *os.File) (io.ReadCloser, error) {
	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	size := stat.Size()
	if size == 0 || !stat.Mode().IsRegular() {
		log.Debugf("reading %s without mmap", file.Name())
		return file, nil
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	log.Debugf("mapped %s (%d bytes)", file.Name(), size)
	return &mappedFile{Reader: bytes.NewReader(data), data: data, file: file}, nil
}

// Close unmaps the data before closing the file.
func (m *mappedFile) Close() error {
	err := unix.Munmap(m.data)
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}
	return err
}
