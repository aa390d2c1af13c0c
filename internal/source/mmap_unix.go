//go:build unix

// If you are AI: This file maps files into memory with mmap on unix systems.

package source

import (
	"bytes"
	"os"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// mappedFile serves reads from a read-only shared mapping.
type mappedFile struct {
	*bytes.Reader
	data []byte
	info Info
	once sync.Once
}

// mapFile maps the whole of f. The descriptor may be closed afterwards.
func mapFile(f *os.File, info Info) (File, error) {
	if int64(int(info.Size)) != info.Size {
		return nil, errors.Errorf("mmap source: %s too large (%d bytes)", info.Path, info.Size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrap(err, "mmap source")
	}
	return &mappedFile{Reader: bytes.NewReader(data), data: data, info: info}, nil
}

// Info returns the file identity captured at open time.
func (m *mappedFile) Info() Info {
	return m.info
}

// Close unmaps the file. Subsequent closes are no-ops.
func (m *mappedFile) Close() error {
	var err error
	m.once.Do(func() {
		m.Reader = bytes.NewReader(nil)
		if uerr := unix.Munmap(m.data); uerr != nil {
			err = errors.Wrap(uerr, "munmap source")
		}
		m.data = nil
	})
	return err
}
