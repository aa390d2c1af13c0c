// If you are AI: This file opens FLV files as seekable byte sources for the reader.
// Files can be read through the page cache or mapped into memory.

package source

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Options selects how a file is opened.
type Options struct {
	Mmap bool // Map the whole file read-only when supported
}

// Info describes an opened file version.
type Info struct {
	Path    string
	Size    int64
	ModTime int64 // Unix nanoseconds
}

// File is an opened byte source.
type File interface {
	io.ReadSeekCloser
	Info() Info
}

// Open opens path for reading. With Mmap set the file is mapped when the platform
// supports it and the file is not empty; otherwise it falls back to plain reads.
func Open(path string, opts Options) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open source")
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "stat source")
	}
	if st.IsDir() {
		f.Close()
		return nil, errors.Errorf("open source: %s is a directory", path)
	}

	info := Info{Path: path, Size: st.Size(), ModTime: st.ModTime().UnixNano()}
	if opts.Mmap && info.Size > 0 {
		m, err := mapFile(f, info)
		f.Close()
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return &plainFile{File: f, info: info}, nil
}

// Stat returns the identity of path without opening it for reading.
func Stat(path string) (Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		return Info{}, errors.Wrap(err, "stat source")
	}
	return Info{Path: path, Size: st.Size(), ModTime: st.ModTime().UnixNano()}, nil
}

// plainFile reads through the operating system file handle.
type plainFile struct {
	*os.File
	info Info
}

// Info returns the file identity captured at open time.
func (p *plainFile) Info() Info {
	return p.info
}
