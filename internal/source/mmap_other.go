//go:build !unix

// If you are AI: This file provides the fallback for platforms without mmap.

package source

import (
	"os"
)

// mapFile reopens the file for plain reads where mapping is unavailable.
func mapFile(f *os.File, info Info) (File, error) {
	g, err := os.Open(info.Path)
	if err != nil {
		return nil, err
	}
	return &plainFile{File: g, info: info}, nil
}
