// If you are AI: This file implements the field read loop shared by the reader.
// A field is either fully read, absent (io.EOF) or truncated.

package flv

import (
	"io"
)

// maxEmptyReads bounds consecutive (0, nil) reads before giving up.
const maxEmptyReads = 100

// readField fills buf from r, retrying on EINTR.
// Returns io.EOF if no byte was available and ErrTruncated if only part of buf was filled.
// Other errors are returned as-is.
func readField(r io.Reader, buf []byte) (int, error) {
	n := 0
	empty := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			if isInterrupted(err) {
				continue
			}
			if err == io.EOF {
				break
			}
			return n, err
		}
		if m == 0 {
			empty++
			if empty >= maxEmptyReads {
				return n, io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}

	switch {
	case n == len(buf):
		return n, nil
	case n == 0:
		return 0, io.EOF
	default:
		return n, ErrTruncated
	}
}

// requireField is readField for fields where absence is also a truncation.
func requireField(r io.Reader, buf []byte) error {
	_, err := readField(r, buf)
	if err == io.EOF {
		return ErrTruncated
	}
	return err
}
