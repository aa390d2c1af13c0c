//go:build unix

// If you are AI: This file detects interrupted system calls on unix platforms.

package flv

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isInterrupted reports whether err is an interrupted-operation signal that should be retried.
func isInterrupted(err error) bool {
	return errors.Is(err, unix.EINTR)
}
