//go:build !unix

// If you are AI: This file provides the interrupt check on platforms without EINTR.

package flv

// isInterrupted always returns false; reads are not interrupted on these platforms.
func isInterrupted(err error) bool {
	return false
}
