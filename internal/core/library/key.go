// If you are AI: This file defines Key for uniquely identifying one version of an FLV file.
// Key is used as a map key in the library.

package library

import (
	"fmt"

	"flvkit/internal/source"
)

// Key identifies a file version by path, size and modification time.
// A rewritten file gets a new key, so cached offsets never outlive the bytes they describe.
type Key struct {
	Path    string
	Size    int64
	ModTime int64 // Unix nanoseconds
}

// KeyOf builds the key of an opened source.
func KeyOf(info source.Info) Key {
	return Key{Path: info.Path, Size: info.Size, ModTime: info.ModTime}
}

// String returns a stable representation of the key.
// Format: "path@size:mtime"
func (k Key) String() string {
	return fmt.Sprintf("%s@%d:%d", k.Path, k.Size, k.ModTime)
}
