// If you are AI: This file maps request names to files under a root directory.

package library

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrInvalidName is returned for names that are empty or escape the root directory.
var ErrInvalidName = errors.New("invalid file name")

// Resolve returns the path of name under root, appending ".flv" when missing.
func Resolve(root, name string) (string, error) {
	name = strings.TrimPrefix(name, "/")
	if name == "" || strings.Contains(name, "\\") {
		return "", ErrInvalidName
	}
	clean := filepath.Clean(filepath.FromSlash(name))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", ErrInvalidName
	}
	if filepath.Ext(clean) != ".flv" {
		clean += ".flv"
	}
	return filepath.Join(root, clean), nil
}
