// If you are AI: This file implements timestamp seeking for the inspect tools.

package inspect

import (
	"fmt"
	"io"

	"flvkit/internal/core/library"
	"flvkit/internal/core/protocol/flv"
)

// SeekReport describes the outcome of a timestamp seek.
type SeekReport struct {
	Requested uint32             `json:"requested"`
	Result    library.SeekResult `json:"result"`
	Tag       *flv.TagHeader     `json:"tag,omitempty"` // First tag at the position, nil at end of stream
}

// Seek resolves ts against the file's keyframe index and reads the tag header found there.
// The handle's reader is left positioned right after that tag header.
func Seek(h *library.Handle, ts uint32) (SeekReport, error) {
	report := SeekReport{Requested: ts}

	res, err := h.SeekTime(ts)
	if err != nil {
		return report, err
	}
	report.Result = res

	th, err := h.Reader().ReadTagHeader()
	if err == io.EOF {
		return report, nil
	}
	if err != nil {
		return report, err
	}
	report.Tag = &th
	return report, nil
}

// String formats the report as a single line.
func (r SeekReport) String() string {
	if !r.Result.Found {
		return fmt.Sprintf("flv seek: no keyframe at or before %d ms, starting at offset %d", r.Requested, r.Result.Offset)
	}
	return fmt.Sprintf("flv seek to offset %d (expected timestamp: %d, actual timestamp: %d)",
		r.Result.Offset, r.Requested, r.Result.Keyframe.Timestamp)
}
