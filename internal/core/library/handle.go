// If you are AI: This file implements Handle, one open FLV file with its own reader cursor.

package library

import (
	"io"

	"flvkit/internal/core/protocol/flv"
	"flvkit/internal/source"

	"github.com/pkg/errors"
)

// Handle is a single-owner view of a file. Handles of the same file version share the Entry.
type Handle struct {
	file   source.File
	reader *flv.Reader
	entry  *Entry
}

// Reader returns the tag reader over the file.
func (h *Handle) Reader() *flv.Reader {
	return h.reader
}

// Entry returns the shared probe state.
func (h *Handle) Entry() *Entry {
	return h.entry
}

// MetaData returns the decoded onMetaData, or nil.
func (h *Handle) MetaData() *flv.MetaData {
	return h.entry.MetaData
}

// Header returns the file header.
func (h *Handle) Header() flv.Header {
	return h.entry.Header
}

// Info returns the file identity.
func (h *Handle) Info() source.Info {
	return h.file.Info()
}

// SeekResult describes where a timestamp seek landed.
type SeekResult struct {
	Keyframe flv.Keyframe `json:"keyframe"`
	Found    bool         `json:"found"`  // False when no keyframe qualifies
	Offset   uint64       `json:"offset"` // Tag header offset the reader is positioned at
}

// SeekTime positions the reader at the tag header of the keyframe to play ts from.
// Without a qualifying keyframe the reader is positioned at the first tag.
func (h *Handle) SeekTime(ts uint32) (SeekResult, error) {
	kf, ok, err := h.reader.SeekKeyframe(h.entry.MetaData, ts)
	if err != nil {
		return SeekResult{}, err
	}
	if ok {
		return SeekResult{Keyframe: kf, Found: true, Offset: kf.Offset}, nil
	}

	if err := h.reader.SeekPosition(flv.TagPosition(0)); err != nil {
		return SeekResult{}, err
	}
	return SeekResult{Offset: h.reader.Offset()}, nil
}

// maxInitScan bounds how many leading tags InitTags inspects.
const maxInitScan = 16

// InitTags returns the decoder configuration tags at the start of the file, in order.
// Scanning stops at the first media tag that is not a sequence header.
// The reader position is undefined afterwards; seek before reading again.
func (h *Handle) InitTags() ([]*flv.Tag, error) {
	if err := h.reader.SeekPosition(flv.TagPosition(0)); err != nil {
		return nil, err
	}

	var tags []*flv.Tag
	for i := 0; i < maxInitScan; i++ {
		tag, err := h.reader.ReadTag()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if _, err := h.reader.ReadPreTagSize(); err != nil {
			return nil, err
		}
		if tag.Header.Type == flv.TagTypeScriptData {
			continue
		}
		if !flv.IsSequenceHeader(tag.Header.Type, tag.Data) {
			break
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// CopyFrom writes the raw file bytes from offset to the end of the file to w.
func (h *Handle) CopyFrom(w io.Writer, offset uint64) (int64, error) {
	if err := h.reader.Seek(offset); err != nil {
		return 0, err
	}
	n, err := io.Copy(w, h.file)
	if err != nil {
		return n, errors.Wrap(err, "copy file")
	}
	return n, nil
}

// Close releases the file.
func (h *Handle) Close() error {
	return h.file.Close()
}
