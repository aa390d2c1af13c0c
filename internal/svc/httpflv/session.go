// If you are AI: This file implements the HTTP-FLV session that writes one file to one client.
// A seeked session writes its own preamble and then the source bytes from the keyframe on.

package httpflv

import (
	"bufio"
	"io"

	"flvkit/internal/core/library"
	"flvkit/internal/core/protocol/flv"
)

// Session streams a file to an HTTP response.
type Session struct {
	writer *bufio.Writer
	flv    *flv.Writer
	handle *library.Handle
}

// NewSession creates a session writing to w.
func NewSession(w io.Writer, h *library.Handle) *Session {
	bw := bufio.NewWriter(w)
	return &Session{
		writer: bw,
		flv:    flv.NewWriter(bw),
		handle: h,
	}
}

// WritePreamble writes the file header, the metadata without its stale keyframe index and
// the decoder configuration tags, each followed by its pre-tag-size marker.
func (s *Session) WritePreamble(initTags []*flv.Tag) error {
	if _, err := s.flv.WriteHeader(s.handle.Header()); err != nil {
		return err
	}

	if md := s.handle.MetaData().WithoutKeyframes(); md != nil {
		n, err := s.flv.WriteMetaData(0, md)
		if err != nil {
			return err
		}
		if _, err := s.flv.WritePreTagSize(uint32(n)); err != nil {
			return err
		}
	}

	for _, tag := range initTags {
		n, err := s.flv.WriteTag(flv.NewTag(tag.Header.Type, 0, tag.Data))
		if err != nil {
			return err
		}
		if _, err := s.flv.WritePreTagSize(uint32(n)); err != nil {
			return err
		}
	}
	return s.writer.Flush()
}

// CopyFrom streams the source file from offset to the end.
func (s *Session) CopyFrom(offset uint64) (int64, error) {
	n, err := s.handle.CopyFrom(s.writer, offset)
	if err != nil {
		return n, err
	}
	return n, s.writer.Flush()
}
