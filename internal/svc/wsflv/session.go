// If you are AI: This file implements the WebSocket-FLV session that replays a file as frames.
// The first frame is the file header; every following frame is one tag with its pre-tag-size.

package wsflv

import (
	"context"
	"io"

	"flvkit/internal/core/library"
	"flvkit/internal/core/protocol/flv"

	"github.com/gorilla/websocket"
)

// WebSocketConn defines the interface for WebSocket operations.
// This allows for easier testing and abstraction.
type WebSocketConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Session replays one file to one WebSocket client.
type Session struct {
	conn   WebSocketConn
	handle *library.Handle

	gotKeyframe bool  // True once media may flow
	start       int32 // Gate opens at or after this timestamp
	tsOffset    int32 // First media timestamp, subtracted from all subsequent
	tsBaseSet   bool
	frames      int
}

// NewSession creates a session over conn.
func NewSession(conn WebSocketConn, h *library.Handle) *Session {
	return &Session{
		conn:   conn,
		handle: h,
	}
}

// Frames returns the number of frames written.
func (s *Session) Frames() int {
	return s.frames
}

// writeFrame sends one binary frame.
func (s *Session) writeFrame(data []byte) error {
	if err := s.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		return err
	}
	s.frames++
	return nil
}

// WritePreamble sends the header frame, the metadata without keyframe index and, when the
// stream starts mid-file, the decoder configuration tags.
func (s *Session) WritePreamble(initTags []*flv.Tag) error {
	h := s.handle.Header()
	frame := make([]byte, 0, flv.HeaderSize+flv.PreTagSizeLength)
	frame = append(frame, h.Bytes()...)
	frame = append(frame, 0, 0, 0, 0) // PreviousTagSize0
	if err := s.writeFrame(frame); err != nil {
		return err
	}

	if md := s.handle.MetaData().WithoutKeyframes(); md != nil {
		payload, err := flv.EncodeMetaData(md)
		if err != nil {
			return err
		}
		if err := s.writeFrame(flv.NewTag(flv.TagTypeScriptData, 0, payload).Bytes()); err != nil {
			return err
		}
	}

	for _, tag := range initTags {
		if err := s.writeFrame(flv.NewTag(tag.Header.Type, 0, tag.Data).Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// ProcessTags sends every tag from the reader cursor to the end of the file.
// Media frames are dropped until the first video keyframe at or after start, so the client
// decoder starts cleanly; sequence headers always pass. Timestamps are rebased to start at 0.
func (s *Session) ProcessTags(ctx context.Context, start uint32) error {
	s.start = int32(min(start, 1<<31-1))
	cr := flv.NewContextReader(s.handle.Reader())
	videoGate := s.handle.Header().HasVideo

	for {
		tag, err := cr.ReadTag(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := cr.ReadPreTagSize(ctx); err != nil {
			return err
		}

		if tag.Header.Type == flv.TagTypeScriptData {
			continue
		}
		seqHeader := flv.IsSequenceHeader(tag.Header.Type, tag.Data)
		if !s.gotKeyframe && !seqHeader {
			if !s.opens(tag, videoGate) {
				continue
			}
			s.gotKeyframe = true
		}

		tag.Header.Timestamp = s.rebaseTimestamp(tag, seqHeader)
		if err := s.writeFrame(tag.Bytes()); err != nil {
			return err
		}
	}
}

// opens reports whether tag may start the media flow.
func (s *Session) opens(tag *flv.Tag, videoGate bool) bool {
	if tag.Header.Timestamp < s.start {
		return false
	}
	return !videoGate || tag.IsKeyframe()
}

// rebaseTimestamp adjusts a tag timestamp so the session starts at ts=0.
// Sequence headers always return 0.
func (s *Session) rebaseTimestamp(tag *flv.Tag, seqHeader bool) int32 {
	if seqHeader {
		return 0
	}
	ts := tag.Header.Timestamp
	if !s.tsBaseSet {
		s.tsOffset = ts
		s.tsBaseSet = true
	}
	if ts < s.tsOffset {
		return 0 // Guard against underflow
	}
	return ts - s.tsOffset
}
