// If you are AI: This file builds FLV streams for reader, cache and seek tests.

package flv

import (
	"bytes"
	"testing"
)

// testFrame is one audio or video tag to emit.
type testFrame struct {
	kind    TagType
	ts      int32
	sub     byte
	payload []byte
}

// testStream is an encoded stream plus the offsets of every tag header.
type testStream struct {
	data       []byte
	tagOffsets []uint64
	tagSizes   []uint32
}

// buildStream writes header, optional metadata tag and frames, each followed by its pre-tag-size.
func buildStream(t *testing.T, md *MetaData, frames []testFrame) testStream {
	t.Helper()

	var buf bytes.Buffer
	w := NewWriter(&buf)
	if _, err := w.WriteHeader(NewHeader(true, true)); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}

	var s testStream
	emit := func(n int, err error) {
		if err != nil {
			t.Fatalf("write tag failed: %v", err)
		}
		s.tagSizes = append(s.tagSizes, uint32(n))
		if _, err := w.WritePreTagSize(uint32(n)); err != nil {
			t.Fatalf("WritePreTagSize failed: %v", err)
		}
	}

	if md != nil {
		s.tagOffsets = append(s.tagOffsets, uint64(buf.Len()))
		emit(w.WriteMetaData(0, md))
	}
	for _, f := range frames {
		s.tagOffsets = append(s.tagOffsets, uint64(buf.Len()))
		switch f.kind {
		case TagTypeAudio:
			h, err := DecodeAudioDataHeader(f.sub)
			if err != nil {
				t.Fatalf("bad audio sub-header: %v", err)
			}
			emit(w.WriteAudioTag(f.ts, h, f.payload))
		case TagTypeVideo:
			h, err := DecodeVideoDataHeader(f.sub)
			if err != nil {
				t.Fatalf("bad video sub-header: %v", err)
			}
			emit(w.WriteVideoTag(f.ts, h, f.payload))
		default:
			emit(w.WriteTag(NewTag(f.kind, f.ts, f.payload)))
		}
	}

	s.data = buf.Bytes()
	return s
}

// sampleFrames returns a short interleaved audio/video sequence.
func sampleFrames() []testFrame {
	return []testFrame{
		{kind: TagTypeVideo, ts: 0, sub: 0x17, payload: []byte{0, 0, 0, 0, 0xAA}},
		{kind: TagTypeAudio, ts: 0, sub: 0xAF, payload: []byte{1, 0x12, 0x10}},
		{kind: TagTypeVideo, ts: 40, sub: 0x27, payload: []byte{1, 0, 0, 0, 0xBB, 0xCC}},
		{kind: TagTypeAudio, ts: 46, sub: 0xAF, payload: []byte{1, 0x21}},
		{kind: TagTypeVideo, ts: 1000, sub: 0x17, payload: []byte{1, 0, 0, 0, 0xDD}},
	}
}
