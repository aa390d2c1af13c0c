// If you are AI: This file contains unit tests for the tag stream writer.

package flv

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// countingWriter counts bytes without keeping them.
type countingWriter struct {
	n int
}

// Write counts p.
func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewWriter(&buf).WriteHeader(NewHeader(true, false))
	if err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	want := []byte{'F', 'L', 'V', 1, 0x04, 0, 0, 0, 9, 0, 0, 0, 0}
	if n != len(want) || !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Expected %x (%d), got %x (%d)", want, len(want), buf.Bytes(), n)
	}
}

func TestWriteAudioTagLayout(t *testing.T) {
	var buf bytes.Buffer
	h := AudioDataHeader{SoundFormat: SoundAAC, SoundRate: SoundRate44kHz, SoundSize: SoundSize16Bit, SoundType: SoundStereo}
	n, err := NewWriter(&buf).WriteAudioTag(0x01020304, h, []byte{0xAA, 0xBB})
	if err != nil {
		t.Fatalf("WriteAudioTag failed: %v", err)
	}
	if n != TagHeaderSize+3 {
		t.Errorf("Expected tag size %d, got %d", TagHeaderSize+3, n)
	}
	want := []byte{
		8, 0, 0, 3, // type, data size
		0x02, 0x03, 0x04, 0x01, // timestamp, extended
		0, 0, 0, // stream id
		0xAF, 0xAA, 0xBB,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Expected %x, got %x", want, buf.Bytes())
	}
}

func TestWriteVideoTagReturnsTagSize(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	h := VideoDataHeader{FrameType: FrameKey, CodecID: CodecAVC}
	n, err := w.WriteVideoTag(40, h, make([]byte, 100))
	if err != nil {
		t.Fatalf("WriteVideoTag failed: %v", err)
	}
	if n != TagHeaderSize+101 || buf.Len() != n {
		t.Errorf("Expected %d bytes, got n=%d len=%d", TagHeaderSize+101, n, buf.Len())
	}
	if buf.Bytes()[TagHeaderSize] != 0x17 {
		t.Errorf("Expected sub-header 0x17, got 0x%02X", buf.Bytes()[TagHeaderSize])
	}

	if _, err := w.WritePreTagSize(uint32(n)); err != nil {
		t.Fatalf("WritePreTagSize failed: %v", err)
	}
	if got := binary.BigEndian.Uint32(buf.Bytes()[n:]); got != uint32(n) {
		t.Errorf("Expected marker %d, got %d", n, got)
	}
}

func TestWriteMaxDataSize(t *testing.T) {
	h := AudioDataHeader{SoundFormat: SoundAAC, SoundRate: SoundRate44kHz, SoundSize: SoundSize16Bit, SoundType: SoundStereo}

	var cw countingWriter
	n, err := NewWriter(&cw).WriteAudioTag(0, h, make([]byte, MaxDataSize-1))
	if err != nil {
		t.Fatalf("Largest tag rejected: %v", err)
	}
	if n != TagHeaderSize+MaxDataSize || cw.n != n {
		t.Errorf("Expected %d bytes, got n=%d written=%d", TagHeaderSize+MaxDataSize, n, cw.n)
	}
}

func TestWriteDataSizeTooLarge(t *testing.T) {
	h := AudioDataHeader{SoundFormat: SoundAAC, SoundRate: SoundRate44kHz, SoundSize: SoundSize16Bit, SoundType: SoundStereo}

	var cw countingWriter
	n, err := NewWriter(&cw).WriteAudioTag(0, h, make([]byte, MaxDataSize))
	if !errors.Is(err, ErrDataSize) {
		t.Fatalf("Expected ErrDataSize, got %v", err)
	}
	var dse *DataSizeError
	if !errors.As(err, &dse) || dse.Size != MaxDataSize+1 {
		t.Errorf("Expected DataSizeError with size %d, got %v", MaxDataSize+1, err)
	}
	if n != 0 || cw.n != 0 {
		t.Errorf("Nothing should be written, got n=%d written=%d", n, cw.n)
	}

	cw = countingWriter{}
	if _, err := NewWriter(&cw).WriteScriptTag(0, make([]byte, MaxDataSize+1)); !errors.Is(err, ErrDataSize) {
		t.Errorf("Expected ErrDataSize for script tag, got %v", err)
	}
	if cw.n != 0 {
		t.Errorf("Nothing should be written, got %d bytes", cw.n)
	}
}

func TestWriteTagRecomputesSize(t *testing.T) {
	var buf bytes.Buffer
	tag := &Tag{Header: TagHeader{Type: TagType(15), DataSize: 999, Timestamp: 7}, Data: []byte{1, 2, 3}}
	n, err := NewWriter(&buf).WriteTag(tag)
	if err != nil {
		t.Fatalf("WriteTag failed: %v", err)
	}
	if n != TagHeaderSize+3 {
		t.Errorf("Expected %d, got %d", TagHeaderSize+3, n)
	}

	var hb [TagHeaderSize]byte
	copy(hb[:], buf.Bytes())
	th := DecodeTagHeader(hb)
	if th.DataSize != 3 || th.Type != TagType(15) || th.Timestamp != 7 {
		t.Errorf("Unexpected header %+v", th)
	}
}

func TestWriterMatchesTagBytes(t *testing.T) {
	tag := NewTag(TagTypeVideo, 1234, []byte{0x27, 1, 0, 0, 0})

	var buf bytes.Buffer
	w := NewWriter(&buf)
	n, err := w.WriteTag(tag)
	if err != nil {
		t.Fatalf("WriteTag failed: %v", err)
	}
	if _, err := w.WritePreTagSize(uint32(n)); err != nil {
		t.Fatalf("WritePreTagSize failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), tag.Bytes()) {
		t.Errorf("Writer output %x differs from Tag.Bytes %x", buf.Bytes(), tag.Bytes())
	}
}
