// If you are AI: This file implements the FLV tag stream writer.
// Each call frames exactly one unit; pre-tag-size markers between tags are written by the caller.

package flv

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Writer emits FLV headers and tags.
// Lock expectations: None. One caller at a time.
type Writer struct {
	w io.Writer
}

// NewWriter creates a writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the 9-byte file header followed by the zero pre-tag-size marker.
// Returns the number of bytes written (13).
func (w *Writer) WriteHeader(h Header) (int, error) {
	var buf [HeaderSize + PreTagSizeLength]byte
	hb := h.Encode()
	copy(buf[:], hb[:])
	// PreviousTagSize0 is always 0

	if _, err := w.w.Write(buf[:]); err != nil {
		return 0, errors.Wrap(err, "write header")
	}
	return len(buf), nil
}

// WritePreTagSize writes a previous-tag-size marker.
func (w *Writer) WritePreTagSize(size uint32) (int, error) {
	var buf [PreTagSizeLength]byte
	binary.BigEndian.PutUint32(buf[:], size)
	if _, err := w.w.Write(buf[:]); err != nil {
		return 0, errors.Wrap(err, "write pre tag size")
	}
	return len(buf), nil
}

// WriteAudioTag frames an audio tag: tag header, sub-header byte, payload.
// Returns the tag size, which is the value of the following pre-tag-size marker.
func (w *Writer) WriteAudioTag(timestamp int32, h AudioDataHeader, data []byte) (int, error) {
	return w.writeTag(TagTypeAudio, timestamp, []byte{h.Encode()}, data)
}

// WriteVideoTag frames a video tag: tag header, sub-header byte, payload.
func (w *Writer) WriteVideoTag(timestamp int32, h VideoDataHeader, data []byte) (int, error) {
	return w.writeTag(TagTypeVideo, timestamp, []byte{h.Encode()}, data)
}

// WriteScriptTag frames a script-data tag; there is no sub-header.
func (w *Writer) WriteScriptTag(timestamp int32, data []byte) (int, error) {
	return w.writeTag(TagTypeScriptData, timestamp, nil, data)
}

// WriteTag frames a tag whose body (sub-header included) is already assembled.
// The header's DataSize is recomputed from the body.
func (w *Writer) WriteTag(tag *Tag) (int, error) {
	return w.writeTag(tag.Header.Type, tag.Header.Timestamp, nil, tag.Data)
}

// WriteMetaData encodes md as an onMetaData script tag.
func (w *Writer) WriteMetaData(timestamp int32, md *MetaData) (int, error) {
	payload, err := EncodeMetaData(md)
	if err != nil {
		return 0, err
	}
	return w.WriteScriptTag(timestamp, payload)
}

// writeTag validates the size before any I/O, then writes header, sub-header and payload.
func (w *Writer) writeTag(tagType TagType, timestamp int32, sub, data []byte) (int, error) {
	size := len(sub) + len(data)
	if size > MaxDataSize {
		return 0, &DataSizeError{Size: size}
	}

	th := TagHeader{
		Type:      tagType,
		DataSize:  uint32(size),
		Timestamp: timestamp,
	}
	hb := th.Encode()

	var prefix [TagHeaderSize + 1]byte
	n := copy(prefix[:], hb[:])
	n += copy(prefix[n:], sub)

	if _, err := w.w.Write(prefix[:n]); err != nil {
		return 0, errors.Wrapf(err, "write %s tag header", tagType)
	}
	if len(data) > 0 {
		if _, err := w.w.Write(data); err != nil {
			return 0, errors.Wrapf(err, "write %s tag data", tagType)
		}
	}
	return TagHeaderSize + size, nil
}

// EncodeMetaData serializes md as an onMetaData payload that DecodeMetaData accepts.
// Zero-valued fields are written too, so the record round-trips exactly.
func EncodeMetaData(md *MetaData) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeMetaData(&buf, md); err != nil {
		return nil, errors.Wrap(err, "encode metadata")
	}
	return buf.Bytes(), nil
}
