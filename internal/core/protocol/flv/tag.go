// If you are AI: This file implements the FLV tag header codec and whole-tag framing.
// Unknown tag types are kept as raw bytes so future tag kinds pass through untouched.

package flv

import (
	"encoding/binary"
	"fmt"
)

// TagType identifies the kind of a tag. Values other than the named ones are reserved.
type TagType uint8

// Tag types
const (
	TagTypeAudio      TagType = 8
	TagTypeVideo      TagType = 9
	TagTypeScriptData TagType = 18
)

// IsReserved reports whether the tag type is outside the known set.
func (t TagType) IsReserved() bool {
	return t != TagTypeAudio && t != TagTypeVideo && t != TagTypeScriptData
}

// HasSubHeader reports whether tags of this type carry a one-byte sub-header.
func (t TagType) HasSubHeader() bool {
	return t == TagTypeAudio || t == TagTypeVideo
}

// String returns a human-readable tag type.
func (t TagType) String() string {
	switch t {
	case TagTypeAudio:
		return "audio"
	case TagTypeVideo:
		return "video"
	case TagTypeScriptData:
		return "script"
	default:
		return fmt.Sprintf("reserved(%d)", uint8(t))
	}
}

// TagHeader is the fixed 11-byte prefix of every tag.
// DataSize counts the sub-header and payload, not the trailing pre-tag-size marker.
type TagHeader struct {
	Type      TagType
	DataSize  uint32
	Timestamp int32
}

// DecodeTagHeader decodes the 11 tag header bytes. It never fails.
// The stream id bytes are ignored.
func DecodeTagHeader(b [TagHeaderSize]byte) TagHeader {
	size := uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	// Bytes 4-6 are the low 24 bits, byte 7 the upper 8 bits.
	ts := uint32(b[7])<<24 | uint32(b[4])<<16 | uint32(b[5])<<8 | uint32(b[6])

	return TagHeader{
		Type:      TagType(b[0]),
		DataSize:  size,
		Timestamp: int32(ts),
	}
}

// Encode returns the 11 tag header bytes.
// DataSize above MaxDataSize is truncated to 24 bits; the writer rejects it first.
func (h TagHeader) Encode() [TagHeaderSize]byte {
	var b [TagHeaderSize]byte
	ts := uint32(h.Timestamp)

	b[0] = byte(h.Type)

	// Data size (3 bytes, big-endian)
	b[1] = byte(h.DataSize >> 16)
	b[2] = byte(h.DataSize >> 8)
	b[3] = byte(h.DataSize)

	b[4] = byte(ts >> 16)
	b[5] = byte(ts >> 8)
	b[6] = byte(ts)
	b[7] = byte(ts >> 24) // TimestampExtended

	// Stream ID (3 bytes, always 0)
	return b
}

// TagSize returns the full tag size as recorded by the following pre-tag-size marker.
func (h TagHeader) TagSize() uint32 {
	return TagHeaderSize + h.DataSize
}

// Tag is a complete tag: header plus the raw body (sub-header and payload).
type Tag struct {
	Header TagHeader
	Data   []byte
}

// NewTag creates a tag from type, timestamp, and body.
func NewTag(tagType TagType, timestamp int32, data []byte) *Tag {
	return &Tag{
		Header: TagHeader{
			Type:      tagType,
			DataSize:  uint32(len(data)),
			Timestamp: timestamp,
		},
		Data: data,
	}
}

// Bytes encodes the tag followed by its previous-tag-size marker.
// Format: tag header (11) + data (N) + previous tag size (4)
// Allocation: Creates new slice for complete tag, copies data slice.
func (t *Tag) Bytes() []byte {
	result := make([]byte, TagHeaderSize+len(t.Data)+PreTagSizeLength)

	h := t.Header
	h.DataSize = uint32(len(t.Data))
	hb := h.Encode()
	copy(result, hb[:])
	copy(result[TagHeaderSize:], t.Data)

	binary.BigEndian.PutUint32(result[TagHeaderSize+len(t.Data):], h.TagSize())
	return result
}

// IsKeyframe reports whether the tag is a video keyframe.
func (t *Tag) IsKeyframe() bool {
	return t.Header.Type == TagTypeVideo && IsVideoKeyframe(t.Data)
}
