// If you are AI: This file defines FLV protocol constants shared by the codec, reader and writer.

package flv

// FLV file signature
const Signature = "FLV"

// Version is the only supported FLV version.
const Version = 1

// HeaderSize is the size of the file header, which is also the only valid data offset.
const HeaderSize = 9

// TagHeaderSize is the size of a tag header (type, size, timestamp, extension, stream id).
const TagHeaderSize = 11

// PreTagSizeLength is the size of the previous-tag-size marker that precedes every tag.
const PreTagSizeLength = 4

// MaxDataSize is the largest value representable in the 24-bit data size field.
const MaxDataSize = 0x00FFFFFF

// Header flag bits
const (
	flagAudio    = 0x04
	flagVideo    = 0x01
	flagReserved = 0xFA
)

// IsVideoKeyframe returns true if the FLV video payload represents a keyframe.
// In RTMP/FLV format: byte[0] upper nibble = frame type (1=keyframe).
func IsVideoKeyframe(payload []byte) bool {
	return len(payload) >= 1 && VideoFrameType(payload[0]>>4) == FrameKey
}

// IsSequenceHeader reports whether a tag body carries decoder configuration:
// an AVC sequence header or an AAC audio specific config.
// These must precede media when a stream is entered mid-file.
func IsSequenceHeader(tagType TagType, body []byte) bool {
	if len(body) < 2 {
		return false
	}
	switch tagType {
	case TagTypeVideo:
		return VideoCodecID(body[0]&0x0F) == CodecAVC && body[1] == 0
	case TagTypeAudio:
		return SoundFormat(body[0]>>4) == SoundAAC && body[1] == 0
	default:
		return false
	}
}
