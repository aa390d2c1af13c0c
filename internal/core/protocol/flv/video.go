// If you are AI: This file implements the one-byte video data sub-header codec and the seek flag.

package flv

// VideoFrameType is the frame kind (bits 7-4).
type VideoFrameType uint8

// Video frame types
const (
	FrameKey                VideoFrameType = 1
	FrameInter              VideoFrameType = 2
	FrameDisposableInter    VideoFrameType = 3
	FrameGeneratedKey       VideoFrameType = 4
	FrameVideoInfoOrCommand VideoFrameType = 5
)

// VideoCodecID is the video codec (bits 3-0).
type VideoCodecID uint8

// Video codec ids
const (
	CodecJPEG                VideoCodecID = 1
	CodecSorensonH263        VideoCodecID = 2
	CodecScreenVideo         VideoCodecID = 3
	CodecOn2VP6              VideoCodecID = 4
	CodecOn2VP6WithAlpha     VideoCodecID = 5
	CodecScreenVideoVersion2 VideoCodecID = 6
	CodecAVC                 VideoCodecID = 7
)

// ParseVideoFrameType validates a 4-bit frame type.
func ParseVideoFrameType(v uint8) (VideoFrameType, error) {
	if v < 1 || v > 5 {
		return 0, parseError(ErrVideoFrameType, uint32(v))
	}
	return VideoFrameType(v), nil
}

// ParseVideoCodecID validates a 4-bit codec id.
func ParseVideoCodecID(v uint8) (VideoCodecID, error) {
	if v < 1 || v > 7 {
		return 0, parseError(ErrVideoCodecID, uint32(v))
	}
	return VideoCodecID(v), nil
}

// VideoDataHeader is the sub-header leading every video tag body.
type VideoDataHeader struct {
	FrameType VideoFrameType
	CodecID   VideoCodecID
}

// DecodeVideoDataHeader unpacks the 4/4 bit fields, frame type first.
func DecodeVideoDataHeader(b byte) (VideoDataHeader, error) {
	ft, err := ParseVideoFrameType(b >> 4)
	if err != nil {
		return VideoDataHeader{}, err
	}
	codec, err := ParseVideoCodecID(b & 0x0F)
	if err != nil {
		return VideoDataHeader{}, err
	}
	return VideoDataHeader{FrameType: ft, CodecID: codec}, nil
}

// Encode packs the header into one byte.
func (h VideoDataHeader) Encode() byte {
	return byte(h.FrameType)<<4 | byte(h.CodecID&0x0F)
}

// IsKeyframe reports whether the frame type is a seekable keyframe.
func (h VideoDataHeader) IsKeyframe() bool {
	return h.FrameType == FrameKey || h.FrameType == FrameGeneratedKey
}

// SeekFlag replaces the payload of a video info/command frame.
type SeekFlag uint8

// Seek flags
const (
	SeekStart SeekFlag = 0
	SeekEnd   SeekFlag = 1
)

// DecodeSeekFlag validates a seek flag byte. It is never applied automatically.
func DecodeSeekFlag(b byte) (SeekFlag, error) {
	if b > 1 {
		return 0, parseError(ErrSeekFlag, uint32(b))
	}
	return SeekFlag(b), nil
}
