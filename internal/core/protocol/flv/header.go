// If you are AI: This file implements the FLV file header codec.
// The header is read once at stream position 0 and written once at the start of a stream.

package flv

import (
	"encoding/binary"
)

// Header represents an FLV file header.
type Header struct {
	Version    uint8
	HasAudio   bool
	HasVideo   bool
	DataOffset uint32
}

// NewHeader creates a version 1 header with specified audio/video flags.
func NewHeader(hasAudio, hasVideo bool) Header {
	return Header{
		Version:    Version,
		HasAudio:   hasAudio,
		HasVideo:   hasVideo,
		DataOffset: HeaderSize,
	}
}

// DecodeHeader validates and decodes the 9 header bytes.
// Fails on the first violation: signature, version, reserved flags, data offset.
func DecodeHeader(b [HeaderSize]byte) (Header, error) {
	if string(b[0:3]) != Signature {
		sig := uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
		return Header{}, parseError(ErrHeaderSignature, sig)
	}

	if b[3] != Version {
		return Header{}, parseError(ErrHeaderVersion, uint32(b[3]))
	}

	flags := b[4]
	if reserved := flags & flagReserved; reserved != 0 {
		return Header{}, parseError(ErrHeaderFlagsReserved, uint32(reserved))
	}

	offset := binary.BigEndian.Uint32(b[5:9])
	if offset != HeaderSize {
		return Header{}, parseError(ErrHeaderDataOffset, offset)
	}

	return Header{
		Version:    b[3],
		HasAudio:   flags&flagAudio != 0,
		HasVideo:   flags&flagVideo != 0,
		DataOffset: offset,
	}, nil
}

// Encode returns the 9 header bytes.
// The data offset is always written as HeaderSize.
func (h Header) Encode() [HeaderSize]byte {
	var b [HeaderSize]byte

	// Signature "FLV" (3 bytes)
	copy(b[0:3], Signature)

	b[3] = h.Version

	flags := byte(0)
	if h.HasAudio {
		flags |= flagAudio
	}
	if h.HasVideo {
		flags |= flagVideo
	}
	b[4] = flags

	binary.BigEndian.PutUint32(b[5:9], HeaderSize)
	return b
}

// Bytes returns the FLV header as a byte slice.
func (h Header) Bytes() []byte {
	b := h.Encode()
	return b[:]
}
