// If you are AI: This file implements the one-byte audio data sub-header codec.
// Sub-field codes come from a closed enumeration, so unknown values are rejected.

package flv

// SoundFormat is the audio codec (bits 7-4).
type SoundFormat uint8

// Sound formats. Codes 12 and 13 are not defined.
const (
	SoundLinearPCMPlatformEndian SoundFormat = 0
	SoundADPCM                   SoundFormat = 1
	SoundMP3                     SoundFormat = 2
	SoundLinearPCMLittleEndian   SoundFormat = 3
	SoundNellymoser16kHzMono     SoundFormat = 4
	SoundNellymoser8kHzMono      SoundFormat = 5
	SoundNellymoser              SoundFormat = 6
	SoundG711ALaw                SoundFormat = 7
	SoundG711MuLaw               SoundFormat = 8
	SoundReserved                SoundFormat = 9
	SoundAAC                     SoundFormat = 10
	SoundSpeex                   SoundFormat = 11
	SoundMP38kHz                 SoundFormat = 14
	SoundDeviceSpecific          SoundFormat = 15
)

// SoundRate is the sampling rate (bits 3-2).
type SoundRate uint8

// Sound rates
const (
	SoundRate5p5kHz SoundRate = 0
	SoundRate11kHz  SoundRate = 1
	SoundRate22kHz  SoundRate = 2
	SoundRate44kHz  SoundRate = 3
)

// SoundSize is the sample size (bit 1).
type SoundSize uint8

// Sound sizes
const (
	SoundSize8Bit  SoundSize = 0
	SoundSize16Bit SoundSize = 1
)

// SoundType is mono or stereo (bit 0).
type SoundType uint8

// Sound types
const (
	SoundMono   SoundType = 0
	SoundStereo SoundType = 1
)

// ParseSoundFormat validates a 4-bit sound format code.
func ParseSoundFormat(v uint8) (SoundFormat, error) {
	if v > 15 || v == 12 || v == 13 {
		return 0, parseError(ErrSoundFormat, uint32(v))
	}
	return SoundFormat(v), nil
}

// ParseSoundRate validates a 2-bit sound rate code.
func ParseSoundRate(v uint8) (SoundRate, error) {
	if v > 3 {
		return 0, parseError(ErrSoundRate, uint32(v))
	}
	return SoundRate(v), nil
}

// ParseSoundSize validates a 1-bit sound size code.
func ParseSoundSize(v uint8) (SoundSize, error) {
	if v > 1 {
		return 0, parseError(ErrSoundSize, uint32(v))
	}
	return SoundSize(v), nil
}

// ParseSoundType validates a 1-bit sound type code.
func ParseSoundType(v uint8) (SoundType, error) {
	if v > 1 {
		return 0, parseError(ErrSoundType, uint32(v))
	}
	return SoundType(v), nil
}

// AudioDataHeader is the sub-header leading every audio tag body.
type AudioDataHeader struct {
	SoundFormat SoundFormat
	SoundRate   SoundRate
	SoundSize   SoundSize
	SoundType   SoundType
}

// DecodeAudioDataHeader unpacks the 4/2/1/1 bit fields, failing on the first invalid one.
func DecodeAudioDataHeader(b byte) (AudioDataHeader, error) {
	format, err := ParseSoundFormat(b >> 4)
	if err != nil {
		return AudioDataHeader{}, err
	}
	rate, err := ParseSoundRate((b >> 2) & 0x03)
	if err != nil {
		return AudioDataHeader{}, err
	}
	size, err := ParseSoundSize((b >> 1) & 0x01)
	if err != nil {
		return AudioDataHeader{}, err
	}
	st, err := ParseSoundType(b & 0x01)
	if err != nil {
		return AudioDataHeader{}, err
	}

	return AudioDataHeader{
		SoundFormat: format,
		SoundRate:   rate,
		SoundSize:   size,
		SoundType:   st,
	}, nil
}

// Encode packs the header into one byte.
func (h AudioDataHeader) Encode() byte {
	return byte(h.SoundFormat)<<4 |
		byte(h.SoundRate&0x03)<<2 |
		byte(h.SoundSize&0x01)<<1 |
		byte(h.SoundType&0x01)
}
