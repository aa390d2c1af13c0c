// If you are AI: This file contains unit tests for the audio/video sub-header codecs.

package flv

import (
	"errors"
	"testing"
)

func TestAudioDataHeaderRoundTrip(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		format := b >> 4
		if format == 12 || format == 13 {
			continue
		}
		h, err := DecodeAudioDataHeader(byte(b))
		if err != nil {
			t.Fatalf("DecodeAudioDataHeader(0x%02X) failed: %v", b, err)
		}
		if h.Encode() != byte(b) {
			t.Errorf("Round trip 0x%02X gave 0x%02X", b, h.Encode())
		}
	}
}

func TestAudioDataHeaderFields(t *testing.T) {
	// AAC, 44kHz, 16 bit, stereo
	h, err := DecodeAudioDataHeader(0xAF)
	if err != nil {
		t.Fatalf("DecodeAudioDataHeader failed: %v", err)
	}
	want := AudioDataHeader{SoundAAC, SoundRate44kHz, SoundSize16Bit, SoundStereo}
	if h != want {
		t.Errorf("Expected %+v, got %+v", want, h)
	}
}

func TestAudioDataHeaderInvalidFormat(t *testing.T) {
	for _, format := range []byte{12, 13} {
		_, err := DecodeAudioDataHeader(format<<4 | 0x0F)
		if !errors.Is(err, ErrSoundFormat) {
			t.Fatalf("Format %d: expected ErrSoundFormat, got %v", format, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Value != uint32(format) {
			t.Errorf("Format %d: error should name the raw value, got %v", format, err)
		}
	}
}

func TestSoundFieldParsers(t *testing.T) {
	if _, err := ParseSoundRate(4); !errors.Is(err, ErrSoundRate) {
		t.Errorf("Expected ErrSoundRate, got %v", err)
	}
	if _, err := ParseSoundSize(2); !errors.Is(err, ErrSoundSize) {
		t.Errorf("Expected ErrSoundSize, got %v", err)
	}
	if _, err := ParseSoundType(2); !errors.Is(err, ErrSoundType) {
		t.Errorf("Expected ErrSoundType, got %v", err)
	}
	if _, err := ParseSoundFormat(16); !errors.Is(err, ErrSoundFormat) {
		t.Errorf("Expected ErrSoundFormat, got %v", err)
	}
}

func TestVideoDataHeaderRoundTrip(t *testing.T) {
	for ft := 1; ft <= 5; ft++ {
		for codec := 1; codec <= 7; codec++ {
			b := byte(ft<<4 | codec)
			h, err := DecodeVideoDataHeader(b)
			if err != nil {
				t.Fatalf("DecodeVideoDataHeader(0x%02X) failed: %v", b, err)
			}
			if h.Encode() != b {
				t.Errorf("Round trip 0x%02X gave 0x%02X", b, h.Encode())
			}
		}
	}
}

func TestVideoDataHeaderInvalidFrameType(t *testing.T) {
	for _, ft := range []byte{0, 6, 7, 15} {
		_, err := DecodeVideoDataHeader(ft<<4 | byte(CodecAVC))
		var pe *ParseError
		if !errors.Is(err, ErrVideoFrameType) || !errors.As(err, &pe) || pe.Value != uint32(ft) {
			t.Errorf("Frame type %d: expected ErrVideoFrameType naming %d, got %v", ft, ft, err)
		}
	}
}

func TestVideoDataHeaderInvalidCodec(t *testing.T) {
	for _, codec := range []byte{0, 8, 12, 13, 15} {
		_, err := DecodeVideoDataHeader(byte(FrameKey)<<4 | codec)
		var pe *ParseError
		if !errors.Is(err, ErrVideoCodecID) || !errors.As(err, &pe) || pe.Value != uint32(codec) {
			t.Errorf("Codec %d: expected ErrVideoCodecID naming %d, got %v", codec, codec, err)
		}
	}
}

func TestVideoDataHeaderKeyframe(t *testing.T) {
	h, _ := DecodeVideoDataHeader(0x17)
	if !h.IsKeyframe() {
		t.Error("0x17 should be a keyframe")
	}
	h, _ = DecodeVideoDataHeader(0x27)
	if h.IsKeyframe() {
		t.Error("0x27 should not be a keyframe")
	}
}

func TestSeekFlag(t *testing.T) {
	if f, err := DecodeSeekFlag(0); err != nil || f != SeekStart {
		t.Errorf("Expected SeekStart, got %v (%v)", f, err)
	}
	if f, err := DecodeSeekFlag(1); err != nil || f != SeekEnd {
		t.Errorf("Expected SeekEnd, got %v (%v)", f, err)
	}
	if _, err := DecodeSeekFlag(2); !errors.Is(err, ErrSeekFlag) {
		t.Errorf("Expected ErrSeekFlag, got %v", err)
	}
}
