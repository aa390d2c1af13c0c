// If you are AI: This file contains unit tests for the file header codec.

package flv

import (
	"bytes"
	"errors"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	for _, audio := range []bool{false, true} {
		for _, video := range []bool{false, true} {
			h := NewHeader(audio, video)
			b := h.Encode()

			got, err := DecodeHeader(b)
			if err != nil {
				t.Fatalf("DecodeHeader(audio=%v, video=%v) failed: %v", audio, video, err)
			}
			if got != h {
				t.Errorf("Expected %+v, got %+v", h, got)
			}
			if again := got.Encode(); again != b {
				t.Errorf("Re-encoding changed bytes: %x vs %x", again, b)
			}
		}
	}
}

func TestHeaderLayout(t *testing.T) {
	b := NewHeader(true, true).Bytes()
	want := []byte{'F', 'L', 'V', 1, 0x05, 0, 0, 0, 9}
	if !bytes.Equal(b, want) {
		t.Errorf("Expected %x, got %x", want, b)
	}
}

func TestHeaderBadSignature(t *testing.T) {
	tails := [][6]byte{
		{1, 0x05, 0, 0, 0, 9},
		{0, 0, 0, 0, 0, 0},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
	}
	for _, sig := range []string{"FLW", "flv", "\x00\x00\x00", "GLV"} {
		for _, tail := range tails {
			var b [HeaderSize]byte
			copy(b[:3], sig)
			copy(b[3:], tail[:])

			_, err := DecodeHeader(b)
			if !errors.Is(err, ErrHeaderSignature) {
				t.Errorf("Signature %q: expected ErrHeaderSignature, got %v", sig, err)
			}
		}
	}
}

func TestHeaderBadSignatureValue(t *testing.T) {
	b := [HeaderSize]byte{'F', 'L', 'W', 1, 0, 0, 0, 0, 9}
	_, err := DecodeHeader(b)

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if pe.Value != 0x464C57 {
		t.Errorf("Expected raw value 0x464C57, got 0x%X", pe.Value)
	}
}

func TestHeaderBadVersion(t *testing.T) {
	b := [HeaderSize]byte{'F', 'L', 'V', 2, 0x05, 0, 0, 0, 9}
	if _, err := DecodeHeader(b); !errors.Is(err, ErrHeaderVersion) {
		t.Errorf("Expected ErrHeaderVersion, got %v", err)
	}
}

func TestHeaderReservedFlags(t *testing.T) {
	for _, flags := range []byte{0x02, 0x08, 0x10, 0x80, 0xFF} {
		b := [HeaderSize]byte{'F', 'L', 'V', 1, flags, 0, 0, 0, 9}
		_, err := DecodeHeader(b)
		if !errors.Is(err, ErrHeaderFlagsReserved) {
			t.Errorf("Flags 0x%02X: expected ErrHeaderFlagsReserved, got %v", flags, err)
		}
	}
}

func TestHeaderBadDataOffset(t *testing.T) {
	for _, off := range [][4]byte{{0, 0, 0, 0}, {0, 0, 0, 13}, {0, 0, 1, 9}, {0xFF, 0xFF, 0xFF, 0xFF}} {
		b := [HeaderSize]byte{'F', 'L', 'V', 1, 0x05}
		copy(b[5:], off[:])
		if _, err := DecodeHeader(b); !errors.Is(err, ErrHeaderDataOffset) {
			t.Errorf("Offset %x: expected ErrHeaderDataOffset, got %v", off, err)
		}
	}
}
