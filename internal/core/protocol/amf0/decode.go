// If you are AI: This file implements the AMF0 read primitives used by the onMetaData decoder.
// Each primitive reads exactly one field; there is no generic value decoder.

package amf0

import (
	"encoding/binary"
	"io"
	"unicode/utf8"
)

// ReadMarker reads a one-byte type marker.
func ReadMarker(r io.Reader) (byte, error) {
	var marker byte
	if err := binary.Read(r, binary.BigEndian, &marker); err != nil {
		return 0, err
	}
	return marker, nil
}

// ReadNumber reads an 8-byte big-endian IEEE-754 double (no marker).
func ReadNumber(r io.Reader) (float64, error) {
	var num float64
	err := binary.Read(r, binary.BigEndian, &num)
	return num, err
}

// ReadBoolean reads a one-byte boolean (no marker). Any nonzero byte is true.
func ReadBoolean(r io.Reader) (bool, error) {
	var b byte
	if err := binary.Read(r, binary.BigEndian, &b); err != nil {
		return false, err
	}
	return b != 0, nil
}

// ReadString reads a 2-byte length-prefixed UTF-8 string (no marker).
// Object keys use the same encoding.
func ReadString(r io.Reader) (string, error) {
	var length uint16
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}

// ReadUint32 reads a 4-byte big-endian count, as used by ECMA and strict arrays.
func ReadUint32(r io.Reader) (uint32, error) {
	var n uint32
	err := binary.Read(r, binary.BigEndian, &n)
	return n, err
}

// ReadObjectEnd reads the 3-byte end-of-object field and returns its value.
// Callers compare it against ObjectEnd.
func ReadObjectEnd(r io.Reader) (uint32, error) {
	var b [3]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}
