// If you are AI: This file implements AMF0 write primitives for emitting onMetaData.

package amf0

import (
	"encoding/binary"
	"io"
)

// WriteMarker writes a one-byte type marker.
func WriteMarker(w io.Writer, marker byte) error {
	return binary.Write(w, binary.BigEndian, marker)
}

// WriteNumber writes a number marker followed by the double.
func WriteNumber(w io.Writer, num float64) error {
	if err := WriteMarker(w, TypeNumber); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, num)
}

// WriteBoolean writes a boolean marker followed by 0 or 1.
func WriteBoolean(w io.Writer, b bool) error {
	if err := WriteMarker(w, TypeBoolean); err != nil {
		return err
	}
	var val byte
	if b {
		val = 1
	}
	return binary.Write(w, binary.BigEndian, val)
}

// WriteString writes a string marker followed by the length-prefixed string.
func WriteString(w io.Writer, s string) error {
	if err := WriteMarker(w, TypeString); err != nil {
		return err
	}
	return WriteKey(w, s)
}

// WriteKey writes a length-prefixed string without a marker.
func WriteKey(w io.Writer, s string) error {
	if len(s) > MaxStringLength {
		return ErrStringTooLong
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// WriteECMAArrayStart writes an ECMA array marker and its informational entry count.
func WriteECMAArrayStart(w io.Writer, count uint32) error {
	if err := WriteMarker(w, TypeECMAArray); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, count)
}

// WriteStrictArrayStart writes a strict array marker and its element count.
func WriteStrictArrayStart(w io.Writer, count uint32) error {
	if err := WriteMarker(w, TypeStrictArray); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, count)
}

// WriteObjectEnd writes the 3-byte end-of-object field.
func WriteObjectEnd(w io.Writer) error {
	_, err := w.Write([]byte{0, 0, TypeObjectEnd})
	return err
}
