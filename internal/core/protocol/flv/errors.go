// If you are AI: This file defines the FLV error taxonomy.
// Structural parse errors carry the offending raw value; everything is matchable with errors.Is.

package flv

import (
	"errors"
	"fmt"
	"io"
)

// Structural parse errors for fixed-layout fields.
var (
	ErrHeaderSignature     = errors.New("invalid header signature")
	ErrHeaderVersion       = errors.New("invalid version")
	ErrHeaderFlagsReserved = errors.New("invalid reserved type flags format")
	ErrHeaderDataOffset    = errors.New("invalid data offset")
	ErrSoundFormat         = errors.New("invalid sound format")
	ErrSoundRate           = errors.New("invalid sound rate")
	ErrSoundSize           = errors.New("invalid sound size")
	ErrSoundType           = errors.New("invalid sound type")
	ErrVideoFrameType      = errors.New("invalid video frame type")
	ErrVideoCodecID        = errors.New("invalid video codec id")
	ErrSeekFlag            = errors.New("invalid seek flag")
)

// Stream level errors.
var (
	// ErrTruncated is returned when a field read starts but cannot complete.
	// It wraps io.ErrUnexpectedEOF.
	ErrTruncated = fmt.Errorf("truncated stream: %w", io.ErrUnexpectedEOF)

	// ErrDataSize is returned by the writer when a tag body exceeds MaxDataSize.
	ErrDataSize = errors.New("data size is too long")

	// ErrTagTypeMismatch is returned when a sub-header read does not match the last tag header.
	ErrTagTypeMismatch = errors.New("tag type mismatch")
)

// Metadata grammar errors.
var (
	ErrNotMetaData      = errors.New("script data is not onMetaData")
	ErrUnexpectedMarker = errors.New("unexpected amf marker")
	ErrUnsupportedType  = errors.New("unsupported type")
	ErrUnexpectedKey    = errors.New("unexpected key")
	ErrObjectEnd        = errors.New("invalid object end marker")
	ErrKeyframeMismatch = errors.New("keyframe times and filepositions differ in length")
)

// ParseError reports a fixed-layout field that failed validation.
type ParseError struct {
	Err   error  // One of the structural sentinels above
	Value uint32 // Raw offending value
}

// Error formats the sentinel message with the raw value in hex.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: 0x%X", e.Err, e.Value)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// parseError builds a ParseError.
func parseError(err error, value uint32) error {
	return &ParseError{Err: err, Value: value}
}

// DataSizeError reports a tag body that cannot be framed.
type DataSizeError struct {
	Size int
}

// Error returns the rejected size.
func (e *DataSizeError) Error() string {
	return fmt.Sprintf("%v: %d", ErrDataSize, e.Size)
}

// Unwrap exposes ErrDataSize.
func (e *DataSizeError) Unwrap() error {
	return ErrDataSize
}

// MarkerError reports a type marker that differs from the one the grammar requires.
type MarkerError struct {
	Context  string
	Expected byte
	Got      byte
}

// Error names the expected and observed markers.
func (e *MarkerError) Error() string {
	return fmt.Sprintf("%v in %s: expected 0x%02X, got 0x%02X", ErrUnexpectedMarker, e.Context, e.Expected, e.Got)
}

// Unwrap exposes ErrUnexpectedMarker.
func (e *MarkerError) Unwrap() error {
	return ErrUnexpectedMarker
}

// ErrPositionNotFound is returned when a logical position does not exist in the stream.
var ErrPositionNotFound = errors.New("position not found")
