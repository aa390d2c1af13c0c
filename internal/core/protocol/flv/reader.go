// If you are AI: This file implements the sequential FLV tag stream reader.
// The reader is single-pass and single-owner; end of stream is only reported at tag boundaries.

package flv

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Reader consumes an FLV byte stream field by field.
// Lock expectations: None. One caller at a time.
type Reader struct {
	r     io.ReadSeeker
	src   sourceReader
	cache IndexCache
	opts  DecodeOptions

	offset    uint64 // Absolute cursor
	bodyStart uint64 // Offset right after the last tag header
	last      TagHeader
	haveLast  bool

	// Ordinals of the next pre-tag-size marker and tag. Only trusted when ordinalsKnown,
	// otherwise nothing is recorded in the cache.
	nextPre       uint32
	nextTag       uint32
	ordinalsKnown bool

	// fromOrigin is true while every tag since offset 0 has been seen,
	// which is what makes "first script tag" meaningful.
	fromOrigin bool
	seenScript bool
}

// ReaderOption configures a Reader at construction time.
type ReaderOption func(*Reader)

// WithIndexCache sets the index cache. The default is NoopCache.
func WithIndexCache(c IndexCache) ReaderOption {
	return func(r *Reader) {
		if c != nil {
			r.cache = c
		}
	}
}

// WithDecodeOptions sets the metadata decoding options.
func WithDecodeOptions(o DecodeOptions) ReaderOption {
	return func(r *Reader) {
		r.opts = o
	}
}

// NewReader creates a reader positioned at the start of the stream.
// The source must be positioned at offset 0.
func NewReader(rs io.ReadSeeker, opts ...ReaderOption) *Reader {
	r := &Reader{
		r:             rs,
		cache:         NoopCache{},
		ordinalsKnown: true,
		fromOrigin:    true,
	}
	r.src = sourceReader{rd: r}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// sourceReader adapts the reader's source: it retries EINTR and advances the cursor.
type sourceReader struct {
	rd *Reader
}

// Read reads from the underlying source, hiding interrupted reads.
func (s sourceReader) Read(p []byte) (int, error) {
	for {
		n, err := s.rd.r.Read(p)
		s.rd.offset += uint64(n)
		if err != nil && isInterrupted(err) {
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, err
	}
}

// Offset returns the absolute byte offset of the cursor.
func (r *Reader) Offset() uint64 {
	return r.offset
}

// Cache returns the index cache in use.
func (r *Reader) Cache() IndexCache {
	return r.cache
}

// LastTagHeader returns the most recently read tag header, if any.
func (r *Reader) LastTagHeader() (TagHeader, bool) {
	return r.last, r.haveLast
}

// record stores pos at the current offset when ordinals are trustworthy.
func (r *Reader) record(pos Position) {
	if r.ordinalsKnown {
		r.cache.Record(pos, r.offset)
	}
}

// ReadHeader reads and validates the 9-byte file header at the current cursor.
// It does not rewind; call Seek(0) first to re-read the header.
func (r *Reader) ReadHeader() (Header, error) {
	if r.offset == 0 {
		r.cache.Record(HeaderPosition(), 0)
	}

	var buf [HeaderSize]byte
	if err := requireField(r.src, buf[:]); err != nil {
		return Header{}, errors.Wrap(err, "read header")
	}
	return DecodeHeader(buf)
}

// ReadPreTagSize reads the 4-byte previous-tag-size marker.
// A short read is always a truncation, never a clean end of stream.
func (r *Reader) ReadPreTagSize() (uint32, error) {
	r.record(PreTagSizePosition(r.nextPre))

	var buf [PreTagSizeLength]byte
	if err := requireField(r.src, buf[:]); err != nil {
		return 0, errors.Wrap(err, "read pre tag size")
	}
	r.nextPre++
	return binary.BigEndian.Uint32(buf[:]), nil
}

// ReadTagHeader reads the next 11-byte tag header.
// Returns io.EOF (unwrapped) when no byte is left at the tag boundary,
// and ErrTruncated when the header is incomplete.
func (r *Reader) ReadTagHeader() (TagHeader, error) {
	start := r.offset

	var buf [TagHeaderSize]byte
	if _, err := readField(r.src, buf[:]); err != nil {
		if err == io.EOF {
			return TagHeader{}, io.EOF
		}
		return TagHeader{}, errors.Wrap(err, "read tag header")
	}

	th := DecodeTagHeader(buf)
	if r.ordinalsKnown {
		r.cache.Record(TagPosition(r.nextTag), start)
	}
	if th.Type == TagTypeScriptData {
		if r.fromOrigin && !r.seenScript {
			r.cache.Record(MetaDataPosition(), start)
		}
		r.seenScript = true
	}
	r.nextTag++

	r.last = th
	r.haveLast = true
	r.bodyStart = r.offset
	return th, nil
}

// readSubHeader reads the one-byte sub-header of a tag of type want.
func (r *Reader) readSubHeader(want TagType) (byte, error) {
	if !r.haveLast || r.last.Type != want {
		return 0, errors.Wrapf(ErrTagTypeMismatch, "read %s data header after %s tag", want, r.last.Type)
	}
	var buf [1]byte
	if err := requireField(r.src, buf[:]); err != nil {
		return 0, errors.Wrapf(err, "read %s data header", want)
	}
	return buf[0], nil
}

// ReadAudioDataHeader reads the audio sub-header. The last tag header must be audio.
func (r *Reader) ReadAudioDataHeader() (AudioDataHeader, error) {
	b, err := r.readSubHeader(TagTypeAudio)
	if err != nil {
		return AudioDataHeader{}, err
	}
	return DecodeAudioDataHeader(b)
}

// ReadVideoDataHeader reads the video sub-header. The last tag header must be video.
func (r *Reader) ReadVideoDataHeader() (VideoDataHeader, error) {
	b, err := r.readSubHeader(TagTypeVideo)
	if err != nil {
		return VideoDataHeader{}, err
	}
	return DecodeVideoDataHeader(b)
}

// ReadData reads the payload of an audio or video tag: DataSize minus the one sub-header byte
// already consumed. Script-data and reserved tags have no sub-header; use ReadBody for them.
func (r *Reader) ReadData(th TagHeader) ([]byte, error) {
	size := th.DataSize
	if size > 0 {
		size--
	}
	return r.readPayload(size)
}

// ReadScriptData reads the full payload of a script-data tag whose header was just read.
func (r *Reader) ReadScriptData(th TagHeader) ([]byte, error) {
	if !r.haveLast || th.Type != TagTypeScriptData {
		return nil, errors.Wrapf(ErrTagTypeMismatch, "read script data from %s tag", th.Type)
	}
	return r.readPayload(th.DataSize)
}

// ReadBody reads the full DataSize bytes following the tag header.
func (r *Reader) ReadBody(th TagHeader) ([]byte, error) {
	return r.readPayload(th.DataSize)
}

// readPayload reads exactly size bytes.
func (r *Reader) readPayload(size uint32) ([]byte, error) {
	buf := make([]byte, size)
	if err := requireField(r.src, buf); err != nil {
		return nil, errors.Wrap(err, "read tag data")
	}
	return buf, nil
}

// ReadTag reads a complete tag (header plus raw body) without decoding the body.
// Returns io.EOF at a clean end of stream.
func (r *Reader) ReadTag() (*Tag, error) {
	th, err := r.ReadTagHeader()
	if err != nil {
		return nil, err
	}
	data, err := r.ReadBody(th)
	if err != nil {
		return nil, err
	}
	return &Tag{Header: th, Data: data}, nil
}

// SkipData moves the cursor past the body of the last tag, whatever was already consumed of it.
func (r *Reader) SkipData() error {
	if !r.haveLast {
		return errors.Wrap(ErrTagTypeMismatch, "skip data without tag header")
	}
	return r.seekTo(r.bodyStart + uint64(r.last.DataSize))
}

// ReadMetaData decodes the onMetaData payload of a script-data tag whose header was just read.
// The cursor ends right after the tag body even if the object is shorter than DataSize.
func (r *Reader) ReadMetaData(th TagHeader) (*MetaData, error) {
	if !r.haveLast || th.Type != TagTypeScriptData {
		return nil, errors.Wrapf(ErrTagTypeMismatch, "read metadata from %s tag", th.Type)
	}

	md, err := DecodeMetaDataWith(io.LimitReader(r.src, int64(th.DataSize)), r.opts)
	if err != nil {
		return nil, err
	}
	if err := r.seekTo(r.bodyStart + uint64(th.DataSize)); err != nil {
		return nil, err
	}
	return md, nil
}
