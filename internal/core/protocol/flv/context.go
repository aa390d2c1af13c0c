// If you are AI: This file provides the context-aware reader and writer backend.
// Cancellation is observed only between fields; a field read or write is never split.

package flv

import (
	"context"
)

// TagReader is the sequential read operation set shared by both backends.
type TagReader interface {
	ReadHeader() (Header, error)
	ReadPreTagSize() (uint32, error)
	ReadTagHeader() (TagHeader, error)
	ReadAudioDataHeader() (AudioDataHeader, error)
	ReadVideoDataHeader() (VideoDataHeader, error)
	ReadData(th TagHeader) ([]byte, error)
	ReadBody(th TagHeader) ([]byte, error)
	ReadMetaData(th TagHeader) (*MetaData, error)
}

var _ TagReader = (*Reader)(nil)

// ContextReader runs Reader operations under a context.
type ContextReader struct {
	r *Reader
}

// NewContextReader wraps r.
func NewContextReader(r *Reader) *ContextReader {
	return &ContextReader{r: r}
}

// Reader returns the wrapped reader.
func (c *ContextReader) Reader() *Reader {
	return c.r
}

// ReadHeader reads the file header unless ctx is done.
func (c *ContextReader) ReadHeader(ctx context.Context) (Header, error) {
	if err := ctx.Err(); err != nil {
		return Header{}, err
	}
	return c.r.ReadHeader()
}

// ReadPreTagSize reads a pre-tag-size marker unless ctx is done.
func (c *ContextReader) ReadPreTagSize(ctx context.Context) (uint32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.ReadPreTagSize()
}

// ReadTagHeader reads a tag header unless ctx is done.
func (c *ContextReader) ReadTagHeader(ctx context.Context) (TagHeader, error) {
	if err := ctx.Err(); err != nil {
		return TagHeader{}, err
	}
	return c.r.ReadTagHeader()
}

// ReadAudioDataHeader reads the audio sub-header unless ctx is done.
func (c *ContextReader) ReadAudioDataHeader(ctx context.Context) (AudioDataHeader, error) {
	if err := ctx.Err(); err != nil {
		return AudioDataHeader{}, err
	}
	return c.r.ReadAudioDataHeader()
}

// ReadVideoDataHeader reads the video sub-header unless ctx is done.
func (c *ContextReader) ReadVideoDataHeader(ctx context.Context) (VideoDataHeader, error) {
	if err := ctx.Err(); err != nil {
		return VideoDataHeader{}, err
	}
	return c.r.ReadVideoDataHeader()
}

// ReadData reads an audio/video payload unless ctx is done.
func (c *ContextReader) ReadData(ctx context.Context, th TagHeader) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.r.ReadData(th)
}

// ReadBody reads a whole tag body unless ctx is done.
func (c *ContextReader) ReadBody(ctx context.Context, th TagHeader) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.r.ReadBody(th)
}

// ReadScriptData reads a script-data payload unless ctx is done.
func (c *ContextReader) ReadScriptData(ctx context.Context, th TagHeader) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.r.ReadScriptData(th)
}

// ReadTag reads a complete tag. ctx is checked before the header and before the body.
func (c *ContextReader) ReadTag(ctx context.Context) (*Tag, error) {
	th, err := c.ReadTagHeader(ctx)
	if err != nil {
		return nil, err
	}
	data, err := c.ReadBody(ctx, th)
	if err != nil {
		return nil, err
	}
	return &Tag{Header: th, Data: data}, nil
}

// ReadMetaData decodes a metadata payload unless ctx is done.
func (c *ContextReader) ReadMetaData(ctx context.Context, th TagHeader) (*MetaData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.r.ReadMetaData(th)
}

// ContextWriter runs Writer operations under a context.
type ContextWriter struct {
	w *Writer
}

// NewContextWriter wraps w.
func NewContextWriter(w *Writer) *ContextWriter {
	return &ContextWriter{w: w}
}

// WriteHeader writes the file header unless ctx is done.
func (c *ContextWriter) WriteHeader(ctx context.Context, h Header) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.w.WriteHeader(h)
}

// WritePreTagSize writes a pre-tag-size marker unless ctx is done.
func (c *ContextWriter) WritePreTagSize(ctx context.Context, size uint32) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.w.WritePreTagSize(size)
}

// WriteAudioTag writes an audio tag unless ctx is done.
func (c *ContextWriter) WriteAudioTag(ctx context.Context, ts int32, h AudioDataHeader, data []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.w.WriteAudioTag(ts, h, data)
}

// WriteVideoTag writes a video tag unless ctx is done.
func (c *ContextWriter) WriteVideoTag(ctx context.Context, ts int32, h VideoDataHeader, data []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.w.WriteVideoTag(ts, h, data)
}

// WriteTag writes a pre-assembled tag unless ctx is done.
func (c *ContextWriter) WriteTag(ctx context.Context, tag *Tag) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.w.WriteTag(tag)
}

// WriteMetaData writes an onMetaData tag unless ctx is done.
func (c *ContextWriter) WriteMetaData(ctx context.Context, ts int32, md *MetaData) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.w.WriteMetaData(ts, md)
}
