// If you are AI: This file implements cursor repositioning for the reader.
// Logical positions are resolved through the index cache, falling back to a rescan from offset 0.

package flv

import (
	"io"

	"github.com/pkg/errors"
)

// seekTo moves the source cursor without touching any other reader state.
func (r *Reader) seekTo(offset uint64) error {
	if offset == r.offset {
		return nil
	}
	if _, err := r.r.Seek(int64(offset), io.SeekStart); err != nil {
		return errors.Wrapf(err, "seek to %d", offset)
	}
	r.offset = offset
	return nil
}

// Seek moves the cursor to an absolute offset, e.g. a keyframe file position.
// Seeking to 0 restarts the stream; any other offset leaves tag ordinals unknown,
// so nothing is recorded in the index cache until the next restart.
func (r *Reader) Seek(offset uint64) error {
	if _, err := r.r.Seek(int64(offset), io.SeekStart); err != nil {
		return errors.Wrapf(err, "seek to %d", offset)
	}
	r.offset = offset
	r.haveLast = false

	if offset == 0 {
		r.nextPre = 0
		r.nextTag = 0
		r.ordinalsKnown = true
		r.fromOrigin = true
		r.seenScript = false
		return nil
	}
	r.ordinalsKnown = false
	r.fromOrigin = false
	return nil
}

// SeekPosition moves the cursor to a logical position. After it returns, the next read is
// the field the position names: ReadHeader, ReadPreTagSize or ReadTagHeader.
// A position past the last tag leaves the cursor at the end of the stream.
func (r *Reader) SeekPosition(pos Position) error {
	if off, ok := r.cache.Lookup(pos); ok {
		return r.applyPosition(pos, off)
	}
	return r.rescan(pos)
}

// applyPosition seeks to a cached offset and restores the ordinals it implies.
func (r *Reader) applyPosition(pos Position, offset uint64) error {
	if pos.Kind == PositionHeader {
		return r.Seek(0)
	}
	if err := r.Seek(offset); err != nil {
		return err
	}

	switch pos.Kind {
	case PositionPreTagSize:
		r.nextPre = pos.Ordinal
		r.nextTag = pos.Ordinal
		r.ordinalsKnown = true
	case PositionTag:
		r.nextPre = pos.Ordinal + 1
		r.nextTag = pos.Ordinal
		r.ordinalsKnown = true
	}
	return nil
}

// rescan walks the stream from offset 0 until pos is reached, recording along the way.
func (r *Reader) rescan(pos Position) error {
	if err := r.Seek(0); err != nil {
		return err
	}
	if pos.Kind == PositionHeader {
		return nil
	}
	if _, err := r.ReadHeader(); err != nil {
		return err
	}

	for i := uint32(0); ; i++ {
		if pos.Kind == PositionPreTagSize && pos.Ordinal == i {
			return nil
		}
		if _, err := r.ReadPreTagSize(); err != nil {
			return err
		}
		if pos.Kind == PositionTag && pos.Ordinal == i {
			return nil
		}

		tagStart := r.offset
		th, err := r.ReadTagHeader()
		if err == io.EOF {
			return errors.Wrapf(ErrPositionNotFound, "%s", pos)
		}
		if err != nil {
			return err
		}

		if pos.Kind == PositionMetaData && th.Type == TagTypeScriptData {
			if err := r.seekTo(tagStart); err != nil {
				return err
			}
			r.nextTag--
			r.haveLast = false
			return nil
		}
		if err := r.SkipData(); err != nil {
			return err
		}
	}
}

// SeekKeyframe resolves ts against the metadata keyframe index and moves the cursor to the
// keyframe's tag header. When no keyframe qualifies the cursor is left untouched and false is
// returned; callers then scan from the first tag instead.
func (r *Reader) SeekKeyframe(md *MetaData, ts uint32) (Keyframe, bool, error) {
	kf, ok := md.Seek(ts)
	if !ok {
		return Keyframe{}, false, nil
	}
	if err := r.Seek(kf.Offset); err != nil {
		return Keyframe{}, false, err
	}
	return kf, true, nil
}
