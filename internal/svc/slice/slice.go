// If you are AI: This file implements cutting a time range out of an FLV file into a new FLV.
// Output starts at a keyframe, carries the decoder configuration and rebases timestamps to 0.

package slice

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"flvkit/internal/core/library"
	"flvkit/internal/core/protocol/flv"
	"flvkit/internal/logging"
)

// ErrInvalidRange is returned when the end of the range precedes its start.
var ErrInvalidRange = errors.New("end timestamp before start timestamp")

// Stats summarizes a completed slice.
type Stats struct {
	Seek  library.SeekResult
	Base  int32 // Source timestamp mapped to 0
	Tags  int   // Tags written, metadata excluded
	Bytes int64
}

// Slice writes the tags of h whose timestamps fall in [start, end] milliseconds to w.
// With a keyframe index the copy starts at the keyframe at or before start; without one it
// starts at the first video keyframe at or after start.
func Slice(ctx context.Context, h *library.Handle, w io.Writer, start, end uint32) (Stats, error) {
	var stats Stats
	if end < start {
		return stats, fmt.Errorf("slice %d..%d: %w", start, end, ErrInvalidRange)
	}

	initTags, err := h.InitTags()
	if err != nil {
		return stats, fmt.Errorf("read decoder configuration: %w", err)
	}
	res, err := h.SeekTime(start)
	if err != nil {
		return stats, fmt.Errorf("seek to %d: %w", start, err)
	}
	stats.Seek = res

	cw := &countingWriter{w: w}
	out := flv.NewContextWriter(flv.NewWriter(cw))
	c := &copier{
		ctx:   ctx,
		in:    flv.NewContextReader(h.Reader()),
		out:   out,
		end:   end,
		stats: &stats,
	}

	if _, err := out.WriteHeader(ctx, h.Header()); err != nil {
		return stats, err
	}
	if err := c.writeMetaData(h, start); err != nil {
		return stats, err
	}

	if res.Found {
		// Configuration tags sit before the keyframe, so they are replayed first.
		for _, tag := range initTags {
			if err := c.write(tag.Header.Type, 0, tag.Data); err != nil {
				return stats, err
			}
		}
		c.gated = true
		c.base = int32(res.Keyframe.Timestamp)
	} else {
		c.start = start
		c.videoGate = h.Header().HasVideo
	}
	if err := c.run(); err != nil {
		return stats, err
	}
	stats.Base = c.base
	stats.Bytes = cw.n
	logging.LogDebug("slice done", "file", h.Info().Path, "start", start, "end", end, "tags", stats.Tags, "bytes", stats.Bytes)
	return stats, nil
}

// writeMetaData re-emits the source metadata without its now invalid keyframe index.
func (c *copier) writeMetaData(h *library.Handle, start uint32) error {
	md := h.MetaData().WithoutKeyframes()
	if md == nil {
		return nil
	}
	span := float64(c.end-start) / 1000
	if rest := md.Duration - float64(start)/1000; md.Duration > 0 && rest < span {
		span = max(rest, 0)
	}
	md.Duration = span

	n, err := c.out.WriteMetaData(c.ctx, 0, md)
	if err != nil {
		return err
	}
	_, err = c.out.WritePreTagSize(c.ctx, uint32(n))
	return err
}

// SliceFile slices the file at in into a new file at out. The output is removed on failure.
func SliceFile(ctx context.Context, lib *library.Library, in, out string, start, end uint32) (Stats, error) {
	h, err := lib.Open(in)
	if err != nil {
		return Stats{}, err
	}
	defer h.Close()

	f, err := os.Create(out)
	if err != nil {
		return Stats{}, fmt.Errorf("create output: %w", err)
	}
	bw := bufio.NewWriter(f)

	stats, err := Slice(ctx, h, bw, start, end)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(out)
		return stats, err
	}
	return stats, nil
}
