// If you are AI: This file implements the tag copy loop behind Slice.

package slice

import (
	"context"
	"io"

	"flvkit/internal/core/protocol/flv"
)

// copier moves tags from the reader cursor to the writer.
type copier struct {
	ctx   context.Context
	in    *flv.ContextReader
	out   *flv.ContextWriter
	end   uint32
	stats *Stats

	// Until gated, media tags are dropped. Sequence headers always pass.
	gated     bool
	start     uint32
	videoGate bool // Open on a video keyframe rather than on any tag
	base      int32
}

// run copies tags until the end of the range or of the stream.
func (c *copier) run() error {
	for {
		th, err := c.in.ReadTagHeader(c.ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if th.Type == flv.TagTypeScriptData {
			if err := c.in.Reader().SkipData(); err != nil {
				return err
			}
			if _, err := c.in.ReadPreTagSize(c.ctx); err != nil {
				return err
			}
			continue
		}
		if th.Timestamp >= 0 && uint32(th.Timestamp) > c.end {
			return nil
		}

		body, err := c.in.ReadBody(c.ctx, th)
		if err != nil {
			return err
		}
		if _, err := c.in.ReadPreTagSize(c.ctx); err != nil {
			return err
		}

		if !c.gated {
			if flv.IsSequenceHeader(th.Type, body) {
				if err := c.write(th.Type, 0, body); err != nil {
					return err
				}
				continue
			}
			if !c.opens(th, body) {
				continue
			}
			c.gated = true
			c.base = th.Timestamp
		}

		if err := c.write(th.Type, rebase(th.Timestamp, c.base), body); err != nil {
			return err
		}
	}
}

// opens reports whether tag is the first one to copy in a scan without keyframe index.
func (c *copier) opens(th flv.TagHeader, body []byte) bool {
	if th.Timestamp < 0 || uint32(th.Timestamp) < c.start {
		return false
	}
	if !c.videoGate {
		return true
	}
	return th.Type == flv.TagTypeVideo && flv.IsVideoKeyframe(body)
}

// write frames one tag and its pre-tag-size marker.
func (c *copier) write(tagType flv.TagType, ts int32, body []byte) error {
	n, err := c.out.WriteTag(c.ctx, flv.NewTag(tagType, ts, body))
	if err != nil {
		return err
	}
	if _, err := c.out.WritePreTagSize(c.ctx, uint32(n)); err != nil {
		return err
	}
	c.stats.Tags++
	return nil
}

// rebase shifts ts so base maps to 0, never going negative.
func rebase(ts, base int32) int32 {
	if ts < base {
		return 0
	}
	return ts - base
}

// countingWriter counts bytes passed to w.
type countingWriter struct {
	w io.Writer
	n int64
}

// Write forwards p and counts what was written.
func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
