// If you are AI: This file implements the tag-by-tag dump of an FLV file.
// Every field is printed as it is read; the walk stops at the first error.

package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"flvkit/internal/core/protocol/flv"
)

// DumpStats summarizes a completed dump.
type DumpStats struct {
	Tags          int
	Audio         int
	Video         int
	Script        int
	Reserved      int
	LastTimestamp int32
}

// Dump walks r from the file header to the end of the stream and writes one line per field to w.
// The reader must be positioned at offset 0.
func Dump(ctx context.Context, w io.Writer, r *flv.Reader) (DumpStats, error) {
	var stats DumpStats
	cr := flv.NewContextReader(r)

	h, err := cr.ReadHeader(ctx)
	if err != nil {
		return stats, err
	}
	fmt.Fprintf(w, "flv header: %+v\n", h)

	for index := 0; ; index++ {
		pre, err := cr.ReadPreTagSize(ctx)
		if err != nil {
			return stats, fmt.Errorf("pre_tag_size%d: %w", index, err)
		}
		fmt.Fprintf(w, "pre_tag_size%d: %d\n", index, pre)

		th, err := cr.ReadTagHeader(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("tag%d: %w", index, err)
		}
		fmt.Fprintf(w, "tag%d header: %+v\n", index, th)

		if err := dumpBody(ctx, w, cr, th, &stats); err != nil {
			return stats, fmt.Errorf("tag%d: %w", index, err)
		}
		stats.Tags++
		stats.LastTimestamp = th.Timestamp
	}

	fmt.Fprintf(w, "total: %d tags (%d audio, %d video, %d script, %d reserved), last timestamp %d ms\n",
		stats.Tags, stats.Audio, stats.Video, stats.Script, stats.Reserved, stats.LastTimestamp)
	return stats, nil
}

// dumpBody prints the sub-header and payload summary of one tag.
func dumpBody(ctx context.Context, w io.Writer, cr *flv.ContextReader, th flv.TagHeader, stats *DumpStats) error {
	switch th.Type {
	case flv.TagTypeAudio:
		stats.Audio++
		ah, err := cr.ReadAudioDataHeader(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "audio header: %+v\n", ah)
		data, err := cr.ReadData(ctx, th)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "audio data: %d bytes\n", len(data))

	case flv.TagTypeVideo:
		stats.Video++
		vh, err := cr.ReadVideoDataHeader(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "video header: %+v\n", vh)
		data, err := cr.ReadData(ctx, th)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "video data: %d bytes\n", len(data))

	case flv.TagTypeScriptData:
		stats.Script++
		md, err := cr.ReadMetaData(ctx, th)
		if errors.Is(err, flv.ErrNotMetaData) {
			fmt.Fprintf(w, "script data: %d bytes\n", th.DataSize)
			return cr.Reader().SkipData()
		}
		if err != nil {
			return err
		}
		out, err := json.Marshal(md)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "metadata: %s\n", out)

	default:
		stats.Reserved++
		fmt.Fprintf(w, "unexpected tag type: %s\n", th.Type)
		return cr.Reader().SkipData()
	}
	return nil
}
