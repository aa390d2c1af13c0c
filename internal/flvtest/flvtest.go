// If you are AI: This file builds deterministic FLV files for service and CLI tests.
// The layout mirrors a typical encoder output: sequence headers, then one keyframe per second.

package flvtest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"flvkit/internal/core/protocol/flv"
)

// Sample is an encoded file with the offsets needed to check seeks.
type Sample struct {
	Data            []byte
	MetaData        *flv.MetaData // nil when built without metadata
	TagOffsets      []uint64      // Tag header offset of every tag, metadata included
	KeyframeOffsets []uint64      // Tag header offset of each keyframe, one per second
	Timestamps      []int32       // Timestamp of every tag
}

// Options shapes the sample.
type Options struct {
	Seconds  int  // Number of one-second groups, default 3
	MetaData bool // Emit an onMetaData tag with a keyframe index
}

// Build encodes a sample file.
func Build(t testing.TB, opts Options) *Sample {
	t.Helper()
	if opts.Seconds == 0 {
		opts.Seconds = 3
	}
	if !opts.MetaData {
		return build(t, opts, nil)
	}

	// The index is fixed width, so a first pass with placeholders yields the final offsets.
	md := &flv.MetaData{
		Duration:     float64(opts.Seconds),
		HasVideo:     true,
		HasAudio:     true,
		HasKeyframes: true,
		Encoder:      "flvtest",
		Keyframes:    make(flv.KeyframeIndex, opts.Seconds),
	}
	first := build(t, opts, md)
	for i, off := range first.KeyframeOffsets {
		md.Keyframes[i] = flv.Keyframe{Timestamp: uint32(i * 1000), Offset: off}
	}
	return build(t, opts, md)
}

// build writes the tags, recording offsets.
func build(t testing.TB, opts Options, md *flv.MetaData) *Sample {
	var buf bytes.Buffer
	w := flv.NewWriter(&buf)
	s := &Sample{MetaData: md}

	if _, err := w.WriteHeader(flv.NewHeader(true, true)); err != nil {
		t.Fatalf("write header: %v", err)
	}
	emit := func(ts int32, n int, err error) {
		if err != nil {
			t.Fatalf("write tag: %v", err)
		}
		if _, err := w.WritePreTagSize(uint32(n)); err != nil {
			t.Fatalf("write pre tag size: %v", err)
		}
		s.Timestamps = append(s.Timestamps, ts)
	}
	mark := func() {
		s.TagOffsets = append(s.TagOffsets, uint64(buf.Len()))
	}

	if md != nil {
		mark()
		n, err := w.WriteMetaData(0, md)
		emit(0, n, err)
	}

	key := flv.VideoDataHeader{FrameType: flv.FrameKey, CodecID: flv.CodecAVC}
	inter := flv.VideoDataHeader{FrameType: flv.FrameInter, CodecID: flv.CodecAVC}
	aac := flv.AudioDataHeader{SoundFormat: flv.SoundAAC, SoundRate: flv.SoundRate44kHz, SoundSize: flv.SoundSize16Bit, SoundType: flv.SoundStereo}

	mark()
	n, err := w.WriteVideoTag(0, key, []byte{0x00, 0, 0, 0, 0x01, 0x64, 0x00, 0x1F})
	emit(0, n, err)
	mark()
	n, err = w.WriteAudioTag(0, aac, []byte{0x00, 0x12, 0x10})
	emit(0, n, err)

	for sec := 0; sec < opts.Seconds; sec++ {
		base := int32(sec * 1000)

		mark()
		s.KeyframeOffsets = append(s.KeyframeOffsets, uint64(buf.Len()))
		n, err := w.WriteVideoTag(base, key, []byte{0x01, 0, 0, 0, 0x65, byte(sec)})
		emit(base, n, err)

		mark()
		n, err = w.WriteAudioTag(base+20, aac, []byte{0x01, 0x21, byte(sec)})
		emit(base+20, n, err)

		mark()
		n, err = w.WriteVideoTag(base+500, inter, []byte{0x01, 0, 0, 0, 0x41, byte(sec)})
		emit(base+500, n, err)

		mark()
		n, err = w.WriteAudioTag(base+520, aac, []byte{0x01, 0x21, byte(sec), 1})
		emit(base+520, n, err)
	}

	s.Data = buf.Bytes()
	return s
}

// WriteFile stores data as name under dir and returns the path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}
