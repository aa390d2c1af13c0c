// If you are AI: This file contains unit tests for the onMetaData decoder and encoder.

package flv

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"flvkit/internal/core/protocol/amf0"
)

// metaPayload builds "onMetaData" + ECMA array, with body writing the entries.
// The outer end marker is appended unless body already wrote a terminator.
func metaPayload(t *testing.T, body func(w *bytes.Buffer), terminate bool) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := amf0.WriteString(&buf, OnMetaData); err != nil {
		t.Fatal(err)
	}
	if err := amf0.WriteECMAArrayStart(&buf, 0); err != nil {
		t.Fatal(err)
	}
	body(&buf)
	if terminate {
		if err := amf0.WriteObjectEnd(&buf); err != nil {
			t.Fatal(err)
		}
	}
	return buf.Bytes()
}

// keyframesObject writes a keyframes entry from raw arrays.
func keyframesObject(w *bytes.Buffer, positions, times []float64) {
	_ = amf0.WriteKey(w, "keyframes")
	_ = amf0.WriteMarker(w, amf0.TypeObject)
	_ = writeNumberArray(w, "filepositions", positions)
	_ = writeNumberArray(w, "times", times)
	_ = amf0.WriteObjectEnd(w)
}

func TestDecodeMetaDataPartial(t *testing.T) {
	payload := metaPayload(t, func(w *bytes.Buffer) {
		_ = amf0.WriteKey(w, "duration")
		_ = amf0.WriteNumber(w, 12.5)
		_ = amf0.WriteKey(w, "stereo")
		_ = amf0.WriteBoolean(w, true)
		_ = amf0.WriteKey(w, "encoder")
		_ = amf0.WriteString(w, "Lavf58")
	}, true)

	md, err := DecodeMetaData(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeMetaData failed: %v", err)
	}
	want := &MetaData{Duration: 12.5, Stereo: true, Encoder: "Lavf58"}
	if !reflect.DeepEqual(md, want) {
		t.Errorf("Expected %+v, got %+v", want, md)
	}
}

func TestDecodeMetaDataKeyframes(t *testing.T) {
	payload := metaPayload(t, func(w *bytes.Buffer) {
		_ = amf0.WriteKey(w, "hasKeyframes")
		_ = amf0.WriteBoolean(w, true)
		keyframesObject(w, []float64{13, 500, 1200}, []float64{0, 1, 2})
	}, true)

	md, err := DecodeMetaData(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeMetaData failed: %v", err)
	}
	want := KeyframeIndex{{0, 13}, {1000, 500}, {2000, 1200}}
	if !reflect.DeepEqual(md.Keyframes, want) {
		t.Errorf("Expected %v, got %v", want, md.Keyframes)
	}
	if !md.HasKeyframes {
		t.Error("hasKeyframes not decoded")
	}
}

func TestDecodeMetaDataDiscardsUnknownKeys(t *testing.T) {
	payload := metaPayload(t, func(w *bytes.Buffer) {
		_ = amf0.WriteKey(w, "custom")
		_ = amf0.WriteNumber(w, 3)
		_ = amf0.WriteKey(w, "title")
		_ = amf0.WriteString(w, "x")
		_ = amf0.WriteKey(w, "width")
		_ = amf0.WriteNumber(w, 1280)
	}, true)

	md, err := DecodeMetaData(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeMetaData failed: %v", err)
	}
	if md.Width != 1280 {
		t.Errorf("Expected width 1280, got %v", md.Width)
	}
}

func TestDecodeMetaDataMarkerErrorDetail(t *testing.T) {
	payload := metaPayload(t, func(w *bytes.Buffer) {
		_ = amf0.WriteKey(w, "keyframes")
		_ = amf0.WriteMarker(w, amf0.TypeObject)
		_ = amf0.WriteKey(w, "filepositions")
		_ = amf0.WriteStrictArrayStart(w, 1)
		_ = amf0.WriteBoolean(w, true)
	}, false)

	_, err := DecodeMetaData(bytes.NewReader(payload))
	var me *MarkerError
	if !errors.As(err, &me) {
		t.Fatalf("Expected MarkerError, got %v", err)
	}
	if me.Expected != amf0.TypeNumber || me.Got != amf0.TypeBoolean {
		t.Errorf("Unexpected marker error %+v", me)
	}
}

func TestDecodeMetaDataTruncateKeyframes(t *testing.T) {
	payload := metaPayload(t, func(w *bytes.Buffer) {
		keyframesObject(w, []float64{13, 500, 900}, []float64{0, 1})
	}, true)

	md, err := DecodeMetaDataWith(bytes.NewReader(payload), DecodeOptions{TruncateKeyframes: true})
	if err != nil {
		t.Fatalf("DecodeMetaDataWith failed: %v", err)
	}
	want := KeyframeIndex{{0, 13}, {1000, 500}}
	if !reflect.DeepEqual(md.Keyframes, want) {
		t.Errorf("Expected %v, got %v", want, md.Keyframes)
	}
}

func TestMetaDataEncodeRoundTrip(t *testing.T) {
	md := &MetaData{
		Duration:         30.5,
		Width:            1920,
		Height:           1080,
		FrameRate:        25,
		VideoCodecID:     7,
		AudioCodecID:     10,
		AudioSampleRate:  44100,
		Stereo:           true,
		MajorBrand:       "isom",
		Encoder:          "flvkit",
		HasVideo:         true,
		HasAudio:         true,
		HasKeyframes:     true,
		CanSeekToEnd:     true,
		LastTimestamp:    30.48,
		CompatibleBrands: "isomiso2avc1mp41",
		Keyframes:        KeyframeIndex{{0, 13}, {1001, 20000}, {1003, 20500}, {1500, 40000}, {3000, 81000}, {4097, 99000}},
	}

	payload, err := EncodeMetaData(md)
	if err != nil {
		t.Fatalf("EncodeMetaData failed: %v", err)
	}
	got, err := DecodeMetaData(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeMetaData failed: %v", err)
	}
	if !reflect.DeepEqual(got, md) {
		t.Errorf("Round trip mismatch:\nwant %+v\ngot  %+v", md, got)
	}
}

func TestMetaDataSeekNil(t *testing.T) {
	var md *MetaData
	if _, ok := md.Seek(100); ok {
		t.Error("Seek on nil metadata should fail")
	}
}

func TestMetaDataWithoutKeyframes(t *testing.T) {
	md := &MetaData{Duration: 9, HasKeyframes: true, FileSize: 1000, Keyframes: KeyframeIndex{{0, 13}}}
	c := md.WithoutKeyframes()
	if c.Keyframes != nil || c.HasKeyframes || c.FileSize != 0 || c.Duration != 9 {
		t.Errorf("Unexpected copy %+v", c)
	}
	if md.Keyframes == nil || !md.HasKeyframes {
		t.Error("Original was modified")
	}
	if (*MetaData)(nil).WithoutKeyframes() != nil {
		t.Error("nil metadata should stay nil")
	}
}

func TestReadScriptData(t *testing.T) {
	md := &MetaData{Duration: 2, Encoder: "flvkit"}
	s := buildStream(t, md, sampleFrames())
	r := NewReader(bytes.NewReader(s.data))
	_, _ = r.ReadHeader()
	_, _ = r.ReadPreTagSize()

	th, err := r.ReadTagHeader()
	if err != nil {
		t.Fatalf("ReadTagHeader failed: %v", err)
	}
	payload, err := r.ReadScriptData(th)
	if err != nil {
		t.Fatalf("ReadScriptData failed: %v", err)
	}
	got, err := DecodeMetaData(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeMetaData failed: %v", err)
	}
	if got.Duration != 2 || got.Encoder != "flvkit" {
		t.Errorf("Unexpected metadata %+v", got)
	}

	// The next tag is video
	_, _ = r.ReadPreTagSize()
	th, _ = r.ReadTagHeader()
	if _, err := r.ReadScriptData(th); !errors.Is(err, ErrTagTypeMismatch) {
		t.Errorf("Expected ErrTagTypeMismatch, got %v", err)
	}
}
