// If you are AI: This file implements onMetaData encoding, the inverse of the metadata decoder.

package flv

import (
	"io"

	"flvkit/internal/core/protocol/amf0"
)

// metaNumbers lists numeric fields in emission order.
func (m *MetaData) metaNumbers() []struct {
	key string
	val float64
} {
	return []struct {
		key string
		val float64
	}{
		{"duration", m.Duration},
		{"width", m.Width},
		{"height", m.Height},
		{"videodatarate", m.VideoDataRate},
		{"framerate", m.FrameRate},
		{"videocodecid", m.VideoCodecID},
		{"audiodatarate", m.AudioDataRate},
		{"audiosamplerate", m.AudioSampleRate},
		{"audiosamplesize", m.AudioSampleSize},
		{"audiocodecid", m.AudioCodecID},
		{"filesize", m.FileSize},
		{"datasize", m.DataSize},
		{"videosize", m.VideoSize},
		{"audiosize", m.AudioSize},
		{"lasttimestamp", m.LastTimestamp},
		{"lastkeyframetimestamp", m.LastKeyframeTimestamp},
		{"lastkeyframelocation", m.LastKeyframeLocation},
	}
}

// metaBools lists boolean fields in emission order.
func (m *MetaData) metaBools() []struct {
	key string
	val bool
} {
	return []struct {
		key string
		val bool
	}{
		{"stereo", m.Stereo},
		{"hasVideo", m.HasVideo},
		{"hasKeyframes", m.HasKeyframes},
		{"hasAudio", m.HasAudio},
		{"hasMetadata", m.HasMetadata},
		{"canSeekToEnd", m.CanSeekToEnd},
	}
}

// metaStrings lists string fields in emission order.
func (m *MetaData) metaStrings() []struct {
	key string
	val string
} {
	return []struct {
		key string
		val string
	}{
		{"major_brand", m.MajorBrand},
		{"minor_version", m.MinorVersion},
		{"compatible_brands", m.CompatibleBrands},
		{"encoder", m.Encoder},
	}
}

// encodeMetaData writes the "onMetaData" name and the ECMA array of all fields.
func encodeMetaData(w io.Writer, m *MetaData) error {
	if err := amf0.WriteString(w, OnMetaData); err != nil {
		return err
	}

	nums, bools, strs := m.metaNumbers(), m.metaBools(), m.metaStrings()
	count := len(nums) + len(bools) + len(strs)
	if m.Keyframes != nil {
		count++
	}
	if err := amf0.WriteECMAArrayStart(w, uint32(count)); err != nil {
		return err
	}

	for _, f := range nums {
		if err := writeEntry(w, f.key, func() error { return amf0.WriteNumber(w, f.val) }); err != nil {
			return err
		}
	}
	for _, f := range bools {
		if err := writeEntry(w, f.key, func() error { return amf0.WriteBoolean(w, f.val) }); err != nil {
			return err
		}
	}
	for _, f := range strs {
		if err := writeEntry(w, f.key, func() error { return amf0.WriteString(w, f.val) }); err != nil {
			return err
		}
	}
	if m.Keyframes != nil {
		if err := writeKeyframes(w, m.Keyframes); err != nil {
			return err
		}
	}
	return amf0.WriteObjectEnd(w)
}

// writeEntry writes a key followed by the value written by val.
func writeEntry(w io.Writer, key string, val func() error) error {
	if err := amf0.WriteKey(w, key); err != nil {
		return err
	}
	return val()
}

// writeKeyframes writes the keyframes object: filepositions, times, end marker.
func writeKeyframes(w io.Writer, idx KeyframeIndex) error {
	if err := amf0.WriteKey(w, "keyframes"); err != nil {
		return err
	}
	if err := amf0.WriteMarker(w, amf0.TypeObject); err != nil {
		return err
	}
	if err := writeNumberArray(w, "filepositions", idx.FilePositions()); err != nil {
		return err
	}
	if err := writeNumberArray(w, "times", idx.Times()); err != nil {
		return err
	}
	return amf0.WriteObjectEnd(w)
}

// writeNumberArray writes key: strict array of numbers.
func writeNumberArray(w io.Writer, key string, values []float64) error {
	if err := amf0.WriteKey(w, key); err != nil {
		return err
	}
	if err := amf0.WriteStrictArrayStart(w, uint32(len(values))); err != nil {
		return err
	}
	for _, v := range values {
		if err := amf0.WriteNumber(w, v); err != nil {
			return err
		}
	}
	return nil
}
