// If you are AI: This file implements the onMetaData decoder, a closed-grammar recursive descent
// parser over AMF0. Every marker the grammar does not name aborts decoding.

package flv

import (
	"io"

	"flvkit/internal/core/protocol/amf0"

	"github.com/pkg/errors"
)

// OnMetaData is the name of the script-data object carrying stream metadata.
const OnMetaData = "onMetaData"

// ErrInvalidUTF8 is returned for metadata strings that are not valid UTF-8.
var ErrInvalidUTF8 = amf0.ErrInvalidUTF8

// MetaData is the decoded onMetaData record. Absent keys keep their zero value.
// Keyframes is nil when the stream carries no keyframe index.
type MetaData struct {
	Duration              float64 `json:"duration"`
	Width                 float64 `json:"width"`
	Height                float64 `json:"height"`
	VideoDataRate         float64 `json:"videodatarate"`
	FrameRate             float64 `json:"framerate"`
	VideoCodecID          float64 `json:"videocodecid"`
	AudioDataRate         float64 `json:"audiodatarate"`
	AudioSampleRate       float64 `json:"audiosamplerate"`
	AudioSampleSize       float64 `json:"audiosamplesize"`
	Stereo                bool    `json:"stereo"`
	AudioCodecID          float64 `json:"audiocodecid"`
	MajorBrand            string  `json:"major_brand"`
	MinorVersion          string  `json:"minor_version"`
	CompatibleBrands      string  `json:"compatible_brands"`
	Encoder               string  `json:"encoder"`
	FileSize              float64 `json:"filesize"`
	HasVideo              bool    `json:"hasVideo"`
	HasKeyframes          bool    `json:"hasKeyframes"`
	HasAudio              bool    `json:"hasAudio"`
	HasMetadata           bool    `json:"hasMetadata"`
	CanSeekToEnd          bool    `json:"canSeekToEnd"`
	DataSize              float64 `json:"datasize"`
	VideoSize             float64 `json:"videosize"`
	AudioSize             float64 `json:"audiosize"`
	LastTimestamp         float64 `json:"lasttimestamp"`
	LastKeyframeTimestamp float64 `json:"lastkeyframetimestamp"`
	LastKeyframeLocation  float64 `json:"lastkeyframelocation"`

	Keyframes KeyframeIndex `json:"keyframes,omitempty"`
}

// DecodeOptions tunes metadata decoding.
type DecodeOptions struct {
	// TruncateKeyframes zips keyframe times and filepositions up to the shorter array
	// instead of failing with ErrKeyframeMismatch.
	TruncateKeyframes bool
}

// Seek returns the keyframe to start playback from for ts milliseconds.
func (m *MetaData) Seek(ts uint32) (Keyframe, bool) {
	if m == nil {
		return Keyframe{}, false
	}
	return m.Keyframes.Seek(ts)
}

// WithoutKeyframes returns a copy of m with the keyframe index and the fields describing the
// original file layout cleared. Used when re-emitting metadata for a derived stream.
func (m *MetaData) WithoutKeyframes() *MetaData {
	if m == nil {
		return nil
	}
	c := *m
	c.Keyframes = nil
	c.HasKeyframes = false
	c.FileSize = 0
	c.LastKeyframeLocation = 0
	return &c
}

// DecodeMetaData decodes an onMetaData script-data payload with default options.
func DecodeMetaData(r io.Reader) (*MetaData, error) {
	return DecodeMetaDataWith(r, DecodeOptions{})
}

// DecodeMetaDataWith decodes an onMetaData script-data payload.
func DecodeMetaDataWith(r io.Reader, opts DecodeOptions) (*MetaData, error) {
	d := &metaDecoder{r: r, opts: opts}
	md, err := d.decode()
	if err != nil {
		return nil, errors.Wrap(err, "decode metadata")
	}
	return md, nil
}

// metaDecoder holds the decoding cursor.
type metaDecoder struct {
	r    io.Reader
	opts DecodeOptions
}

// fieldErr maps short reads inside the payload to ErrTruncated.
func fieldErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}
	return err
}

// expectMarker reads a marker and fails unless it equals want.
func (d *metaDecoder) expectMarker(want byte, context string) error {
	got, err := amf0.ReadMarker(d.r)
	if err != nil {
		return fieldErr(err)
	}
	if got != want {
		return &MarkerError{Context: context, Expected: want, Got: got}
	}
	return nil
}

// expectObjectEnd reads the 3-byte object terminator.
func (d *metaDecoder) expectObjectEnd(context string) error {
	v, err := amf0.ReadObjectEnd(d.r)
	if err != nil {
		return fieldErr(err)
	}
	if v != amf0.ObjectEnd {
		return errors.Wrapf(ErrObjectEnd, "%s: 0x%06X", context, v)
	}
	return nil
}

// readString reads a length-prefixed string.
func (d *metaDecoder) readString() (string, error) {
	s, err := amf0.ReadString(d.r)
	return s, fieldErr(err)
}

// decode parses: string "onMetaData", then an ECMA array of entries.
func (d *metaDecoder) decode() (*MetaData, error) {
	if err := d.expectMarker(amf0.TypeString, "name"); err != nil {
		return nil, err
	}
	name, err := d.readString()
	if err != nil {
		return nil, err
	}
	if name != OnMetaData {
		return nil, errors.Wrapf(ErrNotMetaData, "got %q", name)
	}

	if err := d.expectMarker(amf0.TypeECMAArray, OnMetaData); err != nil {
		return nil, err
	}
	// The count is informational; the object end marker terminates the array.
	if _, err := amf0.ReadUint32(d.r); err != nil {
		return nil, fieldErr(err)
	}

	md := &MetaData{}
	for {
		key, err := d.readString()
		if err != nil {
			return nil, err
		}
		if key == "" {
			// Empty key: the remaining byte of the 3-byte end marker.
			marker, err := amf0.ReadMarker(d.r)
			if err != nil {
				return nil, fieldErr(err)
			}
			if marker != amf0.TypeObjectEnd {
				return nil, errors.Wrapf(ErrObjectEnd, "%s: 0x%06X", OnMetaData, marker)
			}
			return md, nil
		}
		if err := d.decodeEntry(md, key); err != nil {
			return nil, errors.Wrapf(err, "key %q", key)
		}
	}
}

// decodeEntry decodes one value and stores it when the key is known.
func (d *metaDecoder) decodeEntry(md *MetaData, key string) error {
	marker, err := amf0.ReadMarker(d.r)
	if err != nil {
		return fieldErr(err)
	}

	switch marker {
	case amf0.TypeNumber:
		v, err := amf0.ReadNumber(d.r)
		if err != nil {
			return fieldErr(err)
		}
		md.setNumber(key, v)
	case amf0.TypeBoolean:
		v, err := amf0.ReadBoolean(d.r)
		if err != nil {
			return fieldErr(err)
		}
		md.setBool(key, v)
	case amf0.TypeString:
		v, err := d.readString()
		if err != nil {
			return err
		}
		md.setString(key, v)
	case amf0.TypeObject:
		if key != "keyframes" {
			return errors.Wrapf(ErrUnsupportedType, "%s (0x%02X)", amf0.Name(marker), marker)
		}
		index, err := d.decodeKeyframes()
		if err != nil {
			return err
		}
		md.Keyframes = index
	default:
		return errors.Wrapf(ErrUnsupportedType, "%s (0x%02X)", amf0.Name(marker), marker)
	}
	return nil
}

// decodeKeyframes parses {filepositions: [..], times: [..]} followed by the end marker.
func (d *metaDecoder) decodeKeyframes() (KeyframeIndex, error) {
	positions, err := d.decodeNumberArray("filepositions")
	if err != nil {
		return nil, err
	}
	times, err := d.decodeNumberArray("times")
	if err != nil {
		return nil, err
	}
	if err := d.expectObjectEnd("keyframes"); err != nil {
		return nil, err
	}

	if len(times) != len(positions) && !d.opts.TruncateKeyframes {
		return nil, errors.Wrapf(ErrKeyframeMismatch, "%d times, %d filepositions", len(times), len(positions))
	}
	return buildKeyframeIndex(times, positions), nil
}

// decodeNumberArray parses a key that must equal want, mapped to a strict array of numbers.
func (d *metaDecoder) decodeNumberArray(want string) ([]float64, error) {
	key, err := d.readString()
	if err != nil {
		return nil, err
	}
	if key != want {
		return nil, errors.Wrapf(ErrUnexpectedKey, "keyframes: expected %q, got %q", want, key)
	}
	if err := d.expectMarker(amf0.TypeStrictArray, want); err != nil {
		return nil, err
	}
	count, err := amf0.ReadUint32(d.r)
	if err != nil {
		return nil, fieldErr(err)
	}

	// Cap the preallocation; a corrupt count fails on the first short read instead.
	values := make([]float64, 0, min(count, 4096))
	for i := uint32(0); i < count; i++ {
		if err := d.expectMarker(amf0.TypeNumber, want); err != nil {
			return nil, err
		}
		v, err := amf0.ReadNumber(d.r)
		if err != nil {
			return nil, fieldErr(err)
		}
		values = append(values, v)
	}
	return values, nil
}
