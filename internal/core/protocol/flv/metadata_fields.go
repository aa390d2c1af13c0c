// If you are AI: This file maps onMetaData keys to MetaData fields. Unknown keys are dropped.

package flv

// setNumber copies a number into the matching field.
func (m *MetaData) setNumber(key string, v float64) {
	switch key {
	case "duration":
		m.Duration = v
	case "width":
		m.Width = v
	case "height":
		m.Height = v
	case "videodatarate":
		m.VideoDataRate = v
	case "framerate":
		m.FrameRate = v
	case "videocodecid":
		m.VideoCodecID = v
	case "audiodatarate":
		m.AudioDataRate = v
	case "audiosamplerate":
		m.AudioSampleRate = v
	case "audiosamplesize":
		m.AudioSampleSize = v
	case "audiocodecid":
		m.AudioCodecID = v
	case "filesize":
		m.FileSize = v
	case "datasize":
		m.DataSize = v
	case "videosize":
		m.VideoSize = v
	case "audiosize":
		m.AudioSize = v
	case "lasttimestamp":
		m.LastTimestamp = v
	case "lastkeyframetimestamp":
		m.LastKeyframeTimestamp = v
	case "lastkeyframelocation":
		m.LastKeyframeLocation = v
	}
}

// setBool copies a boolean into the matching field.
func (m *MetaData) setBool(key string, v bool) {
	switch key {
	case "stereo":
		m.Stereo = v
	case "hasVideo":
		m.HasVideo = v
	case "hasKeyframes":
		m.HasKeyframes = v
	case "hasAudio":
		m.HasAudio = v
	case "hasMetadata":
		m.HasMetadata = v
	case "canSeekToEnd":
		m.CanSeekToEnd = v
	}
}

// setString copies a string into the matching field.
func (m *MetaData) setString(key, v string) {
	switch key {
	case "major_brand":
		m.MajorBrand = v
	case "minor_version":
		m.MinorVersion = v
	case "compatible_brands":
		m.CompatibleBrands = v
	case "encoder":
		m.Encoder = v
	}
}
