// If you are AI: This file implements the keyframe index and the seek resolver over it.

package flv

import (
	"math"
	"sort"
)

// Keyframe is one seekable point: a millisecond timestamp and the byte offset of its tag.
type Keyframe struct {
	Timestamp uint32 `json:"timestamp"`
	Offset    uint64 `json:"offset"`
}

// KeyframeIndex is ordered by ascending, unique Timestamp.
type KeyframeIndex []Keyframe

// secondsToMillis rescales a time in seconds to whole milliseconds, truncating.
// Out-of-range values are clamped to the uint32 range.
func secondsToMillis(s float64) uint32 {
	ms := math.Trunc(s * 1000)
	switch {
	case math.IsNaN(ms) || ms <= 0:
		return 0
	case ms >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(ms)
	}
}

// toOffset converts a file position double to a byte offset.
func toOffset(p float64) uint64 {
	if math.IsNaN(p) || p <= 0 {
		return 0
	}
	if p >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(p)
}

// buildKeyframeIndex zips times (seconds) and positions up to the shorter of the two.
// A repeated timestamp keeps the later position.
func buildKeyframeIndex(times, positions []float64) KeyframeIndex {
	n := min(len(times), len(positions))
	index := make(KeyframeIndex, 0, n)
	for i := 0; i < n; i++ {
		index = index.insert(Keyframe{
			Timestamp: secondsToMillis(times[i]),
			Offset:    toOffset(positions[i]),
		})
	}
	return index
}

// insert places kf in timestamp order, replacing an entry with the same timestamp.
func (idx KeyframeIndex) insert(kf Keyframe) KeyframeIndex {
	n := len(idx)
	// Fast path: indexes are almost always written in ascending order.
	if n == 0 || idx[n-1].Timestamp < kf.Timestamp {
		return append(idx, kf)
	}

	i := sort.Search(n, func(i int) bool { return idx[i].Timestamp >= kf.Timestamp })
	if idx[i].Timestamp == kf.Timestamp {
		idx[i] = kf
		return idx
	}
	idx = append(idx, Keyframe{})
	copy(idx[i+1:], idx[i:])
	idx[i] = kf
	return idx
}

// Seek returns the keyframe with the greatest timestamp not after ts.
// It returns false when the index is empty or every keyframe is after ts.
func (idx KeyframeIndex) Seek(ts uint32) (Keyframe, bool) {
	// First entry strictly after ts; its predecessor is the answer.
	i := sort.Search(len(idx), func(i int) bool { return idx[i].Timestamp > ts })
	if i == 0 {
		return Keyframe{}, false
	}
	return idx[i-1], true
}

// Times returns the timestamps in seconds, as stored in onMetaData.
// Each value is the smallest double that secondsToMillis maps back to the timestamp.
func (idx KeyframeIndex) Times() []float64 {
	out := make([]float64, len(idx))
	for i, kf := range idx {
		out[i] = millisToSeconds(kf.Timestamp)
	}
	return out
}

// millisToSeconds returns the smallest double s with secondsToMillis(s) == ms.
// ms/1000 can land just below the millisecond (1001 gives 1.000999...), so step up from there.
func millisToSeconds(ms uint32) float64 {
	s := float64(ms) / 1000
	for secondsToMillis(s) < ms {
		s = math.Nextafter(s, math.Inf(1))
	}
	for s > 0 {
		prev := math.Nextafter(s, 0)
		if secondsToMillis(prev) != ms {
			break
		}
		s = prev
	}
	return s
}

// FilePositions returns the offsets as stored in onMetaData.
func (idx KeyframeIndex) FilePositions() []float64 {
	out := make([]float64, len(idx))
	for i, kf := range idx {
		out[i] = float64(kf.Offset)
	}
	return out
}
