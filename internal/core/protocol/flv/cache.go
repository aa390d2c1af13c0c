// If you are AI: This file defines the IndexCache capability that memoizes byte offsets of
// logical stream positions. A miss is always valid and only costs a rescan.

package flv

import (
	"fmt"
	"sync"
)

// PositionKind identifies which logical position a cache key refers to.
type PositionKind uint8

const (
	// PositionHeader is the file header (always offset 0).
	PositionHeader PositionKind = iota
	// PositionMetaData is the tag header of the first script-data tag.
	PositionMetaData
	// PositionPreTagSize is the nth previous-tag-size marker (0 precedes the first tag).
	PositionPreTagSize
	// PositionTag is the tag header of the nth tag.
	PositionTag
)

// Position is a cache key. Ordinal is only meaningful for PreTagSize and Tag.
type Position struct {
	Kind    PositionKind
	Ordinal uint32
}

// HeaderPosition returns the key of the file header.
func HeaderPosition() Position {
	return Position{Kind: PositionHeader}
}

// MetaDataPosition returns the key of the metadata tag.
func MetaDataPosition() Position {
	return Position{Kind: PositionMetaData}
}

// PreTagSizePosition returns the key of the nth pre-tag-size marker.
func PreTagSizePosition(n uint32) Position {
	return Position{Kind: PositionPreTagSize, Ordinal: n}
}

// TagPosition returns the key of the nth tag.
func TagPosition(n uint32) Position {
	return Position{Kind: PositionTag, Ordinal: n}
}

// String returns a stable representation of the position.
func (p Position) String() string {
	switch p.Kind {
	case PositionHeader:
		return "header"
	case PositionMetaData:
		return "metadata"
	case PositionPreTagSize:
		return fmt.Sprintf("pre_tag_size/%d", p.Ordinal)
	case PositionTag:
		return fmt.Sprintf("tag/%d", p.Ordinal)
	default:
		return "unknown"
	}
}

// IndexCache memoizes byte offsets of logical positions.
// Implementations must never change reader results, only latency.
type IndexCache interface {
	Lookup(pos Position) (uint64, bool)
	Record(pos Position, offset uint64)
}

// NoopCache never remembers anything. It is the reader default.
type NoopCache struct{}

// Lookup always misses.
func (NoopCache) Lookup(Position) (uint64, bool) {
	return 0, false
}

// Record is inert.
func (NoopCache) Record(Position, uint64) {}

// MemoryCache is an unbounded map-backed cache. Entries are never evicted or invalidated,
// so one instance must only ever describe one immutable stream.
// Lock expectations: Mutex-protected, may be shared by readers of the same file.
type MemoryCache struct {
	mu      sync.RWMutex
	offsets map[Position]uint64
}

// NewMemoryCache creates an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		offsets: make(map[Position]uint64),
	}
}

// Lookup returns the recorded offset for pos, if any.
func (c *MemoryCache) Lookup(pos Position) (uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	off, ok := c.offsets[pos]
	return off, ok
}

// Record stores the offset for pos.
func (c *MemoryCache) Record(pos Position, offset uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offsets[pos] = offset
}

// Len returns the number of recorded positions.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.offsets)
}
