// If you are AI: This file implements the Library that tracks opened FLV files.
// Each file version is probed once; its metadata and index cache are shared by every handle.

package library

import (
	"io"
	"sync"

	"flvkit/internal/core/protocol/flv"
	"flvkit/internal/logging"
	"flvkit/internal/source"

	"github.com/pkg/errors"
)

// Options configures how files are opened and decoded.
type Options struct {
	Source source.Options
	Decode flv.DecodeOptions
	Cache  bool // Share a MemoryCache per file version
}

// Entry is the probed state of one file version.
type Entry struct {
	Key      Key
	Header   flv.Header
	MetaData *flv.MetaData // nil when the first tag is not onMetaData
	Cache    flv.IndexCache
}

// Library maps file versions to probed entries.
// Lock expectations: Mutex-protected for concurrent access.
type Library struct {
	opts Options

	mu      sync.RWMutex
	entries map[Key]*Entry
	current map[string]Key // Latest key seen per path
}

// New creates an empty library.
func New(opts Options) *Library {
	return &Library{
		opts:    opts,
		entries: make(map[Key]*Entry),
		current: make(map[string]Key),
	}
}

// Open opens path and returns a handle positioned at the start of the file.
// The first open of a file version probes its header and metadata.
func (l *Library) Open(path string) (*Handle, error) {
	f, err := source.Open(path, l.opts.Source)
	if err != nil {
		return nil, err
	}

	key := KeyOf(f.Info())
	entry := l.Get(key)
	if entry == nil {
		entry, err = l.probe(key, f)
		if err != nil {
			f.Close()
			return nil, err
		}
		entry = l.store(entry)
	}

	r := flv.NewReader(f, flv.WithIndexCache(entry.Cache), flv.WithDecodeOptions(l.opts.Decode))
	return &Handle{file: f, reader: r, entry: entry}, nil
}

// probe reads the header and the leading metadata tag, then rewinds.
func (l *Library) probe(key Key, f source.File) (*Entry, error) {
	var cache flv.IndexCache = flv.NoopCache{}
	if l.opts.Cache {
		cache = flv.NewMemoryCache()
	}
	entry := &Entry{Key: key, Cache: cache}

	r := flv.NewReader(f, flv.WithIndexCache(cache), flv.WithDecodeOptions(l.opts.Decode))
	h, err := r.ReadHeader()
	if err != nil {
		return nil, errors.Wrapf(err, "probe %s", key.Path)
	}
	entry.Header = h

	if _, err := r.ReadPreTagSize(); err != nil {
		return nil, errors.Wrapf(err, "probe %s", key.Path)
	}
	th, err := r.ReadTagHeader()
	switch {
	case err == io.EOF:
		// Header-only file.
	case err != nil:
		return nil, errors.Wrapf(err, "probe %s", key.Path)
	case th.Type == flv.TagTypeScriptData:
		md, err := r.ReadMetaData(th)
		if err != nil {
			// A broken metadata tag only disables keyframe seeking.
			logging.LogWarn("metadata unavailable", "file", key.Path, "error", err)
		} else {
			entry.MetaData = md
		}
	}

	if err := r.Seek(0); err != nil {
		return nil, err
	}
	logging.LogDebug("probed file", "key", key.String(), "metadata", entry.MetaData != nil)
	return entry, nil
}

// store inserts entry unless another caller won the race, and drops the stale version of the path.
func (l *Library) store(entry *Entry) *Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if existing, ok := l.entries[entry.Key]; ok {
		return existing
	}
	if old, ok := l.current[entry.Key.Path]; ok && old != entry.Key {
		delete(l.entries, old)
	}
	l.entries[entry.Key] = entry
	l.current[entry.Key.Path] = entry.Key
	return entry
}

// Get retrieves an entry by key, returning nil if not found.
func (l *Library) Get(key Key) *Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entries[key]
}

// Remove forgets a file version.
func (l *Library) Remove(key Key) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.entries[key]; !ok {
		return false
	}
	delete(l.entries, key)
	if l.current[key.Path] == key {
		delete(l.current, key.Path)
	}
	return true
}

// Count returns the number of tracked file versions.
func (l *Library) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// List returns all tracked keys.
func (l *Library) List() []Key {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]Key, 0, len(l.entries))
	for key := range l.entries {
		keys = append(keys, key)
	}
	return keys
}

// Prune drops every tracked version whose file was rewritten or removed since it was probed.
// It returns the number of versions dropped.
func (l *Library) Prune() int {
	l.mu.RLock()
	current := make([]Key, 0, len(l.current))
	for _, key := range l.current {
		current = append(current, key)
	}
	l.mu.RUnlock()

	dropped := 0
	for _, key := range current {
		info, err := source.Stat(key.Path)
		if err == nil && KeyOf(info) == key {
			continue
		}
		if l.Remove(key) {
			dropped++
			logging.LogDebug("pruned stale file", "key", key.String())
		}
	}
	return dropped
}
