// If you are AI: This file implements the HTTP handler for FLV file requests.
// Handles GET /{name}.flv[?start=ms] with keyframe-accurate pseudo-streaming.

package httpflv

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"

	"flvkit/internal/core/library"
	"flvkit/internal/core/protocol/flv"
	"flvkit/internal/logging"
)

// Handler handles HTTP-FLV requests.
type Handler struct {
	lib  *library.Library
	root string
}

// NewHandler creates a new HTTP-FLV handler serving files under root.
func NewHandler(lib *library.Library, root string) *Handler {
	return &Handler{
		lib:  lib,
		root: root,
	}
}

// ParseStart reads the optional start query parameter in milliseconds.
func ParseStart(r *http.Request) (uint32, bool, error) {
	v := r.URL.Query().Get("start")
	if v == "" {
		return 0, false, nil
	}
	ms, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return uint32(ms), true, nil
}

// OpenStatus maps a library open error to an HTTP status.
func OpenStatus(err error) int {
	switch {
	case errors.Is(err, library.ErrInvalidName):
		return http.StatusBadRequest
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	default:
		return http.StatusUnprocessableEntity
	}
}

// ServeHTTP handles HTTP requests for FLV files.
// Endpoint: GET /{name}.flv
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !strings.HasSuffix(r.URL.Path, ".flv") {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	start, seek, err := ParseStart(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	file, err := library.Resolve(h.root, r.URL.Path)
	if err != nil {
		w.WriteHeader(OpenStatus(err))
		return
	}
	handle, err := h.lib.Open(file)
	if err != nil {
		logging.LogDebug("httpflv open failed", "path", r.URL.Path, "error", err)
		w.WriteHeader(OpenStatus(err))
		return
	}
	defer handle.Close()

	sess := NewSession(w, handle)
	offset := uint64(0)
	if seek && start > 0 {
		initTags, err := handle.InitTags()
		if err != nil {
			logging.LogWarn("httpflv read decoder configuration", "path", file, "error", err)
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		res, err := handle.SeekTime(start)
		if err != nil {
			logging.LogWarn("httpflv seek", "path", file, "start", start, "error", err)
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		// A keyframe inside the file header means playback from the first byte.
		if res.Found && res.Offset >= flv.HeaderSize+flv.PreTagSizeLength {
			setHeaders(w)
			if err := sess.WritePreamble(initTags); err != nil {
				return
			}
			offset = res.Offset
		}
	}
	if offset == 0 {
		setHeaders(w)
	}

	if _, err := sess.CopyFrom(offset); err != nil {
		// Client disconnected or read error
		logging.LogDebug("httpflv copy stopped", "path", file, "error", err)
	}
}

// setHeaders sets the streaming response headers.
func setHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "video/x-flv")
	w.Header().Set("Cache-Control", "no-cache")
}

// RegisterRoutes registers HTTP-FLV routes on the given mux.
// Routes are registered with a pattern matcher for .flv files.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// More specific patterns such as /healthz and /api/ still win.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if path.Ext(r.URL.Path) == ".flv" {
			h.ServeHTTP(w, r)
		} else {
			w.WriteHeader(http.StatusNotFound)
		}
	})
}
