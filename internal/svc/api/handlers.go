// If you are AI: This file implements HTTP API handlers.
// All handlers are read-only and answer from the library and the file index.

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime"
	"strconv"
	"strings"

	"flvkit/internal/core/library"
	"flvkit/internal/core/protocol/flv"
	"flvkit/internal/logging"
	"flvkit/internal/svc/httpflv"
	"flvkit/internal/svc/inspect"
)

// ServerResponse represents the /api/server response.
type ServerResponse struct {
	Version         string   `json:"version"`
	Uptime          int64    `json:"uptime"` // seconds
	GoVersion       string   `json:"go_version"`
	EnabledServices []string `json:"enabled_services"`
}

// LibraryEntry represents one cached file version.
type LibraryEntry struct {
	Path    string `json:"path"`
	Size    int64  `json:"size"`
	ModTime int64  `json:"mod_time_ns"`
}

// LibraryResponse represents the /api/library response.
type LibraryResponse struct {
	Files []LibraryEntry `json:"files"`
}

// HeaderInfo represents the FLV file header.
type HeaderInfo struct {
	Version  uint8 `json:"version"`
	HasAudio bool  `json:"has_audio"`
	HasVideo bool  `json:"has_video"`
}

// MetaDataResponse represents the /api/files/{name}/metadata response.
type MetaDataResponse struct {
	Name     string        `json:"name"`
	Size     int64         `json:"size"`
	ModTime  int64         `json:"mod_time_ns"`
	Header   HeaderInfo    `json:"header"`
	MetaData *flv.MetaData `json:"metadata"` // null when the file has no onMetaData tag
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// errBadTimestamp is returned for a missing or malformed t parameter.
var errBadTimestamp = errors.New("t must be a timestamp in milliseconds")

// handleServer handles GET /api/server.
// Returns server version, uptime, and enabled services.
func (s *Service) handleServer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	response := ServerResponse{
		Version:         s.version,
		Uptime:          getCurrentTime() - s.startTime,
		GoVersion:       runtime.Version(),
		EnabledServices: s.services,
	}
	s.writeJSON(w, http.StatusOK, response)
}

// handleLibrary handles GET /api/library.
// Returns the file versions currently held by the library, after dropping stale ones.
func (s *Service) handleLibrary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	s.lib.Prune()
	keys := s.lib.List()
	files := make([]LibraryEntry, 0, len(keys))
	for _, key := range keys {
		files = append(files, LibraryEntry{Path: key.Path, Size: key.Size, ModTime: key.ModTime})
	}
	s.writeJSON(w, http.StatusOK, LibraryResponse{Files: files})
}

// handleFiles handles GET /api/files/{name}/metadata and GET /api/files/{name}/seek?t=ms.
func (s *Service) handleFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/files/")
	i := strings.LastIndex(rest, "/")
	if i <= 0 {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	name, action := rest[:i], rest[i+1:]
	if action != "metadata" && action != "seek" {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}

	var ts uint32
	if action == "seek" {
		v, err := strconv.ParseUint(r.URL.Query().Get("t"), 10, 32)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, errBadTimestamp.Error())
			return
		}
		ts = uint32(v)
	}

	file, err := library.Resolve(s.root, name)
	if err != nil {
		s.writeError(w, httpflv.OpenStatus(err), err.Error())
		return
	}
	handle, err := s.lib.Open(file)
	if err != nil {
		s.writeError(w, httpflv.OpenStatus(err), "cannot open "+name)
		return
	}
	defer handle.Close()

	if action == "metadata" {
		s.writeMetaData(w, name, handle)
		return
	}

	report, err := inspect.Seek(handle, ts)
	if err != nil {
		logging.LogWarn("api seek failed", "path", file, "t", ts, "error", err)
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// writeMetaData writes the metadata response for an opened file.
func (s *Service) writeMetaData(w http.ResponseWriter, name string, h *library.Handle) {
	info := h.Info()
	hdr := h.Header()
	s.writeJSON(w, http.StatusOK, MetaDataResponse{
		Name:     name,
		Size:     info.Size,
		ModTime:  info.ModTime,
		Header:   HeaderInfo{Version: hdr.Version, HasAudio: hdr.HasAudio, HasVideo: hdr.HasVideo},
		MetaData: h.MetaData(),
	})
}

// writeJSON writes a JSON response.
func (s *Service) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.LogDebug("api write response", "error", err)
	}
}

// writeError writes an error response.
func (s *Service) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: message})
}
