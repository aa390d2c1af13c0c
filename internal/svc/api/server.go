// If you are AI: This file provides HTTP API service integration.
// The API exposes server state, the library and per-file index queries.

package api

import (
	"net/http"
	"time"

	"flvkit/internal/core/library"
)

// Version is reported by /api/server. Overridden at build time with -ldflags.
var Version = "dev"

// Service provides HTTP API functionality.
type Service struct {
	lib       *library.Library
	root      string
	services  []string
	version   string
	startTime int64
}

// NewService creates a new API service. services names the enabled endpoints for /api/server.
func NewService(lib *library.Library, root string, services []string) *Service {
	return &Service{
		lib:       lib,
		root:      root,
		services:  append([]string(nil), services...),
		version:   Version,
		startTime: getCurrentTime(),
	}
}

// RegisterRoutes registers API routes on the provided mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/server", s.handleServer)
	mux.HandleFunc("/api/library", s.handleLibrary)
	mux.HandleFunc("/api/files/", s.handleFiles)
}

// getCurrentTime returns current Unix timestamp.
// Extracted for testability.
func getCurrentTime() int64 {
	return time.Now().Unix()
}
