// If you are AI: This file implements the HTTP server lifecycle and routing.

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"flvkit/internal/config"
	"flvkit/internal/core/library"
	"flvkit/internal/core/protocol/flv"
	"flvkit/internal/source"
	"flvkit/internal/svc/api"
	"flvkit/internal/svc/health"
	"flvkit/internal/svc/httpflv"
	"flvkit/internal/svc/wsflv"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer      *http.Server
	lib             *library.Library
	shutdownTimeout time.Duration
}

// LibraryOptions maps the source, metadata and cache sections to library options.
func LibraryOptions(cfg *config.Config) library.Options {
	return library.Options{
		Source: source.Options{Mmap: cfg.Source.Mmap},
		Decode: flv.DecodeOptions{TruncateKeyframes: cfg.MetaData.TruncateKeyframes},
		Cache:  cfg.Cache.Enabled == nil || *cfg.Cache.Enabled,
	}
}

// New creates a new server instance with the given configuration.
// The server is not started until Start is called.
func New(cfg *config.Config) *Server {
	mux := http.NewServeMux()
	lib := library.New(LibraryOptions(cfg))
	root := cfg.Server.RootDir

	health.New(lib).RegisterRoutes(mux)
	services := []string{"http_flv"}

	if enabled(cfg.Server.WSEnabled) {
		wsflv.NewService(lib, root).RegisterRoutes(mux)
		services = append(services, "ws_flv")
	}
	if enabled(cfg.Server.APIEnabled) {
		services = append(services, "api")
		api.NewService(lib, root, services).RegisterRoutes(mux)
	}

	// Catch-all for /{name}.flv
	httpflv.NewService(lib, root).RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		httpServer:      httpServer,
		lib:             lib,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}
}

// enabled treats an unset flag as on.
func enabled(b *bool) bool {
	return b == nil || *b
}

// Handler returns the routing handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Library returns the file library shared by all services.
func (s *Server) Library() *library.Library {
	return s.lib
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start begins serving HTTP requests.
// This method blocks until the server is stopped or encounters an error.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server with a timeout.
// Returns an error if shutdown fails or times out.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ShutdownWithTimeout stops the server with the configured shutdown timeout.
// This is a convenience wrapper around Shutdown.
func (s *Server) ShutdownWithTimeout() error {
	timeout := s.shutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.Shutdown(ctx)
}
