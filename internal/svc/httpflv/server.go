// If you are AI: This file provides HTTP-FLV service integration.
// The service is integrated into the main HTTP server.

package httpflv

import (
	"net/http"

	"flvkit/internal/core/library"
)

// Service provides HTTP-FLV streaming functionality.
type Service struct {
	handler *Handler
}

// NewService creates a new HTTP-FLV service serving files under root.
func NewService(lib *library.Library, root string) *Service {
	return &Service{
		handler: NewHandler(lib, root),
	}
}

// RegisterRoutes registers HTTP-FLV routes on the provided mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.handler.RegisterRoutes(mux)
}
