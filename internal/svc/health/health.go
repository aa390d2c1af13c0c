// If you are AI: This file implements the health check endpoint for monitoring and integration tests.
// The response reports how many file versions the library currently tracks.

package health

import (
	"encoding/json"
	"net/http"
)

// Counter reports the number of tracked file versions.
type Counter interface {
	Count() int
}

// Status is the JSON body of /healthz.
type Status struct {
	Status string `json:"status"`
	Files  int    `json:"files"`
}

// Service provides health check functionality.
type Service struct {
	files Counter
}

// New creates a health service reporting the size of files. A nil counter reports 0.
func New(files Counter) *Service {
	return &Service{files: files}
}

// RegisterRoutes adds health check routes to the provided mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.handleHealth)
}

// handleHealth answers GET with 200 and the current status.
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	st := Status{Status: "ok"}
	if s.files != nil {
		st.Files = s.files.Count()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(st)
}
