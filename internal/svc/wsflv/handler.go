// If you are AI: This file implements the WebSocket handler for FLV file requests.
// Handles GET /ws/{name}[?start=ms] requests and manages the session lifecycle.

package wsflv

import (
	"net/http"
	"strings"

	"flvkit/internal/core/library"
	"flvkit/internal/logging"
	"flvkit/internal/svc/httpflv"

	"github.com/gorilla/websocket"
)

// Handler handles WebSocket-FLV requests.
type Handler struct {
	lib      *library.Library
	root     string
	upgrader websocket.Upgrader
}

// NewHandler creates a new WebSocket-FLV handler serving files under root.
func NewHandler(lib *library.Library, root string) *Handler {
	return &Handler{
		lib:  lib,
		root: root,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Players are commonly served from another origin
				return true
			},
		},
	}
}

// ServeHTTP handles WebSocket upgrade and FLV streaming.
// Endpoint: GET /ws/{name}
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/ws/")
	if name == r.URL.Path {
		// Path doesn't start with /ws/
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	start, _, err := httpflv.ParseStart(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	file, err := library.Resolve(h.root, name)
	if err != nil {
		w.WriteHeader(httpflv.OpenStatus(err))
		return
	}
	handle, err := h.lib.Open(file)
	if err != nil {
		w.WriteHeader(httpflv.OpenStatus(err))
		return
	}
	defer handle.Close()

	initTags, err := handle.InitTags()
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}
	res, err := handle.SeekTime(start)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}
	gate := start
	if res.Found {
		gate = res.Keyframe.Timestamp
	} else {
		// Streaming from the first tag replays the sequence headers anyway.
		initTags = nil
	}

	// Upgrade to WebSocket
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade failed, response already sent
		return
	}
	defer conn.Close()

	sess := NewSession(conn, handle)
	if err := sess.WritePreamble(initTags); err != nil {
		return
	}
	if err := sess.ProcessTags(r.Context(), gate); err != nil {
		// Client disconnected or error occurred
		logging.LogDebug("wsflv session stopped", "path", file, "frames", sess.Frames(), "error", err)
		return
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "end of file")
	_ = conn.WriteMessage(websocket.CloseMessage, msg)
}

// RegisterRoutes registers WebSocket-FLV routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws/", h.ServeHTTP)
}
