// If you are AI: This file handles graceful shutdown orchestration for the server process.

package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"flvkit/internal/logging"
)

// ShutdownHandler manages graceful shutdown on SIGINT or SIGTERM.
type ShutdownHandler struct {
	server  *Server
	ctx     context.Context
	cancel  context.CancelFunc
	signals chan os.Signal
}

// NewShutdownHandler creates a handler that listens for termination signals.
// The provided context is used as the parent for shutdown operations.
func NewShutdownHandler(server *Server, ctx context.Context) *ShutdownHandler {
	shutdownCtx, cancel := context.WithCancel(ctx)
	return &ShutdownHandler{
		server:  server,
		ctx:     shutdownCtx,
		cancel:  cancel,
		signals: make(chan os.Signal, 1),
	}
}

// Wait blocks until a termination signal is received or the parent context ends,
// then shuts the server down within its configured timeout.
// This method should be called from the main goroutine.
func (h *ShutdownHandler) Wait() error {
	signal.Notify(h.signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(h.signals)

	select {
	case sig := <-h.signals:
		logging.LogInfo("shutdown signal received", "signal", sig.String())
	case <-h.ctx.Done():
		logging.LogInfo("shutdown requested")
	}

	// Cancel context to signal shutdown
	h.cancel()

	return h.server.ShutdownWithTimeout()
}

// Context returns the shutdown context that is cancelled when shutdown begins.
func (h *ShutdownHandler) Context() context.Context {
	return h.ctx
}
