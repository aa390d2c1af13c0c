// If you are AI: This file implements the serve subcommand: configuration, server startup
// and graceful shutdown.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"

	"flvkit/internal/config"
	"flvkit/internal/logging"
	"flvkit/internal/server"
)

// loadConfig loads path, or the defaults when path is empty, and validates the result.
func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// runServe serves the configured root directory until SIGINT or SIGTERM.
func runServe(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to configuration file (defaults apply when empty)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fail(stderr, "serve", err)
	}
	if err := logging.Setup(stderr, cfg.Log.Level, cfg.Log.Format); err != nil {
		return fail(stderr, "serve", err)
	}

	srv := server.New(cfg)
	shutdownHandler := server.NewShutdownHandler(srv, context.Background())

	errCh := make(chan error, 1)
	go func() {
		logging.LogInfo("server listening", "addr", srv.Addr(), "root", cfg.Server.RootDir)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	waitErr := make(chan error, 1)
	go func() { waitErr <- shutdownHandler.Wait() }()

	select {
	case err := <-errCh:
		logging.LogError("server error", "error", err)
		return exitError
	case err := <-waitErr:
		if err != nil {
			logging.LogError("shutdown error", "error", err)
			return exitError
		}
	}

	logging.LogInfo("server shut down cleanly")
	return exitOK
}
