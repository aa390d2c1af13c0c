// If you are AI: This file provides the process-wide structured logger.
// Call sites use the LogX helpers; the handler can be swapped at startup or in tests.

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger   *slog.Logger
	loggerMu sync.RWMutex
)

// init installs the default text logger on stderr at info level.
func init() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// ParseLevel converts a config level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

// Setup replaces the logger with one writing to w at the given level and format ("text" or "json").
func Setup(w io.Writer, level, format string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	SetLogger(slog.New(h))
	return nil
}

// SetLogger installs l as the process logger.
func SetLogger(l *slog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// Logger returns the current process logger.
func Logger() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// LogDebug logs at debug level.
func LogDebug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// LogInfo logs at info level.
func LogInfo(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// LogWarn logs at warn level.
func LogWarn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// LogError logs at error level.
func LogError(msg string, args ...any) {
	Logger().Error(msg, args...)
}
