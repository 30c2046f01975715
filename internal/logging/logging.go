// Package logging provides slog setup and run identification for the
// elfinspect command.
package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Error definitions
var (
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// GenerateRunID generates a new ULID for run identification. ULIDs sort
// lexicographically by creation time, which keeps per-file runs ordered
// when logs are aggregated.
func GenerateRunID() string {
	return ulid.Make().String()
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, name)
	}
}

// Setup installs a text handler on stderr as the default logger and
// returns a logger carrying the run ID. It must be called once during
// startup, before any logging occurs.
func Setup(levelName, runID string) (*slog.Logger, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With(slog.String("run_id", runID))
	slog.SetDefault(logger)
	return logger, nil
}
