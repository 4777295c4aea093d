// SPDX-License-Identifier: MIT

// Package logging builds the logr.Logger shared by the pipeline packages.
//
// Libraries accept a logr.Logger and default to logr.Discard(); only the CLI
// decides on a backend. The backend is zap, bridged through zapr, so that
// verbosity follows logr conventions: V(DEBUG) for per-stage details and
// V(TRACE) for per-restart and per-k chatter.
package logging

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V(...).
const (
	DEBUG = 1
	TRACE = 2
)

// Level names accepted by ParseLevel.
const (
	LevelError = "error"
	LevelInfo  = "info"
	LevelDebug = "debug"
	LevelTrace = "trace"
)

// ParseLevel maps a level name to the zap level that enables the matching logr verbosity.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LevelError:
		return zapcore.ErrorLevel, nil
	case LevelInfo, "":
		return zapcore.InfoLevel, nil
	case LevelDebug:
		return zapcore.Level(-DEBUG), nil
	case LevelTrace:
		return zapcore.Level(-TRACE), nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logging: unknown level %q", name)
	}
}

// NewLogger builds a JSON production logger at the named level.
// The returned sync func flushes buffered entries and should be deferred by the caller.
func NewLogger(level string) (logr.Logger, func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	z, err := cfg.Build()
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("logging: failed to build zap logger: %w", err)
	}

	return zapr.NewLogger(z), z.Sync, nil
}

// NewTestLogger returns a human-readable development logger with every verbosity enabled.
func NewTestLogger() logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-TRACE))
	z, err := cfg.Build()
	if err != nil {
		return logr.Discard()
	}

	return zapr.NewLogger(z)
}
