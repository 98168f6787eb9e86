// Package observability provides production-grade observability features
// for the singleton registry: structured logging, metrics, and tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// Errors are never logged here: the registry propagates every error to its
// caller, and logging records activity only.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds registry context to a logger.
// Returns a new logger with a registry_id field.
func EnrichLogger(logger *slog.Logger, registryID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("registry_id", registryID))
}

// LogHit logs a lookup that found an existing entry.
func LogHit(logger *slog.Logger, key string) {
	if logger == nil {
		return
	}
	logger.Debug("registry hit",
		slog.String("key", key),
	)
}

// LogCreate logs construction and installation of a new entry.
func LogCreate(logger *slog.Logger, key string, durationMs float64, won bool) {
	if logger == nil {
		return
	}
	logger.Debug("entry constructed",
		slog.String("key", key),
		slog.Float64("duration_ms", durationMs),
		slog.Bool("installed", won),
	)
}

// LogPut logs an explicit install or overwrite.
func LogPut(logger *slog.Logger, key string) {
	if logger == nil {
		return
	}
	logger.Debug("entry put",
		slog.String("key", key),
	)
}

// LogRemove logs removal of an entry.
func LogRemove(logger *slog.Logger, key string) {
	if logger == nil {
		return
	}
	logger.Debug("entry removed",
		slog.String("key", key),
	)
}

// LogClear logs a full clear of the registry.
func LogClear(logger *slog.Logger, removed int) {
	if logger == nil {
		return
	}
	logger.Info("registry cleared",
		slog.Int("entries_removed", removed),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
