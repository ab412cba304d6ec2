// Package logging assembles structured slog loggers and formatting helpers used
// across vidmatch.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so the matching flow can tag log
// lines with request and session identifiers. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Logs are written to stderr by default so command output on stdout stays
// machine-readable.
package logging
