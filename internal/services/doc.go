// Package services defines shared utilities consumed by the matching flow and
// the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp correlation identifiers and operation names
//     for logging.
//   - Structured error markers plus the Wrap helper so callers can classify
//     failures (configuration vs validation vs cancellation) without string
//     matching.
package services
