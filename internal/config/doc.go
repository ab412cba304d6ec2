// Package config loads, normalizes, and validates vidmatch configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// VIDMATCH_LOG_LEVEL. The Config type centralizes every knob the CLI needs:
// log output, the simulated matching latency, and an optional catalog file
// that replaces the compiled-in sample records.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
