// Command vidmatch extracts the video identifier from a pasted YouTube URL
// and reports whether it belongs to a known asset in the catalog.
//
// Subcommands cover a single match, identifier extraction, a catalog listing,
// an interactive prompt that matches one URL per line, and configuration
// helpers. Logs go to stderr so stdout stays clean for --json output.
package main
