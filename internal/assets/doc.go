// Package assets holds the known video records and the matcher that resolves a
// canonical video identifier to the record that owns it.
//
// A Catalog is an ordered, read-only list of records constructed once at
// start-up, either from the compiled-in sample set or from a TOML catalog
// file named in the configuration. The Matcher performs a linear scan in
// catalog order and returns the first record whose source URL yields the
// queried identifier; "no match" is an ordinary result, not an error.
//
// Records whose source URL carries no recognisable identifier are kept but can
// never match. Unmatchable reports them so callers can warn at start-up.
package assets
