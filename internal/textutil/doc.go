// Package textutil provides small text helpers shared by the catalog loader
// and the CLI renderers.
//
// Catalog text coming from user-edited files is normalized to Unicode NFC with
// surrounding whitespace removed and internal whitespace runs collapsed, so a
// title typed on one system renders identically on another.
package textutil
