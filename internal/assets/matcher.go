package assets

import "vidmatch/internal/videoid"

// Matcher resolves canonical identifiers to catalog records.
// It is safe for concurrent use; nothing it touches is ever written.
type Matcher struct {
	catalog   *Catalog
	extractor videoid.Extractor
}

// NewMatcher builds a matcher over catalog. A nil extractor selects
// videoid.Default; a nil catalog matches nothing.
func NewMatcher(catalog *Catalog, extractor videoid.Extractor) *Matcher {
	if catalog == nil {
		catalog = NewCatalog(nil)
	}
	if extractor == nil {
		extractor = videoid.Default
	}
	return &Matcher{catalog: catalog, extractor: extractor}
}

// Lookup returns the first record, in catalog order, whose source URL yields
// id. The boolean is false when no record matches.
func (m *Matcher) Lookup(id string) (Record, bool) {
	if id == "" {
		return Record{}, false
	}
	for _, rec := range m.catalog.records {
		recID, ok := m.extractor.Extract(rec.SourceURL)
		if !ok {
			continue
		}
		if recID == id {
			return rec, true
		}
	}
	return Record{}, false
}

// Unmatchable lists records whose source URL yields no identifier.
func Unmatchable(catalog *Catalog, extractor videoid.Extractor) []Record {
	if extractor == nil {
		extractor = videoid.Default
	}
	var out []Record
	for _, rec := range catalog.Records() {
		if _, ok := extractor.Extract(rec.SourceURL); !ok {
			out = append(out, rec)
		}
	}
	return out
}
