package assets

// Record is a known video asset.
type Record struct {
	AssetID      string `json:"asset_id" toml:"asset_id"`
	Title        string `json:"title" toml:"title"`
	SourceURL    string `json:"source_url" toml:"source_url"`
	RegistryCode string `json:"registry_code" toml:"registry_code"`
}

// Catalog is an immutable ordered list of records.
type Catalog struct {
	records []Record
}

// NewCatalog copies records into a new Catalog. Later changes to the input
// slice do not affect the catalog.
func NewCatalog(records []Record) *Catalog {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Catalog{records: cp}
}

// Records returns a copy of the catalog contents in catalog order.
func (c *Catalog) Records() []Record {
	if c == nil {
		return nil
	}
	cp := make([]Record, len(c.records))
	copy(cp, c.records)
	return cp
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// DefaultCatalog returns the compiled-in sample records.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Record{
		{
			AssetID:      "asset-001",
			Title:        "Official Music Video - Song A",
			SourceURL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			RegistryCode: "CID-ABC-123",
		},
		{
			AssetID:      "asset-002",
			Title:        "Documentary Clip - Nature Wonders",
			SourceURL:    "https://www.youtube.com/watch?v=k_okcNVzIAo",
			RegistryCode: "CID-DEF-456",
		},
		{
			AssetID:      "asset-003",
			Title:        "Short Film - The Urban Explorer",
			SourceURL:    "https://www.youtube.com/watch?v=LXb3EKWsInQ",
			RegistryCode: "CID-GHI-789",
		},
		{
			AssetID:      "asset-004",
			Title:        "Product Review - Gadget X",
			SourceURL:    "https://www.youtube.com/watch?v=C0DPdy98e4c",
			RegistryCode: "CID-JKL-012",
		},
	})
}
