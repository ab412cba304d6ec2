package assets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"vidmatch/internal/textutil"
)

type catalogFile struct {
	Records []Record `toml:"record"`
}

// LoadCatalog reads a TOML catalog file made of [[record]] tables.
//
// Text fields are normalized. A record without a source URL is rejected; a
// record whose URL carries no identifier is kept and will never match.
func LoadCatalog(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("catalog path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes catalog TOML from memory.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Records) == 0 {
		return nil, errors.New("catalog contains no records")
	}

	seen := make(map[string]struct{}, len(file.Records))
	records := make([]Record, 0, len(file.Records))
	for i, rec := range file.Records {
		rec.AssetID = strings.TrimSpace(rec.AssetID)
		rec.Title = textutil.NormalizeText(rec.Title)
		rec.SourceURL = strings.TrimSpace(rec.SourceURL)
		rec.RegistryCode = textutil.NormalizeText(rec.RegistryCode)
		if rec.SourceURL == "" {
			return nil, fmt.Errorf("record %d: source_url must be set", i+1)
		}
		if rec.AssetID == "" {
			rec.AssetID = fmt.Sprintf("asset-%03d", i+1)
		}
		if _, dup := seen[rec.AssetID]; dup {
			return nil, fmt.Errorf("record %d: duplicate asset_id %q", i+1, rec.AssetID)
		}
		seen[rec.AssetID] = struct{}{}
		records = append(records, rec)
	}
	return NewCatalog(records), nil
}
