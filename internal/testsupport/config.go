package testsupport

import (
	"path/filepath"
	"testing"

	"vidmatch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a unique temp log directory per
// test. Latency is disabled so tests never sleep unless they opt in.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.Dir = filepath.Join(base, "logs")
	cfgVal.Latency.Enabled = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLatency enables the simulated delay with the given bounds in milliseconds.
func WithLatency(minMS, maxMS int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Latency.Enabled = true
		b.cfg.Latency.MinMS = minMS
		b.cfg.Latency.MaxMS = maxMS
	}
}

// WithCatalogFile writes content to catalog.toml under the base directory and
// points the config at it.
func WithCatalogFile(content string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "catalog.toml")
		WriteFile(b.t, path, content)
		b.cfg.Catalog.Path = path
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Logging.Dir)
}
