package config

const (
	defaultConfigPath   = "~/.config/vidmatch/config.toml"
	projectConfigName   = "vidmatch.toml"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultLatencyMinMS = 500
	defaultLatencyMaxMS = 1500
	maxLatencyMS        = 60_000
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Latency: Latency{
			Enabled: true,
			MinMS:   defaultLatencyMinMS,
			MaxMS:   defaultLatencyMaxMS,
		},
	}
}
