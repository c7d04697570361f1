// Package config loads runtime settings for the showcase CLI.
package config

// Config holds runtime settings for the showcase demo.
//
// Fields:
//   - DatabaseDSN: sqlite DSN of the local record store.
//   - AvatarBaseURL: base URL used to synthesize avatar references on register.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	DatabaseDSN   string
	AvatarBaseURL string
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "showcase.db"
	c.AvatarBaseURL = "https://ui-avatars.com/api/"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
