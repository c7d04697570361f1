package config

import (
	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO for environment overrides. Unset variables leave the
// corresponding Config field untouched.
type envConfig struct {
	DatabaseDSN   string `env:"SHOWCASE_DATABASE_DSN"`
	AvatarBaseURL string `env:"SHOWCASE_AVATAR_BASE_URL"`
	LogLevel      string `env:"SHOWCASE_LOG_LEVEL"`
}

// parseEnv overlays Config with values from the environment.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
	if ec.AvatarBaseURL != "" {
		cfg.AvatarBaseURL = ec.AvatarBaseURL
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
