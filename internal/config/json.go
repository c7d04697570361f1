package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/showcase/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// stay empty and do not override earlier sources.
type JsonConfig struct {
	DatabaseDSN   string `json:"database_dsn"`
	AvatarBaseURL string `json:"avatar_base_url"`
	LogLevel      string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when neither is given, no JSON is
// loaded. Read or unmarshal errors panic (caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.AvatarBaseURL != "" {
		cfg.AvatarBaseURL = jc.AvatarBaseURL
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
