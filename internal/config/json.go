package config

import (
	"encoding/json"
	"os"

	"github.com/hackorsnooze/snooze/internal/flagx"
	"github.com/hackorsnooze/snooze/internal/timex"
)

// jsonConfig is the DTO for the optional JSON config file. timex.Duration
// lets the timeout be written as "10s" or as integer nanoseconds.
type jsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionDB      string         `json:"session_db"`
}

// parseJSON overlays Config with values from the file named by -c/-config.
// No file flag means no JSON stage. Only fields present in the file
// override the defaults. Read or unmarshal failures panic; there is no
// sane way to continue with a half-read config.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionDB != "" {
		cfg.SessionDB = jc.SessionDB
	}
}
