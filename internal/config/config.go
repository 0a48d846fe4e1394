package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - BaseURL: root of the Hack or Snooze HTTP API.
//   - RequestTimeout: client-side bound on each individual request.
//   - SessionDB: path of the sqlite file that keeps the resume token.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SessionDB      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://hack-or-snooze-v3.herokuapp.com"
	c.RequestTimeout = 10 * time.Second
	c.SessionDB = "snooze.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
