// Package config loads runtime configuration for the CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Hack or Snooze API
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//
// # JSON schema
//
// Durations can be strings like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://hack-or-snooze-v3.herokuapp.com",
//	  "request_timeout": "10s",
//	  "session_db": "snooze.db"
//	}
package config
