package config

import (
	"flag"
	"os"
	"time"

	"github.com/hackorsnooze/snooze/internal/flagx"
)

// parseFlags overlays Config with command-line flags:
//
//	-a string   base URL of the API
//	-t int      request timeout in seconds
//	-d string   path of the local session database
//
// Args are filtered down to the flags owned here so the -c/-config flag
// handled by parseJSON does not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the Hack or Snooze API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "path of the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
