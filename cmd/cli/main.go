package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/hackorsnooze/snooze/internal/cli"
	"github.com/hackorsnooze/snooze/internal/config"
	"github.com/hackorsnooze/snooze/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
