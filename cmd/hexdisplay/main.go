package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.codycody31.dev/hexdisplay/v1/internal/app"
	"go.codycody31.dev/hexdisplay/v1/internal/config"
	"go.codycody31.dev/hexdisplay/v1/internal/logging"
)

var version = "dev"
var appName = "hexdisplay"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, cfg, version, appName)
	slog.SetDefault(logger)

	slog.Debug("starting",
		"log_level", cfg.LogLevel.String(),
		"case", cfg.Case.String(),
		"chunk_size", cfg.ChunkSize,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}
