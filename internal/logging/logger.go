package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"

	"go.codycody31.dev/hexdisplay/v1/internal/config"
)

// New builds the process logger. Output goes to w, which is stderr in the
// command so that stdout carries only hex text.
func New(w io.Writer, cfg config.Config, version string, appName string) *slog.Logger {
	if cfg.AppEnv == "dev" {
		h := tint.NewHandler(w, &tint.Options{
			Level:      cfg.LogLevel,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		})
		return slog.New(h).With("app", appName)
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})
	return slog.New(h).With(
		"app", appName,
		"version", version,
		"env", cfg.AppEnv,
	)
}
