package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	hexdisplay "go.codycody31.dev/hexdisplay/v1"
)

// Config holds the hexdisplay command settings read from the environment.
type Config struct {
	AppEnv   string
	LogLevel slog.Level

	// Case is the case stdin is rendered in. Set via HEX_CASE.
	Case hexdisplay.Case

	// ChunkSize is the number of input bytes read and rendered per write.
	ChunkSize int
}

// LoadFromEnv reads, defaults and validates Config from environment variables.
func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	caseStr := strings.TrimSpace(os.Getenv("HEX_CASE"))
	if caseStr == "" {
		caseStr = "lower"
	}
	c, err := parseCase(caseStr)
	if err != nil {
		return Config{}, err
	}

	chunkSizeStr := strings.TrimSpace(os.Getenv("HEX_CHUNK_SIZE"))
	if chunkSizeStr == "" {
		chunkSizeStr = "4096"
	}
	chunkSize, err := strconv.Atoi(chunkSizeStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid HEX_CHUNK_SIZE %q: %w", chunkSizeStr, err)
	}
	if chunkSize <= 0 {
		return Config{}, fmt.Errorf("invalid HEX_CHUNK_SIZE %q (must be positive)", chunkSizeStr)
	}

	return Config{
		AppEnv:    appEnv,
		LogLevel:  level,
		Case:      c,
		ChunkSize: chunkSize,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}

func parseCase(s string) (hexdisplay.Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lower":
		return hexdisplay.Lower, nil
	case "upper":
		return hexdisplay.Upper, nil
	default:
		return hexdisplay.Lower, fmt.Errorf("invalid HEX_CASE %q (allowed: lower, upper)", s)
	}
}
