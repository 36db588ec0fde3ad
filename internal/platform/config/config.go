package config

import (
	"log/slog"
	"os"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("REGGATE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	level := slog.LevelInfo
	switch os.Getenv("REGGATE_LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	shutdown := 10 * time.Second
	if raw := os.Getenv("REGGATE_SHUTDOWN_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			shutdown = parsed
		}
	}

	return Server{
		Addr:            addr,
		LogLevel:        level,
		ShutdownTimeout: shutdown,
	}
}
