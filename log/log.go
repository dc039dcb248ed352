package log

import (
	"io"
	"log/slog"
	"strings"
)

type Config struct {
	Level     string `mapstructure:"level"`
	AddSource bool   `mapstructure:"add_source"`
	// Pretty switches to the human readable text handler.
	Pretty bool `mapstructure:"pretty"`
}

// SlogLevel parses Level, unknown or empty values fall back to warn.
func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.Level))); err != nil {
		return slog.LevelWarn
	}
	return l
}

// New builds the service logger writing to w.
func New(c *Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     c.SlogLevel(),
		AddSource: c.AddSource,
	}
	if c.Pretty {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
