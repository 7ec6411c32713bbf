// SPDX-License-Identifier: MIT

// Package logger builds the zerolog.Logger shared by every pipeline stage.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config selects level, encoding and destination.
type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // console or json
	Output string // stdout, stderr or a file path
}

// New returns a logger for cfg and a close function for file outputs.
// Empty fields fall back to info, console and stderr.
func New(cfg Config) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }

	if cfg.Level == "" {
		cfg.Level = "info"
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("invalid log level: %w", err)
	}

	var out io.Writer
	closer := noop
	switch cfg.Output {
	case "", "stderr":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("could not open log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	return NewWriter(out, cfg.Format, level), closer, nil
}

// NewWriter builds a logger on w. format "json" writes JSON lines; anything
// else uses the human-readable console writer without colour.
func NewWriter(w io.Writer, format string, level zerolog.Level) zerolog.Logger {
	if format != "json" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
