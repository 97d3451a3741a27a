// Package logger holds the process-wide zerolog logger shared by the stores,
// services and HTTP layer.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Format selects how log lines are rendered
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text" // zerolog console writer
)

// Config selects the level, format and destination of the process logger
type Config struct {
	Level  string // zerolog level name; empty or unknown means info
	Format Format
	Output io.Writer // defaults to os.Stdout
}

var base zerolog.Logger

// Configure replaces the process logger. Every line carries a timestamp and
// service=registrar.
func Configure(cfg Config) {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Format == FormatText {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	base = zerolog.New(out).With().Timestamp().Str("service", "registrar").Logger()
	log.Logger = base

	if err != nil {
		base.Warn().Str("requested", cfg.Level).Msg("Unknown log level, falling back to info")
	}
}

// Get returns the process logger
func Get() zerolog.Logger {
	return base
}

// Component returns a child logger tagged with component=name
func Component(name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}

func Debug() *zerolog.Event { return base.Debug() }
func Info() *zerolog.Event  { return base.Info() }
func Warn() *zerolog.Event  { return base.Warn() }
func Error() *zerolog.Event { return base.Error() }

func init() {
	Configure(Config{Format: FormatText})
}
