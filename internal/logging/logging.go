// Package logging builds the zerolog loggers used by the tableview command.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes the logger to build.
type Config struct {
	// Level is a zerolog level name. Unknown levels fall back to info.
	Level string
	// Format is FormatConsole or FormatJSON. Anything else is treated as console.
	Format string
	// NoColor disables ANSI colors in console output.
	NoColor bool
}

// New creates a logger writing to w.
func New(w io.Writer, cfg Config) zerolog.Logger {
	var out io.Writer = w
	if !strings.EqualFold(cfg.Format, FormatJSON) {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}
	}

	return zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel parses level and defaults to zerolog.InfoLevel on error.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}

	return lvl
}

// ValidLevel reports whether level names a zerolog level.
func ValidLevel(level string) bool {
	_, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	return err == nil && level != ""
}

// ValidFormat reports whether format is a supported output format.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatConsole, FormatJSON:
		return true
	default:
		return false
	}
}

// Component returns a child logger tagged with the component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
