// Package logger configures zerolog for the gradesheet CLI.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds a logger writing to w.
//   - level: log level string (trace, debug, info, warn, error)
//   - format: "json" for machine-readable output, "pretty" for console output
//
// Unknown levels fall back to info.
func Setup(w io.Writer, level, format string) zerolog.Logger {
	if format == "pretty" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
