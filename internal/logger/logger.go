// Package logger builds the zerolog loggers used across the service.
//
// Every line is a single JSON object with a "ts" timestamp rendered in the
// configured timezone, so logs from the API, the migration runner and the
// tracing bootstrap share one shape.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimestampFieldName = "ts"
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.MessageFieldName = "msg"
}

// New returns a JSON logger writing to w with timestamps in loc.
func New(w io.Writer, loc *time.Location) zerolog.Logger {
	if loc == nil {
		loc = time.UTC
	}
	zerolog.TimestampFunc = func() time.Time { return time.Now().In(loc) }
	return zerolog.New(w).With().Timestamp().Logger()
}

// Default returns a logger on stdout using loc.
func Default(loc *time.Location) zerolog.Logger {
	return New(os.Stdout, loc)
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
