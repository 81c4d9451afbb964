package observability

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger configures zerolog with service metadata, writing to w.
func NewLogger(service, level string, pretty bool, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var writer zerolog.Logger
	if pretty {
		console := zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
		writer = zerolog.New(console)
	} else {
		writer = zerolog.New(w)
	}

	return writer.Level(lvl).With().Timestamp().Str("service", service).Logger()
}
