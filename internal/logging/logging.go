// Package logging builds the process logger and adapts it to the narrow
// Logger interface the evaluator and advisor accept.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rs/zerolog"
)

// New builds a zerolog logger writing to w. Format "json" emits one JSON
// object per line; anything else uses the human-readable console writer.
func New(w io.Writer, level, format string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Adapter exposes a zerolog logger through calculation.Logger
type Adapter struct {
	Logger zerolog.Logger
}

var _ calculation.Logger = Adapter{}

// NewAdapter wraps l
func NewAdapter(l zerolog.Logger) Adapter {
	return Adapter{Logger: l}
}

func (a Adapter) Debugf(format string, args ...interface{}) { a.Logger.Debug().Msgf(format, args...) }
func (a Adapter) Infof(format string, args ...interface{})  { a.Logger.Info().Msgf(format, args...) }
func (a Adapter) Warnf(format string, args ...interface{})  { a.Logger.Warn().Msgf(format, args...) }
func (a Adapter) Errorf(format string, args ...interface{}) { a.Logger.Error().Msgf(format, args...) }
