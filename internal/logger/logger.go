// Package logger provides configured zerolog loggers for webpics binaries.
package logger

import (
	"io"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

var configureOnce sync.Once

// configure makes zerolog render github.com/pkg/errors stack traces. Errors
// without a stack get one attached when .Stack() is used.
func configure() {
	configureOnce.Do(func() {
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
			if _, ok := err.(stackTracer); !ok {
				err = pkgerrors.WithStack(err)
			}
			return zpkgerrors.MarshalStack(err)
		}
	})
}

// New returns a JSON logger writing to w, tagged with component.
func New(component string, w io.Writer) zerolog.Logger {
	configure()
	return zerolog.New(w).With().
		Str("component", component).
		Timestamp().
		Logger()
}

// Console returns a human-readable logger for terminals. Debug lowers the
// level from info to debug.
func Console(component string, w io.Writer, debug bool) zerolog.Logger {
	configure()
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}).Level(level).With().
		Str("component", component).
		Timestamp().
		Logger()
}
