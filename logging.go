package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger builds the console logger used for diagnostics. Warnings surface
// by default; --verbose lowers the threshold to debug. Log output never
// shares a stream with rendered documentation.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}
