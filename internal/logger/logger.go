package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a configured zerolog.Logger. In development it uses a
// human-friendly console writer; otherwise JSON at info level. verbose
// lowers the level to debug, which includes per-call SDK tracing.
func New(appEnv string, verbose bool) zerolog.Logger {
	env := strings.ToLower(strings.TrimSpace(appEnv))
	isDev := env == "development" || env == "dev"

	level := zerolog.InfoLevel
	if verbose || isDev {
		level = zerolog.DebugLevel
	}

	if isDev {
		cw := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
			w.TimeFormat = "2006-01-02 15:04:05"
		})
		return zerolog.New(cw).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// Nop returns a disabled logger, useful for tests and as the SDK default.
func Nop() zerolog.Logger {
	return zerolog.New(io.Discard)
}
