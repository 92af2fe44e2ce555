// Package logging builds the leveled logger shared by the CLI and pipeline.
package logging

import (
	"io"

	"github.com/kataras/golog"
)

// Prefix is prepended to every log line
const Prefix = "[resume] "

// New returns a logger writing to out at info level, or debug level when debug is set.
func New(out io.Writer, debug bool) *golog.Logger {
	logger := golog.New()
	logger.SetOutput(out)
	logger.SetPrefix(Prefix)
	logger.SetLevel(Level(debug))
	return logger
}

// Level maps the debug flag to a golog level name
func Level(debug bool) string {
	if debug {
		return "debug"
	}
	return "info"
}

// Discard returns a logger that drops everything. Useful for tests.
func Discard() *golog.Logger {
	logger := golog.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel("disable")
	return logger
}

// OrDiscard returns logger, or a discarding logger when it is nil
func OrDiscard(logger *golog.Logger) *golog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
