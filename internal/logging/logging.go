// Package logging builds the charmbracelet/log logger used by a session.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Prefix is printed in front of every log line.
const Prefix = "todo"

// Options holds configuration for a session logger.
type Options struct {
	// Debug starts the logger at debug level instead of info.
	Debug bool
}

// New creates a text logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:     levelFor(opts.Debug),
		Formatter: log.TextFormatter,
		Prefix:    Prefix,
	})
}

// SetDebug switches an existing logger between info and debug level.
func SetDebug(logger *log.Logger, debug bool) {
	logger.SetLevel(levelFor(debug))
}

// WithSession returns a child logger tagged with a fresh session id,
// and the id itself.
func WithSession(logger *log.Logger) (*log.Logger, string) {
	id := uuid.NewString()
	return logger.With("session", id), id
}

func levelFor(debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	return log.InfoLevel
}
