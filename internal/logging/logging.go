// Package logging builds the charmbracelet loggers shared by the cribbage commands.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the named level ("debug", "info",
// "warn", "error" or "fatal").
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
	}), nil
}

// Stderr creates a logger on standard error, falling back to info level if
// level cannot be parsed.
func Stderr(level string) *log.Logger {
	logger, err := New(os.Stderr, level, "cribbage")
	if err != nil {
		logger, _ = New(os.Stderr, "info", "cribbage")
		logger.Warn("Unknown log level, using info", "level", level)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
