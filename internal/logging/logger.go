// ABOUTME: Operational logger construction
// ABOUTME: charmbracelet/log writer with a level taken from config
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger writing to w at the named level (debug, info, warn, error).
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "duckie",
		ReportTimestamp: false,
	})

	if level == "" {
		level = "warn"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(lvl)

	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
