package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. Text output to stdout; handlers and services
// attach request_id and actor fields per call site.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
