package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. Text output keeps
// container logs grep-friendly.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
