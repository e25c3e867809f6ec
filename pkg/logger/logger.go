package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide structured logger. It defaults to a JSON handler
// so packages can log before Init runs (and inside tests that never call it).
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init configures the process-wide logger for production use.
func Init() {
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
