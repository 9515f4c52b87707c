package logger

import (
	"log/slog"
	"os"
)

// Log is never nil; Init replaces the default handler with the production one.
var Log = slog.New(slog.NewTextHandler(os.Stdout, nil))

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
