package logger

import (
	"io"
	"log/slog"
)

// Init initializes the global slog logger. Every record carries the service
// name so console and runner logs can share one sink.
func Init(writer io.Writer, level slog.Level, service string) {
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}
			if a.Key == slog.LevelKey {
				a.Key = "level"
			}
			if a.Key == slog.MessageKey {
				a.Key = "message"
			}
			return a
		},
	})
	logger := slog.New(handler).With("service", service)
	slog.SetDefault(logger)
}
