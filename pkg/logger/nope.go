package logger

import "log/slog"

// Discard returns a logger that drops every record. Components fall back to it
// when no logger is injected.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
