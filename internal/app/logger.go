package app

import (
	"io"
	"log/slog"
)

// newLogger builds the App logger writing to w. Unknown levels fall back
// to info and any format other than "json" selects the text handler. The
// global logger is left untouched.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
