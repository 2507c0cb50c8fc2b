package utils

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Logger provides leveled, colored logging throughout the application.
// It wraps a slog.Logger with a tint handler behind the printf-style
// API the rest of the code uses.
type Logger struct {
	sl *slog.Logger
}

// NewLogger creates a Logger writing to stderr. Set LOG_LEVEL=debug
// to see per-row parse and dedup chatter.
func NewLogger() *Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "2006-01-02 15:04:05",
	})
	return &Logger{sl: slog.New(handler)}
}

func (l *Logger) Info(format string, args ...any) {
	l.sl.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.sl.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.sl.Error(fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any) {
	l.sl.Debug(fmt.Sprintf(format, args...))
}
