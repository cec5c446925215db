// Package log sets up the default structured logger and carries loggers
// through contexts.
package log

import (
	"context"
	"log/slog"
	"os"
)

// Debug switches the default logger to debug level and makes the fetchers
// keep a copy of every page they load.
var Debug bool

type loggerCtxKey struct{}

func InitializeDefaultLogger() {
	level := slog.LevelInfo
	if Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
