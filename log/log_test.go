package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	ctx := ContextWithLogger(context.Background(), logger)
	if got := LoggerFromContext(ctx); got != logger {
		t.Fatalf("expected the logger stored in the context")
	}
	LoggerFromContext(ctx).Info("hello", slog.String("component", "test"))
	if !strings.Contains(buf.String(), "component=test") {
		t.Fatalf("expected the message to go to the stored logger, got %q", buf.String())
	}

	if got := LoggerFromContext(context.Background()); got != slog.Default() {
		t.Fatalf("expected the default logger for a context without logger")
	}
	if got := LoggerFromContext(nil); got != slog.Default() {
		t.Fatalf("expected the default logger for a nil context")
	}
}

func TestInitializeDefaultLogger(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	tests := []struct {
		debug bool
		want  bool
	}{
		{false, false},
		{true, true},
	}
	for _, tc := range tests {
		Debug = tc.debug
		InitializeDefaultLogger()
		if got := slog.Default().Enabled(context.Background(), slog.LevelDebug); got != tc.want {
			t.Errorf("debug enabled with Debug=%v: got %v; want %v", tc.debug, got, tc.want)
		}
	}
	Debug = false
}
