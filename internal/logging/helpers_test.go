package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersNilLoggerNoPanic(t *testing.T) {
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "write failed", errors.New("disk full"), FieldPath, "/tmp/x")

	out := buf.String()
	if !strings.Contains(out, "error=\"disk full\"") || !strings.Contains(out, "path=/tmp/x") {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestFromContextFallsBack(t *testing.T) {
	fallback := slog.Default()
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback logger")
	}

	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithContext(context.Background(), scoped)
	if got := FromContext(ctx, fallback); got != scoped {
		t.Fatalf("expected scoped logger from context")
	}
	if got := WithContext(ctx, nil); got != ctx {
		t.Fatalf("expected nil logger to leave context untouched")
	}
}
