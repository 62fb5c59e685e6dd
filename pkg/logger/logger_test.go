package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggerEmitsServiceAndFields(t *testing.T) {
	t.Setenv("STOCKROOM_LOG_FORMAT", "json")

	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	ctx := logg.WithField(context.Background(), "item_id", 7)
	ctx = logg.WithOperation(ctx, "add item")
	logg.Info(ctx, "item created")

	out := buf.String()
	for _, want := range []string{`"service":"test"`, `"item_id":7`, `"operation":"add item"`, `"message":"item created"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log output to contain %s, got %s", want, out)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	t.Setenv("STOCKROOM_LOG_FORMAT", "json")

	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Level: zerolog.WarnLevel, Output: &buf})

	logg.Info(context.Background(), "hidden")
	logg.Warn(context.Background(), "visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered, got %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing, got %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("debug"); got != zerolog.DebugLevel {
		t.Fatalf("expected debug, got %v", got)
	}
	if got := ParseLevel(""); got != zerolog.InfoLevel {
		t.Fatalf("expected info fallback, got %v", got)
	}
	if got := ParseLevel("nonsense"); got != zerolog.InfoLevel {
		t.Fatalf("expected info fallback, got %v", got)
	}
}
