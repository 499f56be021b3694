package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for name, want := range tests {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("quote computed", "ready", true)
	logger.Warn("validation failed", "field", "upiId")

	out := buf.String()
	if strings.Contains(out, "quote computed") {
		t.Errorf("info record should be filtered: %q", out)
	}
	if !strings.Contains(out, "validation failed") || !strings.Contains(out, "field=upiId") {
		t.Errorf("warn record missing: %q", out)
	}
}
