package internal

import (
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		raw   string
		level slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{" INFO ", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", slog.LevelInfo, false},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		level, ok := ParseLogLevel(tt.raw)
		if level != tt.level || ok != tt.ok {
			t.Errorf("ParseLogLevel(%q) = %v, %v; want %v, %v", tt.raw, level, ok, tt.level, tt.ok)
		}
	}
}

func TestSetRawLogLevel(t *testing.T) {
	defer SetRawLogLevel("info")

	SetRawLogLevel("error")
	if GetLogger().Enabled(t.Context(), slog.LevelWarn) {
		t.Error("warn enabled at error level")
	}
	if !GetInternalLogger().Enabled(t.Context(), slog.LevelError) {
		t.Error("internal logger not following level")
	}
}
