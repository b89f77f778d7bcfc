package logging

import (
	"log/slog"
	"testing"

	"github.com/catgar/catgar/internal/infrastructure/config"
)

// TestParseLevel verifies level string parsing and the info fallback.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestNew verifies logger construction across formats.
func TestNew(t *testing.T) {
	formats := []string{"text", "json", ""}
	for _, format := range formats {
		log := New(config.LoggingConfig{Level: "debug", Format: format, Output: "stderr"}, "test")
		if log == nil || log.Logger == nil {
			t.Fatalf("New(format=%q) returned nil logger", format)
		}
	}
}

// TestWith verifies attribute chaining returns a usable logger.
func TestWith(t *testing.T) {
	log := Default().With("component", "test")
	if log == nil || log.Logger == nil {
		t.Fatal("With() returned nil logger")
	}
	log.Info("attribute chaining works")
}
