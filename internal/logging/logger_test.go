package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"info", "info", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"uppercase DEBUG", "DEBUG", slog.LevelDebug},
		{"padded", " debug ", slog.LevelDebug},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	for _, s := range []string{"", "info", "DEBUG", "warn", "error"} {
		if !ValidLevel(s) {
			t.Errorf("ValidLevel(%q) = false, want true", s)
		}
	}
	if ValidLevel("trace") {
		t.Error("ValidLevel(\"trace\") = true, want false")
	}
}

func TestNewLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		level      string
		logAtDebug bool
		logAtInfo  bool
	}{
		{"info", false, true},
		{"debug", true, true},
		{"error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.level, &buf)

			logger.Debug("debug message")
			if got := strings.Contains(buf.String(), "debug message"); got != tt.logAtDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.logAtDebug)
			}

			buf.Reset()
			logger.Info("info message")
			if got := strings.Contains(buf.String(), "info message"); got != tt.logAtInfo {
				t.Errorf("info logged = %v, want %v", got, tt.logAtInfo)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard logger should not be enabled at error level")
	}
}
