package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"", DefaultLevel, false},
		{"debug", log.DebugLevel, false},
		{"INFO", log.InfoLevel, false},
		{" warn ", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"chatty", DefaultLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "error")

	logger.Warn("quiet")
	if buf.Len() != 0 {
		t.Errorf("warn message written at error level: %q", buf.String())
	}

	logger.Error("loud", "path", "repo.ymp")
	out := buf.String()
	if !strings.Contains(out, "loud") {
		t.Errorf("output %q missing error message", out)
	}
	if !strings.Contains(out, "repo.ymp") {
		t.Errorf("output %q missing key/value field", out)
	}
}

func TestNew_UnknownLevelFallsBack(t *testing.T) {
	logger := New(&bytes.Buffer{}, "chatty")
	if got := logger.GetLevel(); got != DefaultLevel {
		t.Errorf("GetLevel() = %v, want %v", got, DefaultLevel)
	}
}
