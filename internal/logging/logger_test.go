package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter("warn", &buf)
	if err != nil {
		t.Fatalf("NewWithWriter failed: %v", err)
	}

	log.Info("hidden message")
	log.Error("query failed", "query", "flight_by_id")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("Expected info to be filtered at warn level, got %q", out)
	}
	if !strings.Contains(out, "query failed") || !strings.Contains(out, "flight_by_id") {
		t.Errorf("Expected error line with fields, got %q", out)
	}
	if !strings.Contains(out, "ERROR") {
		t.Errorf("Expected capitalized level, got %q", out)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter("debug", &buf)
	if err != nil {
		t.Fatalf("NewWithWriter failed: %v", err)
	}

	log.With("component", "gateway").Debug("opened")
	if !strings.Contains(buf.String(), "gateway") {
		t.Errorf("Expected context field in output, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "INFO", "warn", "error"} {
		if _, err := ParseLevel(lvl); err != nil {
			t.Errorf("Expected %s to parse, got %v", lvl, err)
		}
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Error("Expected error for unknown level")
	}
}
