package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/willfong/flightdb/internal/database"
	"github.com/willfong/flightdb/internal/models"
)

func flightRecord(id int64, delay any) database.Record {
	return database.Record{
		"ID":                  id,
		"ORIGIN_AIRPORT":      "SEA",
		"DESTINATION_AIRPORT": "ANC",
		"AIRLINE":             "Alaska Airlines Inc.",
		"DELAY":               delay,
	}
}

func TestPrintResults(t *testing.T) {
	u := Plain()

	t.Run("DelaySuffix", func(t *testing.T) {
		var buf bytes.Buffer
		err := u.PrintResults(&buf, []database.Record{
			flightRecord(1, nil),
			flightRecord(2, 45.0),
			flightRecord(3, -4.0),
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		want := "Got 3 results.\n" +
			"1. SEA -> ANC by Alaska Airlines Inc.\n" +
			"2. SEA -> ANC by Alaska Airlines Inc., Delay: 45 Minutes\n" +
			"3. SEA -> ANC by Alaska Airlines Inc.\n"
		if buf.String() != want {
			t.Errorf("Expected:\n%s\nGot:\n%s", want, buf.String())
		}
	})

	t.Run("Empty", func(t *testing.T) {
		var buf bytes.Buffer
		if err := u.PrintResults(&buf, []database.Record{}); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if buf.String() != "Got 0 results.\n" {
			t.Errorf("Expected count line only, got %q", buf.String())
		}
	})

	t.Run("MalformedRowAbortsBatch", func(t *testing.T) {
		bad := flightRecord(2, 10.0)
		delete(bad, "DESTINATION_AIRPORT")

		var buf bytes.Buffer
		err := u.PrintResults(&buf, []database.Record{flightRecord(1, nil), bad, flightRecord(3, nil)})
		if !errors.Is(err, models.ErrMissingColumn) {
			t.Fatalf("Expected ErrMissingColumn, got %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "1. SEA -> ANC") {
			t.Errorf("Expected first row to print, got %q", out)
		}
		if !strings.Contains(out, "[FAILED] Error showing results") {
			t.Errorf("Expected error line, got %q", out)
		}
		if strings.Contains(out, "3. SEA") {
			t.Errorf("Expected batch to stop at the bad row, got %q", out)
		}
	})
}

func TestPlainRendering(t *testing.T) {
	u := Plain()

	if got := u.MenuItem(2, "Show flights by date"); got != "2. Show flights by date" {
		t.Errorf("Unexpected menu item %q", got)
	}
	if got := u.Header("flightdb"); got != "=== flightdb ===" {
		t.Errorf("Unexpected header %q", got)
	}
	if got := u.Gauge("Success rate", 0.75); !strings.Contains(got, "75%") {
		t.Errorf("Expected percentage in gauge, got %q", got)
	}
	if got := u.Gauge("Success rate", 3); !strings.Contains(got, "100%") {
		t.Errorf("Expected clamped gauge, got %q", got)
	}

	box := u.SummaryBox("Session", []KV{{Key: "Queries", Value: "4"}})
	if !strings.Contains(box, "Queries:") || !strings.Contains(box, "4") {
		t.Errorf("Unexpected summary box %q", box)
	}
}

func TestSpinnerPlain(t *testing.T) {
	var buf bytes.Buffer
	s := Plain().NewSpinnerTo(&buf, "Connecting")
	s.Start()
	s.Success("connected")
	s.Success("twice")

	if buf.String() != "Connecting... connected\n" {
		t.Errorf("Unexpected spinner output %q", buf.String())
	}
}

func TestStatusLines(t *testing.T) {
	plain := Plain()
	tests := []struct {
		got  string
		want string
	}{
		{plain.Success("connected"), "[OK] connected"},
		{plain.Error("no store"), "[FAILED] no store"},
		{plain.Warning("Try again..."), "[WARN] Try again..."},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, tt.got)
		}
	}

	styled := &UI{IsTTY: true}
	if got := styled.Success("connected"); !strings.Contains(got, SymbolSuccess) || !strings.Contains(got, "connected") {
		t.Errorf("Expected check mark and message, got %q", got)
	}
	if got := styled.Error("no store"); !strings.Contains(got, SymbolError) || strings.Contains(got, "[FAILED]") {
		t.Errorf("Expected styled error, got %q", got)
	}
}
