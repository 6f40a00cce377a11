package journal

import (
	"testing"
	"time"
)

func TestClassifyLineRecognizesDateHeaders(t *testing.T) {
	line := ClassifyLine("2024-01-05")
	if line.Kind != LineDate {
		t.Fatalf("Kind = %v, want LineDate", line.Kind)
	}
	want := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.Local)
	if !line.Date.Equal(want) {
		t.Fatalf("Date = %s, want %s", line.Date, want)
	}
}

func TestClassifyLineRecognizesMarkers(t *testing.T) {
	start := ClassifyLine("start 09:15")
	if start.Kind != LineMarker || start.Action != ActionStart {
		t.Fatalf("classified %#v, want start marker", start)
	}
	if start.Hour != 9 || start.Minute != 15 {
		t.Fatalf("clock = %02d:%02d, want 09:15", start.Hour, start.Minute)
	}

	end := ClassifyLine("  end 17:00  ")
	if end.Kind != LineMarker || end.Action != ActionEnd {
		t.Fatalf("classified %#v, want end marker", end)
	}
	if end.Hour != 17 || end.Minute != 0 {
		t.Fatalf("clock = %02d:%02d, want 17:00", end.Hour, end.Minute)
	}
}

func TestClassifyLineIgnoresEverythingElse(t *testing.T) {
	ignored := []string{
		"",
		"   ",
		"# paid through November",
		"meeting with client",
		"start",
		"begin 09:00",
		"start 9am",
		"start 09:00:00",
		"end 25:00",
		"2024-01-05 extra",
	}
	for _, text := range ignored {
		if line := ClassifyLine(text); line.Kind != LineIgnored {
			t.Fatalf("ClassifyLine(%q).Kind = %v, want LineIgnored", text, line.Kind)
		}
	}
}

func TestClassifyLineDateWinsOverMarkerShape(t *testing.T) {
	// A header can never double as a marker; the date pattern is tried first.
	if line := ClassifyLine("2024-01-05"); line.Kind != LineDate {
		t.Fatalf("Kind = %v, want LineDate", line.Kind)
	}
}
