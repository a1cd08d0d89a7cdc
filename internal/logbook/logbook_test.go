package logbook

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestTailReturnsRecentLinesAndTotal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	for i := 0; i < 5; i++ {
		book.Edit("Glare Sensor 1", "Number of Glare View Vectors", "1", string(rune('2'+i)))
	}
	lines, total := book.Tail(3)
	if total != 5 {
		t.Fatalf("total lines = %d, want 5", total)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{`"4"`, `"5"`, `"6"`} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestEntriesFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", FileName)
	stamp := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	book, err := New(path, WithClock(func() time.Time { return stamp }))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	book.Saved("/tmp/project/model.osm.yaml", 12)
	book.Removed("OS:Glare:Sensor", "Desk\nSensor")
	book.Units("ip")
	book.Failed("save", errors.New("disk full"))
	book.Failed("save", nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read journal: %v", err)
	}
	want := []string{
		"2024-03-01T09:30:00Z SAVE   model.osm.yaml: 12 objects",
		"2024-03-01T09:30:00Z REMOVE Desk Sensor: OS:Glare:Sensor",
		"2024-03-01T09:30:00Z UNITS  display: IP",
		"2024-03-01T09:30:00Z ERROR  save: disk full",
	}
	got := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), data)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.Edit("a", "b", "c", "d")
	if lines, total := book.Tail(5); lines != nil || total != 0 {
		t.Fatalf("expected empty tail from nil logbook")
	}
	if book.Path() != "" {
		t.Fatalf("expected empty path")
	}
}
