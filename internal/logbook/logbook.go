// Package logbook keeps the human-readable edit journal: one line per
// committed edit, removal and save. The TUI shows its tail next to the
// inspector; the structured zap log remains the place for diagnostics.
package logbook

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileName is the journal created under .openstudio/logs.
const FileName = "journal.log"

// Kind classifies a journal entry.
type Kind string

const (
	KindEdit   Kind = "EDIT"
	KindRemove Kind = "REMOVE"
	KindSave   Kind = "SAVE"
	KindUnits  Kind = "UNITS"
	KindError  Kind = "ERROR"
)

// Option customizes a Logbook.
type Option func(*Logbook)

// WithClock overrides the entry timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Logbook) {
		if now != nil {
			l.now = now
		}
	}
}

// Logbook appends entries to a text file.
type Logbook struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// New creates a logbook that writes to the provided path.
func New(path string, opts ...Option) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logbook: ensure dir: %w", err)
	}
	l := &Logbook{path: path, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l, nil
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Append writes a single entry. Write failures are dropped; the journal
// never blocks editing.
func (l *Logbook) Append(kind Kind, subject, message string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	line := fmt.Sprintf("%s %-6s %s: %s\n",
		l.now().UTC().Format(time.RFC3339),
		string(kind),
		oneLine(subject),
		oneLine(message),
	)
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = file.WriteString(line)
}

// Edit records a committed field change on the named object.
func (l *Logbook) Edit(object, field, from, to string) {
	l.Append(KindEdit, object, fmt.Sprintf("%s %q -> %q", field, from, to))
}

// Removed records an object removal.
func (l *Logbook) Removed(objectType, name string) {
	l.Append(KindRemove, name, objectType)
}

// Saved records a model save.
func (l *Logbook) Saved(path string, objects int) {
	l.Append(KindSave, filepath.Base(path), fmt.Sprintf("%d objects", objects))
}

// Units records a display unit switch.
func (l *Logbook) Units(units string) {
	l.Append(KindUnits, "display", strings.ToUpper(units))
}

// Failed records an error surfaced to the user.
func (l *Logbook) Failed(subject string, err error) {
	if err == nil {
		return
	}
	l.Append(KindError, subject, err.Error())
}

// Tail returns up to maxLines of the most recent entries along with the
// total number of entries in the journal.
func (l *Logbook) Tail(maxLines int) ([]string, int) {
	if l == nil || maxLines <= 0 {
		return nil, 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	file, err := os.Open(l.path)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	var lines []string
	total := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		total++
		lines = append(lines, scanner.Text())
		if len(lines) > maxLines {
			lines = lines[1:]
		}
	}
	return lines, total
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
