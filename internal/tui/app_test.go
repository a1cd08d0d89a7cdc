package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/openstudio/internal/config"
	"github.com/kingrea/openstudio/internal/logbook"
	"github.com/kingrea/openstudio/internal/model"
	"github.com/kingrea/openstudio/internal/workspace"
)

func TestNewAppListsObjects(t *testing.T) {
	app, m := newTestApp(t)
	model.NewGlareSensor(m)
	model.NewSpace(m)
	app.refreshBrowser()
	if got, want := len(app.browser.Items()), len(m.Objects()); got != want {
		t.Fatalf("expected %d browser items, got %d", want, got)
	}
	if _, err := NewApp(nil, m); err == nil {
		t.Fatalf("expected error without config")
	}
}

func TestGlareSensorInspectorEditsThroughKeys(t *testing.T) {
	app, m := newTestApp(t)
	g := model.NewGlareSensor(m)
	app.refreshBrowser()
	selectObject(t, app, g.Handle())

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	view, ok := app.inspector.(*GlareSensorInspectorView)
	if !ok {
		t.Fatalf("expected glare sensor inspector, got %T", app.inspector)
	}
	if len(view.fields) != 9 {
		t.Fatalf("expected 9 fields, got %d", len(view.fields))
	}

	for i := 0; i < 8; i++ {
		app = press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	}
	if app.focus != focusInspector || view.focused != 7 {
		t.Fatalf("expected glare views field focused, got focus=%d field=%d", app.focus, view.focused)
	}
	if got := view.fields[7].input.Value(); got != "1" {
		t.Fatalf("expected defaulted value 1 in input, got %q", got)
	}
	app = press(t, app, tea.KeyMsg{Type: tea.KeyBackspace})
	app = press(t, app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if got := g.NumberOfGlareViewVectors(); got != 3 {
		t.Fatalf("expected 3 glare view vectors, got %d", got)
	}
	if view.fields[7].edit.Defaulted() {
		t.Fatalf("expected explicit value to not be defaulted")
	}

	view.fields[7].input.SetValue("9")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if got := view.fields[7].input.Value(); got != "3" {
		t.Fatalf("expected rejected value to revert to 3, got %q", got)
	}

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.focus != focusBrowser {
		t.Fatalf("expected esc to return to browser")
	}
}

func TestRenameRefreshesBrowser(t *testing.T) {
	app, m := newTestApp(t)
	g := model.NewGlareSensor(m)
	app.refreshBrowser()
	selectObject(t, app, g.Handle())

	app = press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	view := app.inspector.(*GlareSensorInspectorView)
	view.fields[0].input.SetValue("Desk Sensor")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	if g.Name() != "Desk Sensor" {
		t.Fatalf("expected rename, got %q", g.Name())
	}
	item, ok := app.browser.SelectedItem().(objectItem)
	if !ok || item.Title() != "Desk Sensor" {
		t.Fatalf("expected browser title to follow rename, got %+v", app.browser.SelectedItem())
	}
	if !strings.Contains(app.View(), "Desk Sensor") {
		t.Fatalf("expected view to show new name")
	}
}

func TestToggleUnitsSwitchesQuantityDisplay(t *testing.T) {
	app, m := newTestApp(t)
	g := model.NewGlareSensor(m)
	g.SetPositionXCoordinate(3.048)
	app.refreshBrowser()
	selectObject(t, app, g.Handle())
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})

	view := app.inspector.(*GlareSensorInspectorView)
	x := view.fields[1]
	if got := x.units(); got != "m" {
		t.Fatalf("expected m, got %q", got)
	}
	if x.edit.Text() != "3.048" {
		t.Fatalf("expected 3.048, got %q", x.edit.Text())
	}

	app = press(t, app, tea.KeyMsg{Type: tea.KeyCtrlU})
	if got := x.units(); got != "ft" {
		t.Fatalf("expected ft after toggle, got %q", got)
	}
	if !strings.HasPrefix(x.edit.Text(), "10") && !strings.HasPrefix(x.edit.Text(), "9.99") {
		t.Fatalf("expected about 10 ft, got %q", x.edit.Text())
	}

	reloaded, err := config.NewConfig(app.config.ProjectDir)
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if !reloaded.IsIP() {
		t.Fatalf("expected units toggle to persist")
	}
	if g.PositionXCoordinate() != 3.048 {
		t.Fatalf("toggling units must not change the stored value, got %v", g.PositionXCoordinate())
	}
}

func TestFanInspectorAutosize(t *testing.T) {
	app, m := newTestApp(t)
	f := model.NewFanConstantVolume(m)
	app.refreshBrowser()
	selectObject(t, app, f.Handle())
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})

	view, ok := app.inspector.(*FanConstantVolumeInspectorView)
	if !ok {
		t.Fatalf("expected fan inspector, got %T", app.inspector)
	}
	if view.schedule != model.AlwaysOnDiscreteName {
		t.Fatalf("expected repaired schedule name, got %q", view.schedule)
	}
	flow := view.fields[3]
	if flow.edit.Text() != "autosize" {
		t.Fatalf("expected autosize text, got %q", flow.edit.Text())
	}

	for i := 0; i < 4; i++ {
		app = press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	}
	flow.input.SetValue("0.5")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if v, ok := f.MaximumFlowRate(); !ok || v != 0.5 {
		t.Fatalf("expected flow 0.5, got %v %v", v, ok)
	}

	flow.input.SetValue("AUTO")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if !f.IsMaximumFlowRateAutosized() {
		t.Fatalf("expected auto text to autosize")
	}
	if !strings.Contains(app.View(), model.AlwaysOnDiscreteName) {
		t.Fatalf("expected availability schedule in view")
	}
}

func TestRemoveClearsInspector(t *testing.T) {
	app, m := newTestApp(t)
	g := model.NewGlareSensor(m)
	app.refreshBrowser()
	selectObject(t, app, g.Handle())
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	view := app.inspector.(*GlareSensorInspectorView)

	before := len(app.browser.Items())
	app = press(t, app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if !g.Base().Removed() {
		t.Fatalf("expected sensor removed")
	}
	if _, ok := view.Selected(); ok {
		t.Fatalf("expected inspector to clear on removal")
	}
	if len(view.fields) != 0 {
		t.Fatalf("expected edits to be dropped")
	}
	if got := len(app.browser.Items()); got != before-1 {
		t.Fatalf("expected %d items, got %d", before-1, got)
	}
}

func TestGenericInspectorListsAttributes(t *testing.T) {
	app, m := newTestApp(t)
	s := model.NewSpace(m)
	s.SetFloorArea(42)
	app.refreshBrowser()
	selectObject(t, app, s.Handle())
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})

	view, ok := app.inspector.(*ModelObjectInspectorView)
	if !ok {
		t.Fatalf("expected generic inspector, got %T", app.inspector)
	}
	if len(view.fields) != 1 {
		t.Fatalf("expected only the name edit, got %d", len(view.fields))
	}
	out := view.View()
	if !strings.Contains(out, "floorArea") || !strings.Contains(out, "42") {
		t.Fatalf("expected floor area attribute in view:\n%s", out)
	}
}

func TestSaveWritesModelAndBackup(t *testing.T) {
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	app, m := newTestApp(t, WithClock(func() time.Time { return stamp }))
	model.NewGlareSensor(m)

	app = press(t, app, tea.KeyMsg{Type: tea.KeyCtrlS})
	if app.err != nil {
		t.Fatalf("save failed: %v", app.err)
	}
	if _, err := os.Stat(app.config.ModelPath()); err != nil {
		t.Fatalf("expected model file: %v", err)
	}
	model.NewGlareSensor(m)
	app = press(t, app, tea.KeyMsg{Type: tea.KeyCtrlS})

	backup := filepath.Join(app.config.BackupsDir(), filepath.Base(app.config.ModelPath())+".20240301T120000")
	if _, err := os.Stat(backup); err != nil {
		t.Fatalf("expected backup at %s: %v", backup, err)
	}
	loaded, err := model.LoadFile(app.config.ModelPath())
	if err != nil {
		t.Fatalf("load saved model: %v", err)
	}
	if got := len(loaded.GlareSensors()); got != 2 {
		t.Fatalf("expected 2 glare sensors, got %d", got)
	}
	previous, err := model.LoadFile(backup)
	if err != nil {
		t.Fatalf("load backup: %v", err)
	}
	if got := len(previous.GlareSensors()); got != 1 {
		t.Fatalf("expected backup to hold 1 glare sensor, got %d", got)
	}
}

func TestJournalRecordsEdits(t *testing.T) {
	book, err := logbook.New(filepath.Join(t.TempDir(), logbook.FileName))
	if err != nil {
		t.Fatalf("logbook: %v", err)
	}
	app, m := newTestApp(t, WithLogbook(book))
	g := model.NewGlareSensor(m)
	app.refreshBrowser()
	selectObject(t, app, g.Handle())

	app = press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	app = press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	view := app.inspector.(*GlareSensorInspectorView)
	view.fields[1].input.SetValue("2.5")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	view.fields[1].input.SetValue("not a number")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	app = press(t, app, tea.KeyMsg{Type: tea.KeyCtrlS})

	lines, total := book.Tail(10)
	if total != 2 {
		t.Fatalf("expected edit and save entries, got %d: %v", total, lines)
	}
	if !strings.Contains(lines[0], `Position X-Coordinate "0" -> "2.5"`) {
		t.Fatalf("unexpected edit entry %q", lines[0])
	}
	if !strings.Contains(lines[1], "SAVE") {
		t.Fatalf("unexpected save entry %q", lines[1])
	}
	if !strings.Contains(app.View(), "JOURNAL") {
		t.Fatalf("expected journal panel in view")
	}
}

func newTestApp(t *testing.T, opts ...AppOption) (*App, *model.Model) {
	t.Helper()
	projectDir := t.TempDir()
	if err := config.InitProjectDir(projectDir); err != nil {
		t.Fatalf("init project dir: %v", err)
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	m := model.New()
	app, err := NewApp(cfg, m, opts...)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	next, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(*App), m
}

func selectObject(t *testing.T, app *App, h workspace.Handle) {
	t.Helper()
	for i, item := range app.browser.Items() {
		if obj, ok := item.(objectItem); ok && obj.obj.Handle() == h {
			app.browser.Select(i)
			return
		}
	}
	t.Fatalf("object %s not in browser", h)
}

func press(t *testing.T, app *App, msg tea.Msg) *App {
	t.Helper()
	next, _ := app.Update(msg)
	out, ok := next.(*App)
	if !ok {
		t.Fatalf("unexpected model type: %T", next)
	}
	return out
}
