// internal/tui/app.go
//
// This is the main TUI (Terminal User Interface) for openstudio.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/kingrea/openstudio/internal/config"
	"github.com/kingrea/openstudio/internal/idd"
	"github.com/kingrea/openstudio/internal/logbook"
	"github.com/kingrea/openstudio/internal/model"
)

// paneFocus tracks which pane receives keys
type paneFocus int

const (
	focusBrowser paneFocus = iota
	focusInspector
)

type keyMap struct {
	Save      key.Binding
	Units     key.Binding
	Next      key.Binding
	Prev      key.Binding
	Select    key.Binding
	Back      key.Binding
	Remove    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

var keys = keyMap{
	Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Units:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "SI/IP")),
	Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "inspect/commit")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Remove:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove object")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}

// InspectorFactory builds the inspector for one object type.
type InspectorFactory func(styles fieldStyles, logger *zap.Logger, isIP bool) InspectorView

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogger routes application logs to logger.
func WithLogger(logger *zap.Logger) AppOption {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithLogbook records edits, removals and saves to book and shows its tail.
func WithLogbook(book *logbook.Logbook) AppOption {
	return func(a *App) {
		if book != nil {
			a.logbook = book
		}
	}
}

// WithInspector overrides the inspector used for objects of type t.
func WithInspector(t idd.ObjectType, factory InspectorFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.inspectors[t] = factory
		}
	}
}

// WithClock overrides the clock used to name backups.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// objectItem implements list.Item for model objects
type objectItem struct {
	obj model.Object
}

func (i objectItem) Title() string {
	if name := i.obj.Name(); name != "" {
		return name
	}
	return string(i.obj.IddObjectType())
}
func (i objectItem) Description() string { return string(i.obj.IddObjectType()) }
func (i objectItem) FilterValue() string { return i.Title() }

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	config  *config.Config
	model   *model.Model
	logger  *zap.Logger
	logbook *logbook.Logbook
	styles  fieldStyles
	now     func() time.Time

	browser    list.Model
	inspectors map[idd.ObjectType]InspectorFactory
	inspector  InspectorView
	focus      paneFocus
	isIP       bool

	statusMsg string
	err       error

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp creates the browser over m. Edits are saved to cfg.ModelPath().
func NewApp(cfg *config.Config, m *model.Model, opts ...AppOption) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("tui: config is required")
	}
	if m == nil {
		return nil, fmt.Errorf("tui: model is required")
	}
	browser := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	browser.Title = "⬡ MODEL OBJECTS"
	browser.SetShowStatusBar(false)
	browser.SetShowHelp(false)

	app := &App{
		config:  cfg,
		model:   m,
		logger:  zap.NewNop(),
		styles:  newFieldStyles(cfg.Project.Inspector),
		now:     time.Now,
		browser: browser,
		inspectors: map[idd.ObjectType]InspectorFactory{
			idd.GlareSensor: func(s fieldStyles, l *zap.Logger, ip bool) InspectorView {
				return NewGlareSensorInspectorView(s, l, ip)
			},
			idd.FanConstantVolume: func(s fieldStyles, l *zap.Logger, ip bool) InspectorView {
				return NewFanConstantVolumeInspectorView(s, l, ip)
			},
		},
		focus: focusBrowser,
		isIP:  cfg.IsIP(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.logger = app.logger.Named("openstudio.tui")
	app.refreshBrowser()
	return app, nil
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(max(20, a.browserWidth()-4), max(5, msg.Height-8))
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.browser.SettingFilter() {
			break
		}
		switch {
		case key.Matches(msg, keys.Save):
			a.save()
			return a, nil
		case key.Matches(msg, keys.Units):
			a.toggleUnits()
			return a, nil
		}
		if a.focus == focusInspector {
			return a, a.updateInspector(msg)
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Select):
			a.inspectSelected()
			return a, nil
		case key.Matches(msg, keys.Next):
			return a, a.focusInspector(1)
		case key.Matches(msg, keys.Remove):
			a.removeSelected()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.browser, cmd = a.browser.Update(msg)
	return a, cmd
}

func (a *App) updateInspector(msg tea.KeyMsg) tea.Cmd {
	if a.inspector == nil {
		a.focus = focusBrowser
		return nil
	}
	switch {
	case key.Matches(msg, keys.Next):
		cmd, ok := a.inspector.FocusNext()
		if !ok {
			a.focus = focusBrowser
		}
		a.afterEdit()
		return cmd
	case key.Matches(msg, keys.Prev):
		cmd, ok := a.inspector.FocusPrev()
		if !ok {
			a.focus = focusBrowser
		}
		a.afterEdit()
		return cmd
	case key.Matches(msg, keys.Select):
		a.inspector.Commit()
		a.afterEdit()
		return nil
	case key.Matches(msg, keys.Back):
		a.inspector.Revert()
		a.inspector.Blur()
		a.focus = focusBrowser
		a.afterEdit()
		return nil
	}
	return a.inspector.Update(msg)
}

func (a *App) focusInspector(step int) tea.Cmd {
	if a.inspector == nil {
		a.inspectSelected()
	}
	if a.inspector == nil {
		return nil
	}
	var cmd tea.Cmd
	var ok bool
	if step < 0 {
		cmd, ok = a.inspector.FocusPrev()
	} else {
		cmd, ok = a.inspector.FocusNext()
	}
	if ok {
		a.focus = focusInspector
	}
	return cmd
}

// inspectSelected opens the inspector for the highlighted object, reusing
// the current view when the type matches.
func (a *App) inspectSelected() {
	item, ok := a.browser.SelectedItem().(objectItem)
	if !ok {
		return
	}
	t := item.obj.IddObjectType()
	if a.inspector != nil {
		if current, ok := a.inspector.Selected(); ok && current.IddObjectType() == t {
			a.inspector.SelectModelObject(item.obj)
			return
		}
		a.inspector.ClearSelection()
	}
	a.inspector = a.newInspector(t)
	a.inspector.SelectModelObject(item.obj)
	a.logger.Debug("inspect", zap.String("type", string(t)), zap.String("name", item.obj.Name()))
	a.statusMsg = fmt.Sprintf("Inspecting %s", item.Title())
}

func (a *App) newInspector(t idd.ObjectType) InspectorView {
	var view InspectorView
	if factory, ok := a.inspectors[t]; ok {
		view = factory(a.styles, a.logger, a.isIP)
	} else {
		view = NewModelObjectInspectorView(a.styles, a.logger, a.isIP)
	}
	view.SetEditHandler(a.logbook.Edit)
	return view
}

func (a *App) removeSelected() {
	item, ok := a.browser.SelectedItem().(objectItem)
	if !ok {
		return
	}
	name := item.Title()
	if !item.obj.Base().Remove() {
		a.statusMsg = fmt.Sprintf("Could not remove %s", name)
		return
	}
	a.logger.Info("removed object", zap.String("name", name))
	a.logbook.Removed(string(item.obj.IddObjectType()), name)
	a.statusMsg = fmt.Sprintf("Removed %s", name)
	a.afterEdit()
}

// afterEdit refreshes list titles, which may have been renamed.
func (a *App) afterEdit() {
	a.refreshBrowser()
}

func (a *App) refreshBrowser() {
	objects := a.model.Objects()
	items := make([]list.Item, len(objects))
	for i, obj := range objects {
		items[i] = objectItem{obj: obj}
	}
	idx := a.browser.Index()
	a.browser.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		a.browser.Select(idx)
	}
}

func (a *App) toggleUnits() {
	if a.inspector != nil {
		a.inspector.Commit()
	}
	a.isIP = !a.isIP
	units := config.UnitsSI
	if a.isIP {
		units = config.UnitsIP
	}
	if a.inspector != nil {
		a.inspector.SetIP(a.isIP)
	}
	if err := a.config.SetUnits(units); err != nil {
		a.err = err
		a.logger.Warn("persist units", zap.Error(err))
		a.logbook.Failed("units", err)
	}
	a.logbook.Units(units)
	a.statusMsg = fmt.Sprintf("Units: %s", strings.ToUpper(units))
}

// save writes the model, first copying the previous document into the
// backups directory.
func (a *App) save() {
	if a.inspector != nil {
		a.inspector.Commit()
	}
	path := a.config.ModelPath()
	if err := a.writeModel(path); err != nil {
		a.err = err
		a.logger.Error("save model", zap.String("path", path), zap.Error(err))
		a.logbook.Failed("save", err)
		return
	}
	a.err = nil
	a.statusMsg = fmt.Sprintf("Saved %s", filepath.Base(path))
	a.logger.Info("saved model", zap.String("path", path))
	a.logbook.Saved(path, a.model.Workspace().Len())
}

func (a *App) writeModel(path string) error {
	if err := a.backup(path); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("tui: ensure model dir: %w", err)
	}
	return a.model.SaveFile(path)
}

func (a *App) backup(path string) error {
	src, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("tui: open model: %w", err)
	}
	defer src.Close()
	if err := os.MkdirAll(a.config.BackupsDir(), 0o755); err != nil {
		return fmt.Errorf("tui: ensure backups dir: %w", err)
	}
	name := fmt.Sprintf("%s.%s", filepath.Base(path), a.now().UTC().Format("20060102T150405"))
	dst, err := os.Create(filepath.Join(a.config.BackupsDir(), name))
	if err != nil {
		return fmt.Errorf("tui: create backup: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("tui: copy backup: %w", err)
	}
	return nil
}

func (a *App) renderLogPanel() string {
	lines, total := a.logbook.Tail(6)
	if len(lines) == 0 {
		return ""
	}
	head := titleStyle.Render(fmt.Sprintf("JOURNAL · %d entries", total))
	return fmt.Sprintf("%s\n%s", head, statusStyle.Render(strings.Join(lines, "\n")))
}

func (a *App) browserWidth() int {
	width := a.width
	if width <= 0 {
		width = 100
	}
	return max(30, width/3)
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	leftWidth := a.browserWidth()
	rightWidth := max(30, width-leftWidth-4)

	left := a.styles.pane(a.focus == focusBrowser).Width(leftWidth).Render(a.browser.View())
	inspector := hintStyle.Render("Select an object and press enter")
	if a.inspector != nil {
		inspector = a.inspector.View()
	}
	if panel := a.renderLogPanel(); panel != "" {
		inspector = lipgloss.JoinVertical(lipgloss.Left, inspector, "", panel)
	}
	right := a.styles.pane(a.focus == focusInspector).Width(rightWidth).Render(inspector)

	units := "SI"
	if a.isIP {
		units = "IP"
	}
	header := headerStyle.Render(fmt.Sprintf("⬡ OPENSTUDIO · %s · %s", filepath.Base(a.config.ModelPath()), units))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := statusStyle.Render(a.statusMsg)
	if a.err != nil {
		status = errorStyle.Render(fmt.Sprintf("Error: %v", a.err))
	}
	help := hintStyle.Render("enter=inspect/commit  tab=next field  esc=back  x=remove  ctrl+s=save  ctrl+u=SI/IP  q=quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, "", status, help)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
