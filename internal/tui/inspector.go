package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kingrea/openstudio/internal/binding"
	"github.com/kingrea/openstudio/internal/model"
	"github.com/kingrea/openstudio/internal/workspace"
)

// InspectorView shows and edits the fields of one selected object.
type InspectorView interface {
	SelectModelObject(obj model.Object)
	ClearSelection()
	Selected() (model.Object, bool)
	SetIP(isIP bool)
	SetEditHandler(fn func(object, field, from, to string))
	FocusNext() (tea.Cmd, bool)
	FocusPrev() (tea.Cmd, bool)
	Blur()
	Commit()
	Revert()
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// ModelObjectInspectorView is the base inspector. On its own it edits the
// name and lists every attribute read-only. Typed views replace
// onSelectModelObject to lay out their own edits.
type ModelObjectInspectorView struct {
	title    string
	styles   fieldStyles
	logger   *zap.Logger
	isIP     bool
	selected model.Object
	fields   []*editField
	focused  int
	subs     []*workspace.Subscription

	showAttributes bool

	onSelectModelObject func(obj model.Object)
	onClearSelection    func()
	onUpdate            func()
	onEdit              func(object, field, from, to string)
}

// NewModelObjectInspectorView returns the generic inspector.
func NewModelObjectInspectorView(styles fieldStyles, logger *zap.Logger, isIP bool) *ModelObjectInspectorView {
	v := newModelObjectInspectorView("Object", styles, logger, isIP)
	v.showAttributes = true
	v.onSelectModelObject = v.bindName
	return v
}

func newModelObjectInspectorView(title string, styles fieldStyles, logger *zap.Logger, isIP bool) *ModelObjectInspectorView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModelObjectInspectorView{
		title:   title,
		styles:  styles,
		logger:  logger,
		isIP:    isIP,
		focused: -1,
	}
}

// SelectModelObject binds the view to obj, replacing any previous selection.
// The view clears itself when obj is removed.
func (v *ModelObjectInspectorView) SelectModelObject(obj model.Object) {
	v.ClearSelection()
	if obj == nil || obj.Base().IsNil() || obj.Base().Removed() {
		return
	}
	v.selected = obj
	base := obj.Base()
	v.subs = append(v.subs,
		base.OnChange(v.update),
		base.OnRemove(func(workspace.Handle) { v.ClearSelection() }),
	)
	if v.onSelectModelObject != nil {
		v.onSelectModelObject(obj)
	}
}

// ClearSelection unbinds every edit and drops the selection.
func (v *ModelObjectInspectorView) ClearSelection() {
	for _, sub := range v.subs {
		sub.Close()
	}
	v.subs = nil
	for _, f := range v.fields {
		f.edit.Unbind()
	}
	v.fields = nil
	v.focused = -1
	if v.selected == nil {
		return
	}
	v.selected = nil
	if v.onClearSelection != nil {
		v.onClearSelection()
	}
}

// Selected returns the inspected object.
func (v *ModelObjectInspectorView) Selected() (model.Object, bool) {
	return v.selected, v.selected != nil
}

func (v *ModelObjectInspectorView) update() {
	if v.onUpdate != nil {
		v.onUpdate()
	}
}

// SetIP switches quantity edits between SI and IP display.
func (v *ModelObjectInspectorView) SetIP(isIP bool) {
	v.isIP = isIP
	for _, f := range v.fields {
		if q, ok := f.edit.(interface{ SetIP(bool) }); ok {
			q.SetIP(isIP)
		}
	}
}

// SetEditHandler registers fn to hear about every committed change.
func (v *ModelObjectInspectorView) SetEditHandler(fn func(object, field, from, to string)) {
	v.onEdit = fn
}

func (v *ModelObjectInspectorView) appendField(f *editField) {
	f.onCommit = func(label, from, to string) {
		if v.onEdit == nil || v.selected == nil {
			return
		}
		v.onEdit(v.selected.Name(), label, from, to)
	}
	v.fields = append(v.fields, f)
}

// FocusNext commits the focused edit and moves to the next enabled one. It
// reports false once focus runs past the last edit.
func (v *ModelObjectInspectorView) FocusNext() (tea.Cmd, bool) {
	return v.moveFocus(1)
}

// FocusPrev is FocusNext in reverse.
func (v *ModelObjectInspectorView) FocusPrev() (tea.Cmd, bool) {
	return v.moveFocus(-1)
}

func (v *ModelObjectInspectorView) moveFocus(step int) (tea.Cmd, bool) {
	start := v.focused
	if start < 0 && step < 0 {
		start = len(v.fields)
	}
	v.Blur()
	for i := start + step; i >= 0 && i < len(v.fields); i += step {
		if v.fields[i].edit.Enabled() {
			v.focused = i
			return v.fields[i].focus(), true
		}
	}
	return nil, false
}

// Blur commits and unfocuses the focused edit.
func (v *ModelObjectInspectorView) Blur() {
	if f := v.current(); f != nil {
		f.blur()
	}
	v.focused = -1
}

// Commit finishes editing the focused edit and keeps focus on it.
func (v *ModelObjectInspectorView) Commit() {
	if f := v.current(); f != nil {
		f.commit()
	}
}

// Revert discards typed text in the focused edit.
func (v *ModelObjectInspectorView) Revert() {
	if f := v.current(); f != nil {
		f.revert()
	}
}

func (v *ModelObjectInspectorView) current() *editField {
	if v.focused < 0 || v.focused >= len(v.fields) {
		return nil
	}
	return v.fields[v.focused]
}

func (v *ModelObjectInspectorView) Update(msg tea.Msg) tea.Cmd {
	if f := v.current(); f != nil {
		return f.update(msg)
	}
	return nil
}

func (v *ModelObjectInspectorView) View() string {
	if v.selected == nil {
		return hintStyle.Render("No object selected")
	}
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s · %s", v.title, v.selected.Name())),
		hintStyle.Render(string(v.selected.IddObjectType())),
		"",
	}
	for i, f := range v.fields {
		indicator := " "
		if i == v.focused {
			indicator = ">"
		}
		lines = append(lines, fmt.Sprintf("%s %s", indicator, f.view(v.styles)))
	}
	if v.showAttributes {
		lines = append(lines, "")
		base := v.selected.Base()
		for _, name := range base.AttributeNames() {
			if name == "name" {
				continue
			}
			value, ok := base.GetAttribute(name)
			text := "-"
			if ok {
				text = fmt.Sprint(value)
			}
			lines = append(lines, fmt.Sprintf("  %s %s", v.styles.label.Render(name), statusStyle.Render(text)))
		}
	}
	return strings.Join(lines, "\n")
}

func (v *ModelObjectInspectorView) editOptions() []binding.Option {
	return []binding.Option{binding.WithLogger(v.logger.Named("openstudio.binding"))}
}

// bindName adds the name edit every inspector starts with. Wrappers that
// override SetName, such as tariffs, keep their behavior.
func (v *ModelObjectInspectorView) bindName(obj model.Object) {
	cb := binding.StringCallbacks{
		Get: func() (string, bool) { return obj.Name(), true },
	}
	if namer, ok := obj.(interface{ SetName(string) bool }); ok {
		cb.Set = namer.SetName
	}
	edit := binding.NewLineEdit(v.editOptions()...)
	if err := edit.Bind(obj.Base(), cb); err != nil {
		v.logger.Error("bind name", zap.Error(err))
		return
	}
	v.appendField(newEditField("Name", edit))
}

// addQuantity binds a real field, taking its units from the schema. Fields
// without an explicit IsDefaulted report defaulted while blank.
func (v *ModelObjectInspectorView) addQuantity(label string, obj model.ModelObject, index int, cb binding.DoubleCallbacks) {
	f, ok := obj.WorkspaceObject().Schema().Field(index)
	if !ok {
		v.logger.Error("bind quantity", zap.String("field", label), zap.Int("index", index))
		return
	}
	if cb.IsDefaulted == nil {
		cb.IsDefaulted = blankField(obj, index)
	}
	edit, err := binding.NewQuantityEdit(f.Units, f.IPUnits, v.isIP, v.editOptions()...)
	if err == nil {
		err = edit.Bind(obj, cb)
	}
	if err != nil {
		v.logger.Error("bind quantity", zap.String("field", label), zap.Error(err))
		return
	}
	v.appendField(newEditField(label, edit).withUnits(edit.Units))
}

func (v *ModelObjectInspectorView) addText(label string, obj model.ModelObject, cb binding.StringCallbacks) {
	edit := binding.NewLineEdit(v.editOptions()...)
	if err := edit.Bind(obj, cb); err != nil {
		v.logger.Error("bind text", zap.String("field", label), zap.Error(err))
		return
	}
	v.appendField(newEditField(label, edit))
}

func (v *ModelObjectInspectorView) addAttributeInteger(label string, obj model.ModelObject, property string, names binding.AttributeNames) {
	edit := binding.NewAttributeIntegerEdit(v.editOptions()...)
	if err := edit.Bind(obj, property, names); err != nil {
		v.logger.Error("bind integer", zap.String("property", property), zap.Error(err))
		return
	}
	v.appendField(newEditField(label, edit))
}

func blankField(obj model.ModelObject, index int) func() bool {
	return func() bool { return obj.WorkspaceObject().IsEmpty(index) }
}

func present[T any](get func() T) func() (T, bool) {
	return func() (T, bool) { return get(), true }
}
