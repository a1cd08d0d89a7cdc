package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// editor is the part of a binding edit the widgets drive. IntegerEdit,
// AttributeIntegerEdit, LineEdit and QuantityEdit all satisfy it.
type editor interface {
	Text() string
	SetText(string)
	EditingFinished()
	FocusIn()
	FocusOut()
	Defaulted() bool
	Enabled() bool
	Unbind()
}

// editField renders one labelled edit. While focused the text lives in a
// textinput; otherwise the edit's buffer is shown directly so model changes
// appear without any syncing.
type editField struct {
	label    string
	units    func() string
	edit     editor
	input    textinput.Model
	onCommit func(label, from, to string)
}

func newEditField(label string, edit editor) *editField {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 64
	input.Width = 24
	return &editField{label: label, edit: edit, input: input}
}

// withUnits shows the unit string returned by fn after the value.
func (f *editField) withUnits(fn func() string) *editField {
	f.units = fn
	return f
}

func (f *editField) focus() tea.Cmd {
	if !f.edit.Enabled() {
		return nil
	}
	f.input.SetValue(f.edit.Text())
	f.input.CursorEnd()
	f.edit.FocusIn()
	return f.input.Focus()
}

// commit hands the typed text to the edit. The edit decides whether the
// value sticks; the input is reloaded with whatever the model now holds.
func (f *editField) commit() {
	if !f.input.Focused() {
		return
	}
	before := f.edit.Text()
	f.edit.SetText(f.input.Value())
	f.edit.EditingFinished()
	after := f.edit.Text()
	f.input.SetValue(after)
	f.input.CursorEnd()
	if after != before && f.onCommit != nil {
		f.onCommit(f.label, before, after)
	}
}

// revert drops typed text without committing.
func (f *editField) revert() {
	f.input.SetValue(f.edit.Text())
}

func (f *editField) blur() {
	if !f.input.Focused() {
		return
	}
	f.commit()
	f.input.Blur()
	f.edit.FocusOut()
}

func (f *editField) update(msg tea.Msg) tea.Cmd {
	if !f.input.Focused() {
		return nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *editField) view(styles fieldStyles) string {
	value := f.edit.Text()
	switch {
	case f.input.Focused():
		value = f.input.View()
	case !f.edit.Enabled():
		value = styles.disabled.Render("-")
	case f.edit.Defaulted():
		value = styles.defaulted.Render(value)
	default:
		value = styles.set.Render(value)
	}
	line := fmt.Sprintf("%s %s", styles.label.Render(f.label), value)
	if f.units != nil {
		if u := f.units(); u != "" {
			line += " " + hintStyle.Render(u)
		}
	}
	return line
}
