package binding

// StringCallbacks are the capability slots of a text field.
type StringCallbacks struct {
	Get         func() (string, bool)
	Set         func(string) bool
	Reset       func()
	IsDefaulted func() bool
}

// LineEdit edits a text field such as an object name.
type LineEdit struct {
	core
	cb StringCallbacks
}

func NewLineEdit(opts ...Option) *LineEdit {
	return &LineEdit{core: newCore(opts)}
}

func (e *LineEdit) Bind(target Target, cb StringCallbacks) error {
	if target == nil {
		return ErrNoTarget
	}
	if cb.Get == nil {
		return ErrNoGetter
	}
	e.Unbind()
	e.cb = cb
	e.attach(target, e.refresh, e.Unbind)
	e.refresh()
	return nil
}

func (e *LineEdit) Unbind() {
	e.detach()
	e.cb = StringCallbacks{}
}

// EditingFinished commits the buffer. Empty text resets when the field
// supports it; a rejected value reverts the buffer.
func (e *LineEdit) EditingFinished() {
	if !e.enabled || e.text == e.shown {
		return
	}
	if e.text == "" && e.cb.Reset != nil {
		e.cb.Reset()
		e.refresh()
		return
	}
	if e.cb.Set == nil || !e.cb.Set(e.text) {
		e.revert("rejected", e.refresh)
		return
	}
	e.refresh()
}

func (e *LineEdit) refresh() {
	if !e.enabled {
		return
	}
	text, _ := e.cb.Get()
	e.show(text, e.cb.IsDefaulted != nil && e.cb.IsDefaulted())
}
