package binding

import (
	"strconv"
	"strings"
)

// IntCallbacks are the capability slots of an integer field. Exactly one of
// Get and GetOptional must be set; every other slot is optional.
type IntCallbacks struct {
	Get              func() int
	GetOptional      func() (int, bool)
	Set              func(int) bool
	Reset            func()
	Autosize         func()
	Autocalculate    func()
	IsDefaulted      func() bool
	IsAutosized      func() bool
	IsAutocalculated func() bool
}

func (cb IntCallbacks) validate() error {
	if cb.Get == nil && cb.GetOptional == nil {
		return ErrNoGetter
	}
	sizes := cb.IsAutosized != nil || cb.Autosize != nil
	calcs := cb.IsAutocalculated != nil || cb.Autocalculate != nil
	if sizes && calcs {
		return ErrAutosizeAutocalculateConflict
	}
	return nil
}

func (cb IntCallbacks) value() (int, bool) {
	if cb.Get != nil {
		return cb.Get(), true
	}
	return cb.GetOptional()
}

// IntegerEdit edits an integer field through callbacks.
type IntegerEdit struct {
	core
	cb IntCallbacks
}

func NewIntegerEdit(opts ...Option) *IntegerEdit {
	return &IntegerEdit{core: newCore(opts)}
}

// Bind attaches the edit to target. Any previous binding is dropped first.
func (e *IntegerEdit) Bind(target Target, cb IntCallbacks) error {
	if target == nil {
		return ErrNoTarget
	}
	if err := cb.validate(); err != nil {
		return err
	}
	e.Unbind()
	e.cb = cb
	e.attach(target, e.refresh, e.Unbind)
	e.refresh()
	return nil
}

// MustBind is Bind for statically known bindings; a conflict panics.
func (e *IntegerEdit) MustBind(target Target, cb IntCallbacks) {
	if err := e.Bind(target, cb); err != nil {
		panic(err)
	}
}

// Unbind detaches the edit and disables it.
func (e *IntegerEdit) Unbind() {
	e.detach()
	e.cb = IntCallbacks{}
}

// EditingFinished commits the buffer. Empty text resets the field, text
// containing "auto" autosizes or autocalculates when the field supports it
// and resets otherwise, and anything else must parse as an integer the
// setter accepts or the buffer reverts to the model value.
func (e *IntegerEdit) EditingFinished() {
	if !e.enabled {
		return
	}
	if e.onFocus != nil {
		e.onFocus(true, e.HasData())
	}
	text := strings.TrimSpace(e.text)
	if e.text == e.shown {
		return
	}
	switch {
	case text == "":
		if e.cb.Reset != nil {
			e.cb.Reset()
		}
	case autoPattern.MatchString(text):
		e.commitAuto()
	default:
		v, err := strconv.Atoi(text)
		if err != nil {
			e.revert("not an integer", e.refresh)
			return
		}
		if e.cb.Set == nil || !e.cb.Set(v) {
			e.revert("rejected", e.refresh)
			return
		}
	}
	e.refresh()
}

func (e *IntegerEdit) commitAuto() {
	switch {
	case e.cb.IsAutosized != nil || e.cb.Autosize != nil:
		if e.cb.Autosize != nil {
			e.cb.Autosize()
			return
		}
	case e.cb.IsAutocalculated != nil || e.cb.Autocalculate != nil:
		if e.cb.Autocalculate != nil {
			e.cb.Autocalculate()
			return
		}
	}
	if e.cb.Reset != nil {
		e.cb.Reset()
	}
}

func (e *IntegerEdit) refresh() {
	if !e.enabled {
		return
	}
	text := ""
	if e.cb.IsAutosized != nil && e.cb.IsAutosized() {
		text = AutosizeText
	}
	if e.cb.IsAutocalculated != nil && e.cb.IsAutocalculated() {
		text = AutocalculateText
	}
	if v, ok := e.cb.value(); ok {
		text = strconv.Itoa(v)
	}
	defaulted := e.cb.IsDefaulted != nil && e.cb.IsDefaulted()
	e.show(text, defaulted)
}
