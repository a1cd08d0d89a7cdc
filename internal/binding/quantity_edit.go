package binding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kingrea/openstudio/internal/units"
)

// DoubleCallbacks are the capability slots of a real-valued field. Values
// cross the callbacks in the field's SI units.
type DoubleCallbacks struct {
	Get              func() (float64, bool)
	Set              func(float64) bool
	Reset            func()
	Autosize         func()
	Autocalculate    func()
	IsDefaulted      func() bool
	IsAutosized      func() bool
	IsAutocalculated func() bool
}

func (cb DoubleCallbacks) validate() error {
	if cb.Get == nil {
		return ErrNoGetter
	}
	sizes := cb.IsAutosized != nil || cb.Autosize != nil
	calcs := cb.IsAutocalculated != nil || cb.Autocalculate != nil
	if sizes && calcs {
		return ErrAutosizeAutocalculateConflict
	}
	return nil
}

// QuantityEdit edits a real-valued field and displays it in SI or IP units.
type QuantityEdit struct {
	core
	cb     DoubleCallbacks
	si     units.Unit
	ip     units.Unit
	isIP   bool
	format numberFormat
}

// NewQuantityEdit parses the field's unit strings. An empty ipUnits displays
// SI values in both modes.
func NewQuantityEdit(siUnits, ipUnits string, isIP bool, opts ...Option) (*QuantityEdit, error) {
	si, err := units.Parse(siUnits)
	if err != nil {
		return nil, fmt.Errorf("binding: si units: %w", err)
	}
	ip := si
	if ipUnits != "" {
		if ip, err = units.Parse(ipUnits); err != nil {
			return nil, fmt.Errorf("binding: ip units: %w", err)
		}
		if !si.Convertible(ip) {
			return nil, fmt.Errorf("binding: %s and %s: %w", siUnits, ipUnits, units.ErrIncompatibleUnits)
		}
	}
	return &QuantityEdit{core: newCore(opts), si: si, ip: ip, isIP: isIP}, nil
}

func (e *QuantityEdit) Bind(target Target, cb DoubleCallbacks) error {
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

func (e *QuantityEdit) MustBind(target Target, cb DoubleCallbacks) {
	if err := e.Bind(target, cb); err != nil {
		panic(err)
	}
}

func (e *QuantityEdit) Unbind() {
	e.detach()
	e.cb = DoubleCallbacks{}
	e.format = numberFormat{}
}

// IsIP reports whether values display in IP units.
func (e *QuantityEdit) IsIP() bool { return e.isIP }

// SetIP switches the display system and rereads the value.
func (e *QuantityEdit) SetIP(isIP bool) {
	if e.isIP == isIP {
		return
	}
	e.isIP = isIP
	e.format = numberFormat{}
	e.refresh()
}

// Units returns the display unit string.
func (e *QuantityEdit) Units() string {
	return e.display().String()
}

func (e *QuantityEdit) display() units.Unit {
	if e.isIP {
		return e.ip
	}
	return e.si
}

// EditingFinished commits the buffer, converting from display units.
func (e *QuantityEdit) EditingFinished() {
	if !e.enabled {
		return
	}
	if e.onFocus != nil {
		e.onFocus(true, e.HasData())
	}
	if e.text == e.shown {
		return
	}
	text := strings.TrimSpace(e.text)
	switch {
	case text == "":
		if e.cb.Reset != nil {
			e.cb.Reset()
		}
	case autoPattern.MatchString(text):
		e.commitAuto()
	default:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			e.revert("not a number", e.refresh)
			return
		}
		si, err := units.Convert(units.NewQuantity(v, e.display()), e.si)
		if err != nil {
			e.revert(err.Error(), e.refresh)
			return
		}
		if e.cb.Set == nil || !e.cb.Set(si.Value) {
			e.revert("rejected", e.refresh)
			return
		}
		e.format.learn(text)
	}
	e.refresh()
}

func (e *QuantityEdit) commitAuto() {
	switch {
	case e.cb.Autosize != nil:
		e.cb.Autosize()
	case e.cb.Autocalculate != nil:
		e.cb.Autocalculate()
	case e.cb.Reset != nil:
		e.cb.Reset()
	}
}

func (e *QuantityEdit) refresh() {
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
	if v, ok := e.cb.Get(); ok {
		shown, err := units.Convert(units.NewQuantity(v, e.si), e.display())
		if err == nil {
			text = e.format.format(shown.Value)
		}
	}
	e.show(text, e.cb.IsDefaulted != nil && e.cb.IsDefaulted())
}
