// Package units implements dimensional-analysis unit values for the three
// base-unit systems OpenStudio uses (SI, IP and Therm) together with numeric
// quantities and conversion between compatible units.
package units

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIncompatibleUnits = errors.New("units: incompatible units")
	ErrSystemMismatch    = errors.New("units: unit systems differ")
)

// System names a set of twelve base units.
type System int

const (
	SI System = iota
	IP
	Therm
)

func (s System) String() string {
	switch s {
	case SI:
		return "SI"
	case IP:
		return "IP"
	case Therm:
		return "Therm"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// NumDimensions is the length of every exponent vector.
const NumDimensions = 12

// Exponents holds one integer exponent per base unit, in system order.
type Exponents [NumDimensions]int

var baseSymbols = map[System][NumDimensions]string{
	SI:    {"kg", "m", "s", "K", "A", "cd", "mol", "rad", "sr", "people", "cycle", "$"},
	IP:    {"lb_m", "ft", "s", "R", "A", "cd", "lbmol", "deg", "sr", "people", "cycle", "$"},
	Therm: {"therm", "in", "yr", "R", "A", "cd", "lbmol", "deg", "sr", "people", "cycle", "$"},
}

// BaseSymbols returns the base unit symbols of s in exponent order.
func BaseSymbols(s System) [NumDimensions]string {
	return baseSymbols[s]
}

// Unit is an immutable derived unit: a system, a vector of base-unit
// exponents, a power-of-ten scale and an optional display override.
type Unit struct {
	system System
	exp    Exponents
	scale  int
	pretty string
}

// NewUnit builds a unit directly from an exponent vector.
func NewUnit(system System, exp Exponents, scaleExponent int, prettyString string) Unit {
	return Unit{system: system, exp: exp, scale: scaleExponent, pretty: prettyString}
}

// NewUnitWithScale is NewUnit with the scale given by abbreviation, e.g. "k".
func NewUnitWithScale(system System, scaleAbbr string, exp Exponents, prettyString string) (Unit, error) {
	s, err := ScaleByAbbr(scaleAbbr)
	if err != nil {
		return Unit{}, err
	}
	return NewUnit(system, exp, s.Exponent, prettyString), nil
}

// System returns the unit's base-unit system.
func (u Unit) System() System { return u.system }

// Exponents returns a copy of the exponent vector.
func (u Unit) Exponents() Exponents { return u.exp }

// ScaleExponent returns the power of ten applied to the unit.
func (u Unit) ScaleExponent() int { return u.scale }

// Scale returns the named prefix for the unit's scale, if one exists.
func (u Unit) Scale() (Scale, bool) { return ScaleByExponent(u.scale) }

// BaseUnitExponent returns the exponent of the named base unit.
func (u Unit) BaseUnitExponent(symbol string) (int, bool) {
	for i, s := range baseSymbols[u.system] {
		if s == symbol {
			return u.exp[i], true
		}
	}
	return 0, false
}

// IsBaseUnit reports whether symbol is one of the system's base units.
func (u Unit) IsBaseUnit(symbol string) bool {
	_, ok := u.BaseUnitExponent(symbol)
	return ok
}

// WithBaseUnitExponent returns a copy with one base unit exponent replaced.
func (u Unit) WithBaseUnitExponent(symbol string, exp int) (Unit, error) {
	for i, s := range baseSymbols[u.system] {
		if s == symbol {
			u.exp[i] = exp
			u.pretty = ""
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("units: %q is not a %s base unit", symbol, u.system)
}

// WithScale returns a copy with a different scale exponent.
func (u Unit) WithScale(exp int) Unit {
	u.scale = exp
	u.pretty = ""
	return u
}

// WithPrettyString returns a copy displayed as s.
func (u Unit) WithPrettyString(s string) Unit {
	u.pretty = s
	return u
}

// PrettyString returns the display override, or "" when none is set.
func (u Unit) PrettyString() string { return u.pretty }

// IsDimensionless reports whether every exponent is zero.
func (u Unit) IsDimensionless() bool {
	return u.exp == Exponents{}
}

// Compatible reports whether u and o are in the same system and all twelve
// exponents match. Scale is ignored.
func (u Unit) Compatible(o Unit) bool {
	return u.system == o.system && u.exp == o.exp
}

// Equal reports whether u and o are compatible and share a scale.
func (u Unit) Equal(o Unit) bool {
	return u.Compatible(o) && u.scale == o.scale
}

// Convertible reports whether a quantity in u can be expressed in o, possibly
// across systems.
func (u Unit) Convertible(o Unit) bool {
	_, ue := u.siExpansion()
	_, oe := o.siExpansion()
	return ue == oe
}

// Mul multiplies two units of the same system.
func (u Unit) Mul(o Unit) (Unit, error) {
	if u.system != o.system {
		return Unit{}, fmt.Errorf("%w: %s * %s", ErrSystemMismatch, u.system, o.system)
	}
	out := Unit{system: u.system, scale: u.scale + o.scale}
	for i := range out.exp {
		out.exp[i] = u.exp[i] + o.exp[i]
	}
	return out, nil
}

// Div divides u by o.
func (u Unit) Div(o Unit) (Unit, error) {
	if u.system != o.system {
		return Unit{}, fmt.Errorf("%w: %s / %s", ErrSystemMismatch, u.system, o.system)
	}
	out := Unit{system: u.system, scale: u.scale - o.scale}
	for i := range out.exp {
		out.exp[i] = u.exp[i] - o.exp[i]
	}
	return out, nil
}

// Pow raises u to an integer power.
func (u Unit) Pow(n int) Unit {
	out := Unit{system: u.system, scale: u.scale * n}
	for i := range out.exp {
		out.exp[i] = u.exp[i] * n
	}
	return out
}

// StandardString renders the unit from its exponents, e.g. "therm^2*in/yr"
// or "k(kg*m^2/s^2)".
func (u Unit) StandardString() string {
	symbols := baseSymbols[u.system]
	var num, den []string
	for i, e := range u.exp {
		switch {
		case e > 0:
			num = append(num, term(symbols[i], e))
		case e < 0:
			den = append(den, term(symbols[i], -e))
		}
	}
	body := strings.Join(num, "*")
	if len(den) > 0 {
		if body == "" {
			body = "1"
		}
		body += "/" + strings.Join(den, "*")
	}
	if u.scale == 0 {
		return body
	}
	s, named := ScaleByExponent(u.scale)
	if !named {
		return fmt.Sprintf("10^%d(%s)", u.scale, body)
	}
	if len(num) == 1 && len(den) == 0 && !strings.Contains(body, "^") {
		return s.Abbr + body
	}
	return s.Abbr + "(" + body + ")"
}

// String returns the pretty string when set, else the standard string.
func (u Unit) String() string {
	if u.pretty != "" {
		return u.pretty
	}
	return u.StandardString()
}

func term(symbol string, exp int) string {
	if exp == 1 {
		return symbol
	}
	return fmt.Sprintf("%s^%d", symbol, exp)
}
