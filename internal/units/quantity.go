package units

import (
	"fmt"
	"math"
	"strconv"
)

// siBase maps one base unit of a system onto SI: value_SI = factor * value.
type siBase struct {
	factor float64
	exp    Exponents
}

func dim(i int) Exponents {
	var e Exponents
	e[i] = 1
	return e
}

const (
	lbmToKg     = 0.45359237
	ftToM       = 0.3048
	inToM       = 0.0254
	thermToJ    = 1.05505585262e8
	yearToS     = 8760 * 3600
	rankineToK  = 5.0 / 9.0
	lbmolToMol  = 453.59237
	degreeToRad = math.Pi / 180
)

var siBases = map[System][NumDimensions]siBase{}

func init() {
	var si, ip, therm [NumDimensions]siBase
	for i := 0; i < NumDimensions; i++ {
		si[i] = siBase{1, dim(i)}
		ip[i] = siBase{1, dim(i)}
		therm[i] = siBase{1, dim(i)}
	}
	ip[0].factor = lbmToKg
	ip[1].factor = ftToM
	ip[3].factor = rankineToK
	ip[6].factor = lbmolToMol
	ip[7].factor = degreeToRad

	therm[0] = siBase{thermToJ, Exponents{1, 2, -2}}
	therm[1].factor = inToM
	therm[2].factor = yearToS
	therm[3].factor = rankineToK
	therm[6].factor = lbmolToMol
	therm[7].factor = degreeToRad

	siBases[SI] = si
	siBases[IP] = ip
	siBases[Therm] = therm
}

// siExpansion returns the factor converting one u into SI base units and the
// resulting SI exponent vector.
func (u Unit) siExpansion() (float64, Exponents) {
	bases := siBases[u.system]
	factor := math.Pow(10, float64(u.scale))
	var out Exponents
	for i, e := range u.exp {
		if e == 0 {
			continue
		}
		factor *= math.Pow(bases[i].factor, float64(e))
		for j, be := range bases[i].exp {
			out[j] += be * e
		}
	}
	return factor, out
}

// Quantity is a value tagged with a unit. Temperatures are treated as
// differences; no absolute offset is applied on conversion.
type Quantity struct {
	Value float64
	Unit  Unit
}

// NewQuantity pairs a value with a unit.
func NewQuantity(value float64, u Unit) Quantity {
	return Quantity{Value: value, Unit: u}
}

func (q Quantity) String() string {
	s := strconv.FormatFloat(q.Value, 'g', -1, 64)
	if u := q.Unit.String(); u != "" {
		s += " " + u
	}
	return s
}

// Convert expresses q in target units.
func Convert(q Quantity, target Unit) (Quantity, error) {
	from, fromExp := q.Unit.siExpansion()
	to, toExp := target.siExpansion()
	if fromExp != toExp {
		return Quantity{}, fmt.Errorf("%w: %s to %s", ErrIncompatibleUnits, q.Unit, target)
	}
	return Quantity{Value: q.Value * from / to, Unit: target}, nil
}

// ConvertToSystem expresses q in the base units of system s, keeping no
// scale. Cross-system conversion is only possible when every dimension used
// maps one-to-one, so Therm energy cannot be re-expressed in IP mass units.
func ConvertToSystem(q Quantity, s System) (Quantity, error) {
	if q.Unit.system == s {
		return Quantity{Value: q.Value * math.Pow(10, float64(q.Unit.scale)), Unit: q.Unit.WithScale(0)}, nil
	}
	_, siExp := q.Unit.siExpansion()
	target := Unit{system: s}
	bases := siBases[s]
	remaining := siExp
	for i := NumDimensions - 1; i >= 0; i-- {
		b := bases[i]
		n, ok := multiple(remaining, b.exp)
		if !ok || n == 0 {
			continue
		}
		target.exp[i] = n
		for j := range remaining {
			remaining[j] -= b.exp[j] * n
		}
	}
	if remaining != (Exponents{}) {
		return Quantity{}, fmt.Errorf("%w: %s has no %s equivalent", ErrIncompatibleUnits, q.Unit, s)
	}
	return Convert(q, target)
}

// multiple reports how many times base divides the vector along base's
// leading dimension, when base is a single-dimension unit vector.
func multiple(v, base Exponents) (int, bool) {
	idx := -1
	for i, e := range base {
		if e != 0 {
			if idx >= 0 || e != 1 {
				return 0, false
			}
			idx = i
		}
	}
	if idx < 0 {
		return 0, false
	}
	return v[idx], true
}
