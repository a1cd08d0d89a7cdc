package units

// SIExpnt names the exponents of an SI unit.
type SIExpnt struct {
	Kg     int
	M      int
	S      int
	K      int
	A      int
	Cd     int
	Mol    int
	Rad    int
	Sr     int
	People int
	Cycle  int
	Dollar int
}

// Exponents returns the vector in SI base order.
func (e SIExpnt) Exponents() Exponents {
	return Exponents{e.Kg, e.M, e.S, e.K, e.A, e.Cd, e.Mol, e.Rad, e.Sr, e.People, e.Cycle, e.Dollar}
}

// SIUnit builds an SI unit.
func SIUnit(exp SIExpnt, scaleExponent int, prettyString string) Unit {
	return NewUnit(SI, exp.Exponents(), scaleExponent, prettyString)
}

func SIMass() Unit        { return SIUnit(SIExpnt{Kg: 1}, 0, "") }
func SILength() Unit      { return SIUnit(SIExpnt{M: 1}, 0, "") }
func SITime() Unit        { return SIUnit(SIExpnt{S: 1}, 0, "") }
func SITemperature() Unit { return SIUnit(SIExpnt{K: 1}, 0, "") }
func SIEnergy() Unit      { return SIUnit(SIExpnt{Kg: 1, M: 2, S: -2}, 0, "J") }
func SIPower() Unit       { return SIUnit(SIExpnt{Kg: 1, M: 2, S: -3}, 0, "W") }
func SIPressure() Unit    { return SIUnit(SIExpnt{Kg: 1, M: -1, S: -2}, 0, "Pa") }

// IPExpnt names the exponents of an IP unit.
type IPExpnt struct {
	LbM    int
	Ft     int
	S      int
	R      int
	A      int
	Cd     int
	Lbmol  int
	Deg    int
	Sr     int
	People int
	Cycle  int
	Dollar int
}

// Exponents returns the vector in IP base order.
func (e IPExpnt) Exponents() Exponents {
	return Exponents{e.LbM, e.Ft, e.S, e.R, e.A, e.Cd, e.Lbmol, e.Deg, e.Sr, e.People, e.Cycle, e.Dollar}
}

// IPUnit builds an IP unit.
func IPUnit(exp IPExpnt, scaleExponent int, prettyString string) Unit {
	return NewUnit(IP, exp.Exponents(), scaleExponent, prettyString)
}

func IPMass() Unit   { return IPUnit(IPExpnt{LbM: 1}, 0, "") }
func IPLength() Unit { return IPUnit(IPExpnt{Ft: 1}, 0, "") }
func IPAngle() Unit  { return IPUnit(IPExpnt{Deg: 1}, 0, "") }
