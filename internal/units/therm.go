package units

// ThermExpnt names the exponents of a Therm unit. The zero value is
// dimensionless.
type ThermExpnt struct {
	Therm  int
	In     int
	Yr     int
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

// Exponents returns the vector in Therm base order.
func (e ThermExpnt) Exponents() Exponents {
	return Exponents{e.Therm, e.In, e.Yr, e.R, e.A, e.Cd, e.Lbmol, e.Deg, e.Sr, e.People, e.Cycle, e.Dollar}
}

// ThermUnit is a unit with base units therm, in, yr, R, A, cd, lbmol, deg,
// sr, people, cycle and $.
//
//	u := units.ThermUnit(units.ThermExpnt{Therm: 1}, 0, "")
//	u.String() // "therm"
func ThermUnit(exp ThermExpnt, scaleExponent int, prettyString string) Unit {
	return NewUnit(Therm, exp.Exponents(), scaleExponent, prettyString)
}

// ThermUnitWithScale builds a Therm unit with the scale given by abbreviation.
func ThermUnitWithScale(scaleAbbr string, exp ThermExpnt, prettyString string) (Unit, error) {
	return NewUnitWithScale(Therm, scaleAbbr, exp.Exponents(), prettyString)
}

func ThermEnergy() Unit            { return ThermUnit(ThermExpnt{Therm: 1}, 0, "") }
func ThermLength() Unit            { return ThermUnit(ThermExpnt{In: 1}, 0, "") }
func ThermTime() Unit              { return ThermUnit(ThermExpnt{Yr: 1}, 0, "") }
func ThermTemperature() Unit       { return ThermUnit(ThermExpnt{R: 1}, 0, "") }
func ThermElectricCurrent() Unit   { return ThermUnit(ThermExpnt{A: 1}, 0, "") }
func ThermLuminousIntensity() Unit { return ThermUnit(ThermExpnt{Cd: 1}, 0, "") }
func ThermAmountOfSubstance() Unit { return ThermUnit(ThermExpnt{Lbmol: 1}, 0, "") }
func ThermAngle() Unit             { return ThermUnit(ThermExpnt{Deg: 1}, 0, "") }
func ThermSolidAngle() Unit        { return ThermUnit(ThermExpnt{Sr: 1}, 0, "") }
func ThermPeople() Unit            { return ThermUnit(ThermExpnt{People: 1}, 0, "") }
func ThermCycle() Unit             { return ThermUnit(ThermExpnt{Cycle: 1}, 0, "") }
func ThermCurrency() Unit          { return ThermUnit(ThermExpnt{Dollar: 1}, 0, "") }

// ThermLuminousFlux is the lumen, cd*sr.
func ThermLuminousFlux() Unit { return ThermUnit(ThermExpnt{Cd: 1, Sr: 1}, 0, "lm") }
