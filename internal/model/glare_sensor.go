package model

import (
	"github.com/kingrea/openstudio/internal/idd"
)

// GlareSensor is a daylighting glare reference point within a space.
type GlareSensor struct {
	ModelObject
}

func NewGlareSensor(m *Model) GlareSensor {
	return GlareSensor{m.mustAdd(idd.GlareSensor)}
}

func (g GlareSensor) Space() (Space, bool) {
	o, ok := g.getTarget(idd.GlareSensorSpaceName)
	if !ok {
		return Space{}, false
	}
	return Space{o}, true
}

func (g GlareSensor) SetSpace(s Space) bool { return g.setPointer(idd.GlareSensorSpaceName, s.ModelObject) }

func (g GlareSensor) ResetSpace() { g.resetField(idd.GlareSensorSpaceName) }

// Position coordinates are in m, rotations in degrees.

func (g GlareSensor) PositionXCoordinate() float64 {
	return g.getDouble(idd.GlareSensorPositionXCoordinate)
}

func (g GlareSensor) SetPositionXCoordinate(v float64) bool {
	return g.setDouble(idd.GlareSensorPositionXCoordinate, v)
}

func (g GlareSensor) PositionYCoordinate() float64 {
	return g.getDouble(idd.GlareSensorPositionYCoordinate)
}

func (g GlareSensor) SetPositionYCoordinate(v float64) bool {
	return g.setDouble(idd.GlareSensorPositionYCoordinate, v)
}

func (g GlareSensor) PositionZCoordinate() float64 {
	return g.getDouble(idd.GlareSensorPositionZCoordinate)
}

func (g GlareSensor) SetPositionZCoordinate(v float64) bool {
	return g.setDouble(idd.GlareSensorPositionZCoordinate, v)
}

func (g GlareSensor) PsiRotationAroundXAxis() float64 {
	return g.getDouble(idd.GlareSensorPsiRotationAroundXAxis)
}

func (g GlareSensor) SetPsiRotationAroundXAxis(v float64) bool {
	return g.setDouble(idd.GlareSensorPsiRotationAroundXAxis, v)
}

func (g GlareSensor) ThetaRotationAroundYAxis() float64 {
	return g.getDouble(idd.GlareSensorThetaRotationAroundYAxis)
}

func (g GlareSensor) SetThetaRotationAroundYAxis(v float64) bool {
	return g.setDouble(idd.GlareSensorThetaRotationAroundYAxis, v)
}

func (g GlareSensor) PhiRotationAroundZAxis() float64 {
	return g.getDouble(idd.GlareSensorPhiRotationAroundZAxis)
}

func (g GlareSensor) SetPhiRotationAroundZAxis(v float64) bool {
	return g.setDouble(idd.GlareSensorPhiRotationAroundZAxis, v)
}

func (g GlareSensor) NumberOfGlareViewVectors() int {
	return g.getInt(idd.GlareSensorNumberOfGlareViewVectors)
}

func (g GlareSensor) IsNumberOfGlareViewVectorsDefaulted() bool {
	return g.IsEmpty(idd.GlareSensorNumberOfGlareViewVectors)
}

// SetNumberOfGlareViewVectors accepts 1 through 4.
func (g GlareSensor) SetNumberOfGlareViewVectors(v int) bool {
	return g.setInt(idd.GlareSensorNumberOfGlareViewVectors, v)
}

func (g GlareSensor) ResetNumberOfGlareViewVectors() {
	g.resetField(idd.GlareSensorNumberOfGlareViewVectors)
}

func (g GlareSensor) MaximumAllowableDaylightGlareIndex() (float64, bool) {
	return g.obj.GetDouble(idd.GlareSensorMaximumAllowableDaylightGlareIndex, true)
}

func (g GlareSensor) IsMaximumAllowableDaylightGlareIndexDefaulted() bool {
	return g.IsEmpty(idd.GlareSensorMaximumAllowableDaylightGlareIndex)
}

func (g GlareSensor) SetMaximumAllowableDaylightGlareIndex(v float64) bool {
	return g.setDouble(idd.GlareSensorMaximumAllowableDaylightGlareIndex, v)
}

func (g GlareSensor) ResetMaximumAllowableDaylightGlareIndex() {
	g.resetField(idd.GlareSensorMaximumAllowableDaylightGlareIndex)
}

func (g GlareSensor) attributes() []Attribute {
	return append(g.ModelObject.attributes(),
		doubleAttr("positionXCoordinate", always(g.PositionXCoordinate), g.SetPositionXCoordinate, nil),
		doubleAttr("positionYCoordinate", always(g.PositionYCoordinate), g.SetPositionYCoordinate, nil),
		doubleAttr("positionZCoordinate", always(g.PositionZCoordinate), g.SetPositionZCoordinate, nil),
		doubleAttr("psiRotationAroundXAxis", always(g.PsiRotationAroundXAxis), g.SetPsiRotationAroundXAxis, nil),
		doubleAttr("thetaRotationAroundYAxis", always(g.ThetaRotationAroundYAxis), g.SetThetaRotationAroundYAxis, nil),
		doubleAttr("phiRotationAroundZAxis", always(g.PhiRotationAroundZAxis), g.SetPhiRotationAroundZAxis, nil),
		intAttr("numberOfGlareViewVectors", always(g.NumberOfGlareViewVectors), g.SetNumberOfGlareViewVectors, g.ResetNumberOfGlareViewVectors),
		boolAttr("isNumberOfGlareViewVectorsDefaulted", g.IsNumberOfGlareViewVectorsDefaulted, nil),
		doubleAttr("maximumAllowableDaylightGlareIndex", g.MaximumAllowableDaylightGlareIndex, g.SetMaximumAllowableDaylightGlareIndex, g.ResetMaximumAllowableDaylightGlareIndex),
		boolAttr("isMaximumAllowableDaylightGlareIndexDefaulted", g.IsMaximumAllowableDaylightGlareIndexDefaulted, nil),
	)
}
