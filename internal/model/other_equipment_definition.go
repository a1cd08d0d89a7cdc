package model

import (
	"errors"
	"fmt"

	"github.com/kingrea/openstudio/internal/idd"
)

// Design level calculation methods.
const (
	MethodEquipmentLevel = "EquipmentLevel"
	MethodWattsPerArea   = "Watts/Area"
	MethodWattsPerPerson = "Watts/Person"
)

// ErrDesignLevelUndefined is returned when a load cannot be computed from the
// definition's inputs.
var ErrDesignLevelUndefined = errors.New("model: design level undefined")

// OtherEquipmentDefinition holds the load that OtherEquipment instances
// share.
type OtherEquipmentDefinition struct {
	ModelObject
}

// NewOtherEquipmentDefinition adds a definition with a 0 W design level.
func NewOtherEquipmentDefinition(m *Model) OtherEquipmentDefinition {
	d := OtherEquipmentDefinition{m.mustAdd(idd.OtherEquipmentDefinition)}
	d.SetDesignLevel(0)
	return d
}

func (d OtherEquipmentDefinition) DesignLevelCalculationMethod() string {
	return d.getString(idd.OtherEquipmentDefinitionDesignLevelCalculationMethod)
}

// DesignLevel is in W and only set for the EquipmentLevel method.
func (d OtherEquipmentDefinition) DesignLevel() (float64, bool) {
	return d.obj.GetDouble(idd.OtherEquipmentDefinitionDesignLevel, false)
}

func (d OtherEquipmentDefinition) PowerPerSpaceFloorArea() (float64, bool) {
	return d.obj.GetDouble(idd.OtherEquipmentDefinitionPowerPerSpaceFloorArea, false)
}

func (d OtherEquipmentDefinition) PowerPerPerson() (float64, bool) {
	return d.obj.GetDouble(idd.OtherEquipmentDefinitionPowerPerPerson, false)
}

// SetDesignLevel switches the definition to the EquipmentLevel method.
func (d OtherEquipmentDefinition) SetDesignLevel(v float64) bool {
	return d.setMethod(MethodEquipmentLevel, idd.OtherEquipmentDefinitionDesignLevel, v)
}

// SetPowerPerSpaceFloorArea switches the definition to the Watts/Area method.
func (d OtherEquipmentDefinition) SetPowerPerSpaceFloorArea(v float64) bool {
	return d.setMethod(MethodWattsPerArea, idd.OtherEquipmentDefinitionPowerPerSpaceFloorArea, v)
}

// SetPowerPerPerson switches the definition to the Watts/Person method.
func (d OtherEquipmentDefinition) SetPowerPerPerson(v float64) bool {
	return d.setMethod(MethodWattsPerPerson, idd.OtherEquipmentDefinitionPowerPerPerson, v)
}

func (d OtherEquipmentDefinition) setMethod(method string, field int, v float64) bool {
	if !d.setDouble(field, v) {
		return false
	}
	for _, other := range []int{
		idd.OtherEquipmentDefinitionDesignLevel,
		idd.OtherEquipmentDefinitionPowerPerSpaceFloorArea,
		idd.OtherEquipmentDefinitionPowerPerPerson,
	} {
		if other != field {
			d.resetField(other)
		}
	}
	return d.setString(idd.OtherEquipmentDefinitionDesignLevelCalculationMethod, method)
}

func (d OtherEquipmentDefinition) FractionLatent() float64 {
	return d.getDouble(idd.OtherEquipmentDefinitionFractionLatent)
}

func (d OtherEquipmentDefinition) IsFractionLatentDefaulted() bool {
	return d.IsEmpty(idd.OtherEquipmentDefinitionFractionLatent)
}

func (d OtherEquipmentDefinition) SetFractionLatent(v float64) bool {
	return d.setFraction(idd.OtherEquipmentDefinitionFractionLatent, v)
}

func (d OtherEquipmentDefinition) ResetFractionLatent() {
	d.resetField(idd.OtherEquipmentDefinitionFractionLatent)
}

func (d OtherEquipmentDefinition) FractionRadiant() float64 {
	return d.getDouble(idd.OtherEquipmentDefinitionFractionRadiant)
}

func (d OtherEquipmentDefinition) IsFractionRadiantDefaulted() bool {
	return d.IsEmpty(idd.OtherEquipmentDefinitionFractionRadiant)
}

func (d OtherEquipmentDefinition) SetFractionRadiant(v float64) bool {
	return d.setFraction(idd.OtherEquipmentDefinitionFractionRadiant, v)
}

func (d OtherEquipmentDefinition) ResetFractionRadiant() {
	d.resetField(idd.OtherEquipmentDefinitionFractionRadiant)
}

func (d OtherEquipmentDefinition) FractionLost() float64 {
	return d.getDouble(idd.OtherEquipmentDefinitionFractionLost)
}

func (d OtherEquipmentDefinition) IsFractionLostDefaulted() bool {
	return d.IsEmpty(idd.OtherEquipmentDefinitionFractionLost)
}

func (d OtherEquipmentDefinition) SetFractionLost(v float64) bool {
	return d.setFraction(idd.OtherEquipmentDefinitionFractionLost, v)
}

func (d OtherEquipmentDefinition) ResetFractionLost() {
	d.resetField(idd.OtherEquipmentDefinitionFractionLost)
}

// setFraction keeps latent + radiant + lost at or below 1.
func (d OtherEquipmentDefinition) setFraction(field int, v float64) bool {
	sum := v
	for _, other := range []int{
		idd.OtherEquipmentDefinitionFractionLatent,
		idd.OtherEquipmentDefinitionFractionRadiant,
		idd.OtherEquipmentDefinitionFractionLost,
	} {
		if other != field {
			sum += d.getDouble(other)
		}
	}
	if sum > 1 {
		return false
	}
	return d.setDouble(field, v)
}

// GetDesignLevel returns the load in W for a space with the given floor area
// (m^2) and occupancy.
func (d OtherEquipmentDefinition) GetDesignLevel(floorArea, numPeople float64) (float64, error) {
	switch method := d.DesignLevelCalculationMethod(); method {
	case MethodEquipmentLevel:
		if v, ok := d.DesignLevel(); ok {
			return v, nil
		}
	case MethodWattsPerArea:
		if v, ok := d.PowerPerSpaceFloorArea(); ok {
			return v * floorArea, nil
		}
	case MethodWattsPerPerson:
		if v, ok := d.PowerPerPerson(); ok {
			return v * numPeople, nil
		}
	}
	return 0, fmt.Errorf("%w: %s has no value for %s", ErrDesignLevelUndefined, d.Name(), d.DesignLevelCalculationMethod())
}

// GetPowerPerFloorArea returns the load in W/m^2.
func (d OtherEquipmentDefinition) GetPowerPerFloorArea(floorArea, numPeople float64) (float64, error) {
	if d.DesignLevelCalculationMethod() == MethodWattsPerArea {
		if v, ok := d.PowerPerSpaceFloorArea(); ok {
			return v, nil
		}
	}
	if floorArea == 0 {
		return 0, fmt.Errorf("%w: floor area is zero", ErrDesignLevelUndefined)
	}
	level, err := d.GetDesignLevel(floorArea, numPeople)
	if err != nil {
		return 0, err
	}
	return level / floorArea, nil
}

// GetPowerPerPerson returns the load in W/person.
func (d OtherEquipmentDefinition) GetPowerPerPerson(floorArea, numPeople float64) (float64, error) {
	if d.DesignLevelCalculationMethod() == MethodWattsPerPerson {
		if v, ok := d.PowerPerPerson(); ok {
			return v, nil
		}
	}
	if numPeople == 0 {
		return 0, fmt.Errorf("%w: number of people is zero", ErrDesignLevelUndefined)
	}
	level, err := d.GetDesignLevel(floorArea, numPeople)
	if err != nil {
		return 0, err
	}
	return level / numPeople, nil
}

// Instances returns the equipment that use d.
func (d OtherEquipmentDefinition) Instances() []OtherEquipment {
	var out []OtherEquipment
	for _, e := range d.model.OtherEquipments() {
		if def, ok := e.OtherEquipmentDefinition(); ok && def.Handle() == d.Handle() {
			out = append(out, e)
		}
	}
	return out
}

func (d OtherEquipmentDefinition) attributes() []Attribute {
	return append(d.ModelObject.attributes(),
		stringAttr("designLevelCalculationMethod", always(d.DesignLevelCalculationMethod), nil, nil),
		doubleAttr("designLevel", d.DesignLevel, d.SetDesignLevel, nil),
		doubleAttr("powerPerSpaceFloorArea", d.PowerPerSpaceFloorArea, d.SetPowerPerSpaceFloorArea, nil),
		doubleAttr("powerPerPerson", d.PowerPerPerson, d.SetPowerPerPerson, nil),
		doubleAttr("fractionLatent", always(d.FractionLatent), d.SetFractionLatent, d.ResetFractionLatent),
		boolAttr("isFractionLatentDefaulted", d.IsFractionLatentDefaulted, nil),
		doubleAttr("fractionRadiant", always(d.FractionRadiant), d.SetFractionRadiant, d.ResetFractionRadiant),
		boolAttr("isFractionRadiantDefaulted", d.IsFractionRadiantDefaulted, nil),
		doubleAttr("fractionLost", always(d.FractionLost), d.SetFractionLost, d.ResetFractionLost),
		boolAttr("isFractionLostDefaulted", d.IsFractionLostDefaulted, nil),
	)
}
