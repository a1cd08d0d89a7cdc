package model

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kingrea/openstudio/internal/idd"
)

var otherEquipmentScheduleSlots = map[int]string{
	idd.OtherEquipmentScheduleName: "Other Equipment",
}

// OtherEquipment is a space load instance of an OtherEquipmentDefinition.
type OtherEquipment struct {
	ModelObject
}

// NewOtherEquipment adds an instance of def.
func NewOtherEquipment(def OtherEquipmentDefinition) OtherEquipment {
	e := OtherEquipment{def.model.mustAdd(idd.OtherEquipment)}
	e.SetOtherEquipmentDefinition(def)
	return e
}

func (e OtherEquipment) OtherEquipmentDefinition() (OtherEquipmentDefinition, bool) {
	o, ok := e.getTarget(idd.OtherEquipmentEquipmentDefinitionName)
	if !ok {
		return OtherEquipmentDefinition{}, false
	}
	return OtherEquipmentDefinition{o}, true
}

func (e OtherEquipment) SetOtherEquipmentDefinition(def OtherEquipmentDefinition) bool {
	return e.setPointer(idd.OtherEquipmentEquipmentDefinitionName, def.ModelObject)
}

// Space returns the space the load is assigned to.
func (e OtherEquipment) Space() (Space, bool) {
	o, ok := e.getTarget(idd.OtherEquipmentSpaceName)
	if !ok {
		return Space{}, false
	}
	return Space{o}, true
}

func (e OtherEquipment) SetSpace(s Space) bool {
	return e.setPointer(idd.OtherEquipmentSpaceName, s.ModelObject)
}

func (e OtherEquipment) ResetSpace() { e.resetField(idd.OtherEquipmentSpaceName) }

// Schedule returns the directly assigned schedule. Schedules inherited from
// a schedule set are not modeled, so an unassigned schedule reports false.
func (e OtherEquipment) Schedule() (Schedule, bool) {
	o, ok := e.getTarget(idd.OtherEquipmentScheduleName)
	if !ok {
		return Schedule{}, false
	}
	return Schedule{o}, true
}

func (e OtherEquipment) IsScheduleDefaulted() bool {
	return e.IsEmpty(idd.OtherEquipmentScheduleName)
}

func (e OtherEquipment) SetSchedule(s Schedule) bool {
	return e.setSchedule(idd.OtherEquipmentScheduleName, ScheduleTypeKey{"OtherEquipment", "Other Equipment"}, s)
}

func (e OtherEquipment) ResetSchedule() { e.resetField(idd.OtherEquipmentScheduleName) }

func (e OtherEquipment) Multiplier() float64 { return e.getDouble(idd.OtherEquipmentMultiplier) }

func (e OtherEquipment) IsMultiplierDefaulted() bool {
	return e.IsEmpty(idd.OtherEquipmentMultiplier)
}

func (e OtherEquipment) SetMultiplier(v float64) bool {
	return e.setDouble(idd.OtherEquipmentMultiplier, v)
}

func (e OtherEquipment) ResetMultiplier() { e.resetField(idd.OtherEquipmentMultiplier) }

func (e OtherEquipment) EndUseSubcategory() string {
	return e.getString(idd.OtherEquipmentEndUseSubcategory)
}

func (e OtherEquipment) SetEndUseSubcategory(v string) bool {
	return e.setString(idd.OtherEquipmentEndUseSubcategory, v)
}

func (e OtherEquipment) ResetEndUseSubcategory() {
	e.resetField(idd.OtherEquipmentEndUseSubcategory)
}

// IsAbsolute reports whether the load does not scale with the space.
func (e OtherEquipment) IsAbsolute() bool {
	def, ok := e.OtherEquipmentDefinition()
	return ok && def.DesignLevelCalculationMethod() == MethodEquipmentLevel
}

func (e OtherEquipment) definition() (OtherEquipmentDefinition, error) {
	def, ok := e.OtherEquipmentDefinition()
	if !ok {
		return OtherEquipmentDefinition{}, fmt.Errorf("%w: %s has no definition", ErrDesignLevelUndefined, e.Name())
	}
	return def, nil
}

// GetDesignLevel returns the multiplied load in W.
func (e OtherEquipment) GetDesignLevel(floorArea, numPeople float64) (float64, error) {
	def, err := e.definition()
	if err != nil {
		return 0, err
	}
	v, err := def.GetDesignLevel(floorArea, numPeople)
	return v * e.Multiplier(), err
}

// GetPowerPerFloorArea returns the multiplied load in W/m^2.
func (e OtherEquipment) GetPowerPerFloorArea(floorArea, numPeople float64) (float64, error) {
	def, err := e.definition()
	if err != nil {
		return 0, err
	}
	v, err := def.GetPowerPerFloorArea(floorArea, numPeople)
	return v * e.Multiplier(), err
}

// GetPowerPerPerson returns the multiplied load in W/person.
func (e OtherEquipment) GetPowerPerPerson(floorArea, numPeople float64) (float64, error) {
	def, err := e.definition()
	if err != nil {
		return 0, err
	}
	v, err := def.GetPowerPerPerson(floorArea, numPeople)
	return v * e.Multiplier(), err
}

// HardSize converts the definition to an absolute design level computed for
// the assigned space. A definition shared with other instances is cloned
// first so they are unaffected.
func (e OtherEquipment) HardSize() bool {
	space, ok := e.Space()
	if !ok {
		return false
	}
	def, err := e.definition()
	if err != nil {
		return false
	}
	level, err := def.GetDesignLevel(space.FloorArea(), space.NumberOfPeople())
	if err != nil {
		e.logger().Debug("hard size failed", zap.Error(err))
		return false
	}
	if len(def.Instances()) > 1 {
		obj, err := def.obj.Clone()
		if err != nil {
			e.logger().Debug("clone definition failed", zap.Error(err))
			return false
		}
		def = OtherEquipmentDefinition{ModelObject{model: e.model, obj: obj}}
		if !e.SetOtherEquipmentDefinition(def) {
			return false
		}
	}
	return def.SetDesignLevel(level)
}

// HardApplySchedules stores the effective schedule on the instance.
func (e OtherEquipment) HardApplySchedules() bool {
	s, ok := e.Schedule()
	if !ok {
		return false
	}
	return e.SetSchedule(s)
}

// GetScheduleTypeKeys returns the slots of e that reference s.
func (e OtherEquipment) GetScheduleTypeKeys(s Schedule) []ScheduleTypeKey {
	return e.getScheduleTypeKeys(s, "OtherEquipment", otherEquipmentScheduleSlots)
}

func (e OtherEquipment) attributes() []Attribute {
	return append(e.ModelObject.attributes(),
		doubleAttr("multiplier", always(e.Multiplier), e.SetMultiplier, e.ResetMultiplier),
		boolAttr("isMultiplierDefaulted", e.IsMultiplierDefaulted, nil),
		boolAttr("isScheduleDefaulted", e.IsScheduleDefaulted, nil),
		boolAttr("isAbsolute", e.IsAbsolute, nil),
		stringAttr("endUseSubcategory", always(e.EndUseSubcategory), e.SetEndUseSubcategory, e.ResetEndUseSubcategory),
	)
}
