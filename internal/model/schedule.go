package model

import (
	"go.uber.org/zap"

	"github.com/kingrea/openstudio/internal/idd"
)

// ScheduleTypeKey names a schedule slot: the owning class and the display
// name of the slot.
type ScheduleTypeKey struct {
	ClassName           string
	ScheduleDisplayName string
}

// ScheduleType describes the values a schedule slot accepts.
type ScheduleType struct {
	Key          ScheduleTypeKey
	IsContinuous bool
	LowerLimit   *float64
	UpperLimit   *float64
	UnitType     string
}

func limit(v float64) *float64 { return &v }

var scheduleTypes = []ScheduleType{
	{
		Key:        ScheduleTypeKey{"FanConstantVolume", "Availability"},
		LowerLimit: limit(0),
		UpperLimit: limit(1),
		UnitType:   "Availability",
	},
	{
		Key:          ScheduleTypeKey{"OtherEquipment", "Other Equipment"},
		IsContinuous: true,
		LowerLimit:   limit(0),
		UpperLimit:   limit(1),
		UnitType:     "Dimensionless",
	},
	{
		Key:        ScheduleTypeKey{"HVACComponent", "Availability"},
		LowerLimit: limit(0),
		UpperLimit: limit(1),
		UnitType:   "Availability",
	},
}

// LookupScheduleType returns the registered schedule type for key.
func LookupScheduleType(key ScheduleTypeKey) (ScheduleType, bool) {
	for _, st := range scheduleTypes {
		if st.Key == key {
			return st, true
		}
	}
	return ScheduleType{}, false
}

// Compatible reports whether limits fit inside st. Continuous limits never
// satisfy a discrete slot and limits must sit within the slot's range.
func (st ScheduleType) Compatible(limits ScheduleTypeLimits) bool {
	if !st.IsContinuous && limits.NumericType() == "Continuous" {
		return false
	}
	if st.LowerLimit != nil {
		lower, ok := limits.LowerLimitValue()
		if !ok || lower < *st.LowerLimit {
			return false
		}
	}
	if st.UpperLimit != nil {
		upper, ok := limits.UpperLimitValue()
		if !ok || upper > *st.UpperLimit {
			return false
		}
	}
	return true
}

// setSchedule points field i at s after checking s against the schedule type
// registered for key. A schedule without type limits is given matching
// limits.
func (o ModelObject) setSchedule(i int, key ScheduleTypeKey, s Schedule) bool {
	if s.IsNil() {
		return false
	}
	st, ok := LookupScheduleType(key)
	if !ok {
		o.logger().Warn("no schedule type registered", zap.String("class", key.ClassName), zap.String("slot", key.ScheduleDisplayName))
		return false
	}
	if limits, ok := s.ScheduleTypeLimits(); ok {
		if !st.Compatible(limits) {
			o.logger().Debug("schedule type limits incompatible",
				zap.String("schedule", s.Name()), zap.String("limits", limits.Name()))
			return false
		}
	} else if !s.SetScheduleTypeLimits(o.model.typeLimitsFor(st)) {
		return false
	}
	return o.setPointer(i, s.ModelObject)
}

// typeLimitsFor finds or creates limits that satisfy st exactly.
func (m *Model) typeLimitsFor(st ScheduleType) ScheduleTypeLimits {
	if !st.IsContinuous && st.UnitType == "Availability" {
		return m.onOffTypeLimits()
	}
	numeric := "Discrete"
	if st.IsContinuous {
		numeric = "Continuous"
	}
	for _, l := range concrete(m, idd.ScheduleTypeLimits, func(o ModelObject) ScheduleTypeLimits { return ScheduleTypeLimits{o} }) {
		if l.NumericType() == numeric && l.UnitType() == st.UnitType && sameLimit(l.LowerLimitValue, st.LowerLimit) && sameLimit(l.UpperLimitValue, st.UpperLimit) {
			return l
		}
	}
	limits := NewScheduleTypeLimits(m)
	if st.IsContinuous && st.UnitType == "Dimensionless" {
		limits.SetName("Fractional")
	}
	if st.LowerLimit != nil {
		limits.SetLowerLimitValue(*st.LowerLimit)
	}
	if st.UpperLimit != nil {
		limits.SetUpperLimitValue(*st.UpperLimit)
	}
	limits.SetNumericType(numeric)
	limits.SetUnitType(st.UnitType)
	return limits
}

func sameLimit(get func() (float64, bool), want *float64) bool {
	v, ok := get()
	if want == nil {
		return !ok
	}
	return ok && v == *want
}

// Schedule is a constant-valued schedule.
type Schedule struct {
	ModelObject
}

// NewScheduleConstant adds a constant schedule with value 0.
func NewScheduleConstant(m *Model) Schedule {
	return Schedule{m.mustAdd(idd.ScheduleConstant)}
}

func (s Schedule) Value() float64 { return s.getDouble(idd.ScheduleConstantValue) }

func (s Schedule) SetValue(v float64) bool { return s.setDouble(idd.ScheduleConstantValue, v) }

// ScheduleTypeLimits returns the limits the schedule is tagged with.
func (s Schedule) ScheduleTypeLimits() (ScheduleTypeLimits, bool) {
	o, ok := s.getTarget(idd.ScheduleConstantScheduleTypeLimitsName)
	if !ok {
		return ScheduleTypeLimits{}, false
	}
	return ScheduleTypeLimits{o}, true
}

func (s Schedule) SetScheduleTypeLimits(l ScheduleTypeLimits) bool {
	return s.setPointer(idd.ScheduleConstantScheduleTypeLimitsName, l.ModelObject)
}

func (s Schedule) ResetScheduleTypeLimits() {
	s.resetField(idd.ScheduleConstantScheduleTypeLimitsName)
}

func (s Schedule) attributes() []Attribute {
	return append(s.ModelObject.attributes(),
		doubleAttr("value", always(s.Value), s.SetValue, nil),
	)
}

// ScheduleTypeLimits bounds the values of the schedules tagged with it.
type ScheduleTypeLimits struct {
	ModelObject
}

// NewScheduleTypeLimits adds unbounded limits.
func NewScheduleTypeLimits(m *Model) ScheduleTypeLimits {
	return ScheduleTypeLimits{m.mustAdd(idd.ScheduleTypeLimits)}
}

func (l ScheduleTypeLimits) LowerLimitValue() (float64, bool) {
	return l.obj.GetDouble(idd.ScheduleTypeLimitsLowerLimitValue, false)
}

func (l ScheduleTypeLimits) SetLowerLimitValue(v float64) bool {
	return l.setDouble(idd.ScheduleTypeLimitsLowerLimitValue, v)
}

func (l ScheduleTypeLimits) UpperLimitValue() (float64, bool) {
	return l.obj.GetDouble(idd.ScheduleTypeLimitsUpperLimitValue, false)
}

func (l ScheduleTypeLimits) SetUpperLimitValue(v float64) bool {
	return l.setDouble(idd.ScheduleTypeLimitsUpperLimitValue, v)
}

// NumericType is "Continuous", "Discrete" or "" when unset.
func (l ScheduleTypeLimits) NumericType() string {
	return l.getString(idd.ScheduleTypeLimitsNumericType)
}

func (l ScheduleTypeLimits) SetNumericType(v string) bool {
	return l.setString(idd.ScheduleTypeLimitsNumericType, v)
}

func (l ScheduleTypeLimits) UnitType() string {
	return l.getString(idd.ScheduleTypeLimitsUnitType)
}

func (l ScheduleTypeLimits) SetUnitType(v string) bool {
	return l.setString(idd.ScheduleTypeLimitsUnitType, v)
}

// getScheduleTypeKeys returns the keys of the slots of o that reference s.
func (o ModelObject) getScheduleTypeKeys(s Schedule, className string, slots map[int]string) []ScheduleTypeKey {
	if s.IsNil() {
		return nil
	}
	var out []ScheduleTypeKey
	for _, i := range o.obj.Sources(s.Handle()) {
		if name, ok := slots[i]; ok {
			out = append(out, ScheduleTypeKey{className, name})
		}
	}
	return out
}
