package model

import (
	"go.uber.org/zap"

	"github.com/kingrea/openstudio/internal/idd"
	"github.com/kingrea/openstudio/internal/units"
)

var fanScheduleSlots = map[int]string{
	idd.FanConstantVolumeAvailabilityScheduleName: "Availability",
}

// FanConstantVolume is a constant volume supply fan.
type FanConstantVolume struct {
	ModelObject
}

// NewFanConstantVolume adds a fan that runs on the always-on schedule.
func NewFanConstantVolume(m *Model) FanConstantVolume {
	return NewFanConstantVolumeWithSchedule(m, m.AlwaysOnDiscreteSchedule())
}

// NewFanConstantVolumeWithSchedule adds a fan with an explicit availability
// schedule. The maximum flow rate starts autosized.
func NewFanConstantVolumeWithSchedule(m *Model, s Schedule) FanConstantVolume {
	fan := FanConstantVolume{m.mustAdd(idd.FanConstantVolume)}
	if !fan.SetAvailabilitySchedule(s) {
		fan.logger().Warn("availability schedule rejected, using always on", zap.String("schedule", s.Name()))
		fan.SetAvailabilitySchedule(m.AlwaysOnDiscreteSchedule())
	}
	fan.setString(idd.FanConstantVolumeMaximumFlowRate, "AutoSize")
	fan.setString(idd.FanConstantVolumeEndUseSubcategory, "")
	return fan
}

// AvailabilitySchedule returns the fan's schedule. A missing schedule is
// replaced by the always-on schedule, persisted and logged.
func (f FanConstantVolume) AvailabilitySchedule() Schedule {
	if o, ok := f.getTarget(idd.FanConstantVolumeAvailabilityScheduleName); ok {
		return Schedule{o}
	}
	s := f.model.AlwaysOnDiscreteSchedule()
	f.logger().Warn("required availability schedule not set, using always on", zap.String("fan", f.Name()))
	f.setPointer(idd.FanConstantVolumeAvailabilityScheduleName, s.ModelObject)
	return s
}

func (f FanConstantVolume) SetAvailabilitySchedule(s Schedule) bool {
	return f.setSchedule(idd.FanConstantVolumeAvailabilityScheduleName, ScheduleTypeKey{"FanConstantVolume", "Availability"}, s)
}

func (f FanConstantVolume) FanEfficiency() float64 {
	return f.getDouble(idd.FanConstantVolumeFanEfficiency)
}

func (f FanConstantVolume) SetFanEfficiency(v float64) bool {
	return f.setDouble(idd.FanConstantVolumeFanEfficiency, v)
}

func (f FanConstantVolume) PressureRise() float64 {
	return f.getDouble(idd.FanConstantVolumePressureRise)
}

func (f FanConstantVolume) SetPressureRise(v float64) bool {
	return f.setDouble(idd.FanConstantVolumePressureRise, v)
}

func (f FanConstantVolume) MotorEfficiency() float64 {
	return f.getDouble(idd.FanConstantVolumeMotorEfficiency)
}

func (f FanConstantVolume) SetMotorEfficiency(v float64) bool {
	return f.setDouble(idd.FanConstantVolumeMotorEfficiency, v)
}

func (f FanConstantVolume) MotorInAirstreamFraction() float64 {
	return f.getDouble(idd.FanConstantVolumeMotorInAirstreamFraction)
}

func (f FanConstantVolume) SetMotorInAirstreamFraction(v float64) bool {
	return f.setDouble(idd.FanConstantVolumeMotorInAirstreamFraction, v)
}

func (f FanConstantVolume) EndUseSubcategory() string {
	return f.getString(idd.FanConstantVolumeEndUseSubcategory)
}

func (f FanConstantVolume) SetEndUseSubcategory(v string) bool {
	return f.setString(idd.FanConstantVolumeEndUseSubcategory, v)
}

// MaximumFlowRate returns the flow rate in m^3/s. It reports false while the
// field is autosized or unset.
func (f FanConstantVolume) MaximumFlowRate() (float64, bool) {
	return f.obj.GetDouble(idd.FanConstantVolumeMaximumFlowRate, true)
}

// MaximumFlowRateQuantity returns the flow rate tagged with SI or IP units.
func (f FanConstantVolume) MaximumFlowRateQuantity(returnIP bool) (units.Quantity, bool) {
	return f.GetQuantity(idd.FanConstantVolumeMaximumFlowRate, returnIP)
}

// IsMaximumFlowRateAutosized reports whether the stored text is "autosize",
// ignoring case.
func (f FanConstantVolume) IsMaximumFlowRateAutosized() bool {
	return f.isSentinel(idd.FanConstantVolumeMaximumFlowRate, idd.Autosize)
}

func (f FanConstantVolume) SetMaximumFlowRate(v float64) bool {
	return f.setDouble(idd.FanConstantVolumeMaximumFlowRate, v)
}

// SetOptionalMaximumFlowRate stores *v, or resets the field when v is nil.
func (f FanConstantVolume) SetOptionalMaximumFlowRate(v *float64) bool {
	if v == nil {
		f.ResetMaximumFlowRate()
		return true
	}
	return f.SetMaximumFlowRate(*v)
}

// SetMaximumFlowRateQuantity stores q after converting it to m^3/s.
func (f FanConstantVolume) SetMaximumFlowRateQuantity(q units.Quantity) bool {
	return f.SetQuantity(idd.FanConstantVolumeMaximumFlowRate, q)
}

func (f FanConstantVolume) ResetMaximumFlowRate() {
	f.resetField(idd.FanConstantVolumeMaximumFlowRate)
}

func (f FanConstantVolume) AutosizeMaximumFlowRate() {
	f.setString(idd.FanConstantVolumeMaximumFlowRate, "AutoSize")
}

func (f FanConstantVolume) InletPort() int { return idd.FanConstantVolumeAirInletNodeName }

func (f FanConstantVolume) OutletPort() int { return idd.FanConstantVolumeAirOutletNodeName }

// ContainingHVACComponent returns the air loop assembly whose supply air fan
// is f.
func (f FanConstantVolume) ContainingHVACComponent() (HVACComponent, bool) {
	for _, t := range idd.FanContainerTypes {
		if isZoneHVACType(t) {
			continue
		}
		if c, ok := f.findContainer(t); ok {
			return c, true
		}
	}
	return HVACComponent{}, false
}

// ContainingZoneHVACComponent returns the zone equipment whose supply air fan
// is f.
func (f FanConstantVolume) ContainingZoneHVACComponent() (ZoneHVACComponent, bool) {
	for _, t := range idd.ZoneHVACTypes {
		if c, ok := f.findContainer(t); ok {
			return ZoneHVACComponent{c}, true
		}
	}
	return ZoneHVACComponent{}, false
}

func (f FanConstantVolume) findContainer(t idd.ObjectType) (HVACComponent, bool) {
	for _, obj := range f.model.ws.ObjectsByType(t) {
		c := HVACComponent{ModelObject{model: f.model, obj: obj}}
		if fan, ok := c.SupplyAirFan(); ok && fan.Handle() == f.Handle() {
			return c, true
		}
	}
	return HVACComponent{}, false
}

// Clone copies the fan within its model. The clone keeps the availability
// schedule but is not connected to any container.
func (f FanConstantVolume) Clone() FanConstantVolume {
	obj, err := f.obj.Clone()
	if err != nil {
		f.logger().Error("clone failed", zap.Error(err))
		return FanConstantVolume{}
	}
	return FanConstantVolume{ModelObject{model: f.model, obj: obj}}
}

// GetScheduleTypeKeys returns the slots of f that reference s.
func (f FanConstantVolume) GetScheduleTypeKeys(s Schedule) []ScheduleTypeKey {
	return f.getScheduleTypeKeys(s, "FanConstantVolume", fanScheduleSlots)
}

// OutputVariableNames lists the report variables the fan produces. None are
// modeled.
func (f FanConstantVolume) OutputVariableNames() []string { return nil }

func (f FanConstantVolume) attributes() []Attribute {
	return append(f.ModelObject.attributes(),
		doubleAttr("fanEfficiency", always(f.FanEfficiency), f.SetFanEfficiency, nil),
		doubleAttr("pressureRise", always(f.PressureRise), f.SetPressureRise, nil),
		doubleAttr("maximumFlowRate", f.MaximumFlowRate, f.SetMaximumFlowRate, f.ResetMaximumFlowRate),
		boolAttr("isMaximumFlowRateAutosized", f.IsMaximumFlowRateAutosized, func(v bool) bool {
			if !v {
				return false
			}
			f.AutosizeMaximumFlowRate()
			return true
		}),
		doubleAttr("motorEfficiency", always(f.MotorEfficiency), f.SetMotorEfficiency, nil),
		doubleAttr("motorInAirstreamFraction", always(f.MotorInAirstreamFraction), f.SetMotorInAirstreamFraction, nil),
		stringAttr("endUseSubcategory", always(f.EndUseSubcategory), f.SetEndUseSubcategory, nil),
	)
}
