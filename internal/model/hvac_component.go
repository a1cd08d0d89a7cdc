package model

import (
	"fmt"

	"github.com/kingrea/openstudio/internal/idd"
)

// HVACComponent is an assembly that owns a supply air fan, such as a
// unitary system or a PIU terminal.
type HVACComponent struct {
	ModelObject
}

// ZoneHVACComponent is zone equipment that owns a supply air fan.
type ZoneHVACComponent struct {
	HVACComponent
}

func isZoneHVACType(t idd.ObjectType) bool {
	for _, z := range idd.ZoneHVACTypes {
		if z == t {
			return true
		}
	}
	return false
}

func isFanContainerType(t idd.ObjectType) bool {
	for _, c := range idd.FanContainerTypes {
		if c == t {
			return true
		}
	}
	return false
}

// NewHVACComponent adds an air loop assembly of type t.
func NewHVACComponent(m *Model, t idd.ObjectType) (HVACComponent, error) {
	if !isFanContainerType(t) || isZoneHVACType(t) {
		return HVACComponent{}, fmt.Errorf("model: %s is not an HVAC component", t)
	}
	return HVACComponent{m.mustAdd(t)}, nil
}

// NewZoneHVACComponent adds zone equipment of type t.
func NewZoneHVACComponent(m *Model, t idd.ObjectType) (ZoneHVACComponent, error) {
	if !isZoneHVACType(t) {
		return ZoneHVACComponent{}, fmt.Errorf("model: %s is not zone HVAC equipment", t)
	}
	return ZoneHVACComponent{HVACComponent{m.mustAdd(t)}}, nil
}

// SupplyAirFan returns the fan the assembly references.
func (c HVACComponent) SupplyAirFan() (FanConstantVolume, bool) {
	o, ok := c.getTarget(idd.FanContainerSupplyAirFanName)
	if !ok {
		return FanConstantVolume{}, false
	}
	return FanConstantVolume{o}, true
}

func (c HVACComponent) SetSupplyAirFan(fan FanConstantVolume) bool {
	return c.setPointer(idd.FanContainerSupplyAirFanName, fan.ModelObject)
}

func (c HVACComponent) ResetSupplyAirFan() {
	c.resetField(idd.FanContainerSupplyAirFanName)
}

// AvailabilitySchedule returns the assembly's schedule, if any.
func (c HVACComponent) AvailabilitySchedule() (Schedule, bool) {
	o, ok := c.getTarget(idd.FanContainerAvailabilityScheduleName)
	if !ok {
		return Schedule{}, false
	}
	return Schedule{o}, true
}

func (c HVACComponent) SetAvailabilitySchedule(s Schedule) bool {
	return c.setSchedule(idd.FanContainerAvailabilityScheduleName, ScheduleTypeKey{"HVACComponent", "Availability"}, s)
}
