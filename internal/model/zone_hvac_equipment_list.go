package model

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/kingrea/openstudio/internal/idd"
)

// ZoneHVACEquipmentList orders the zone equipment serving a thermal zone.
// Each extensible group holds one piece of equipment with its cooling and
// heating sequence numbers.
type ZoneHVACEquipmentList struct {
	ModelObject
}

func NewZoneHVACEquipmentList(m *Model) ZoneHVACEquipmentList {
	return ZoneHVACEquipmentList{m.mustAdd(idd.ZoneHVACEquipmentList)}
}

// AddEquipment appends z last in both cooling and heating order.
func (l ZoneHVACEquipmentList) AddEquipment(z ZoneHVACComponent) (ExtensibleGroup, bool) {
	if _, ok := l.GroupFor(z); ok {
		return ExtensibleGroup{}, false
	}
	next := l.obj.NumGroups() + 1
	idx, err := l.obj.PushGroup(z.Handle().String(), strconv.Itoa(next), strconv.Itoa(next))
	if err != nil {
		l.logger().Debug("add equipment failed", zap.Error(err))
		return ExtensibleGroup{}, false
	}
	return ExtensibleGroup{owner: l.ModelObject, index: idx}, true
}

// RemoveEquipment drops z from the list.
func (l ZoneHVACEquipmentList) RemoveEquipment(z ZoneHVACComponent) bool {
	g, ok := l.GroupFor(z)
	if !ok {
		return false
	}
	return l.obj.EraseGroup(g.index) == nil
}

// Equipment returns the listed equipment in group order.
func (l ZoneHVACEquipmentList) Equipment() []ZoneHVACComponent {
	var out []ZoneHVACComponent
	for _, g := range l.ExtensibleGroups() {
		if o, ok := g.GetTarget(idd.ZoneHVACEquipmentListZoneEquipment); ok {
			out = append(out, ZoneHVACComponent{HVACComponent{o}})
		}
	}
	return out
}

func (l ZoneHVACEquipmentList) CoolingPriority(z ZoneHVACComponent) (int, bool) {
	g, ok := l.GroupFor(z)
	if !ok {
		return 0, false
	}
	return g.GetInt(idd.ZoneHVACEquipmentListZoneEquipmentCoolingSequence)
}

func (l ZoneHVACEquipmentList) SetCoolingPriority(z ZoneHVACComponent, v int) bool {
	g, ok := l.GroupFor(z)
	return ok && g.SetInt(idd.ZoneHVACEquipmentListZoneEquipmentCoolingSequence, v)
}

func (l ZoneHVACEquipmentList) HeatingPriority(z ZoneHVACComponent) (int, bool) {
	g, ok := l.GroupFor(z)
	if !ok {
		return 0, false
	}
	return g.GetInt(idd.ZoneHVACEquipmentListZoneEquipmentHeatingOrNoLoadSequence)
}

func (l ZoneHVACEquipmentList) SetHeatingPriority(z ZoneHVACComponent, v int) bool {
	g, ok := l.GroupFor(z)
	return ok && g.SetInt(idd.ZoneHVACEquipmentListZoneEquipmentHeatingOrNoLoadSequence, v)
}

// GroupFor returns the group listing z.
func (l ZoneHVACEquipmentList) GroupFor(z ZoneHVACComponent) (ExtensibleGroup, bool) {
	if z.IsNil() {
		return ExtensibleGroup{}, false
	}
	for _, g := range l.ExtensibleGroups() {
		if o, ok := g.GetTarget(idd.ZoneHVACEquipmentListZoneEquipment); ok && o.Handle() == z.Handle() {
			return g, true
		}
	}
	return ExtensibleGroup{}, false
}
