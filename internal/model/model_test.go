package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kingrea/openstudio/internal/idd"
	"github.com/kingrea/openstudio/internal/units"
)

func newObservedModel(t *testing.T) (*Model, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return New(WithLogger(zap.New(core))), logs
}

func warnings(logs *observer.ObservedLogs) int {
	return logs.FilterLevelExact(zapcore.WarnLevel).Len()
}

func TestAlwaysOnDiscreteScheduleIsIdempotent(t *testing.T) {
	m := New()
	first := m.AlwaysOnDiscreteSchedule()
	second := m.AlwaysOnDiscreteSchedule()

	assert.Equal(t, first.Handle(), second.Handle())
	assert.Equal(t, AlwaysOnDiscreteName, first.Name())
	assert.Equal(t, 1.0, first.Value())

	limits, ok := first.ScheduleTypeLimits()
	require.True(t, ok)
	assert.Equal(t, "Discrete", limits.NumericType())
	lower, _ := limits.LowerLimitValue()
	upper, _ := limits.UpperLimitValue()
	assert.Equal(t, 0.0, lower)
	assert.Equal(t, 1.0, upper)
	assert.Len(t, m.Schedules(), 1)
}

func TestNewFanConstantVolumeDefaults(t *testing.T) {
	m, logs := newObservedModel(t)
	fan := NewFanConstantVolume(m)

	assert.True(t, fan.IsMaximumFlowRateAutosized())
	_, ok := fan.MaximumFlowRate()
	assert.False(t, ok)
	assert.Equal(t, AlwaysOnDiscreteName, fan.AvailabilitySchedule().Name())
	assert.Equal(t, 0.7, fan.FanEfficiency())
	assert.Equal(t, 250.0, fan.PressureRise())
	assert.Equal(t, 0.9, fan.MotorEfficiency())
	assert.Equal(t, 1.0, fan.MotorInAirstreamFraction())
	assert.Equal(t, "General", fan.EndUseSubcategory())
	assert.Equal(t, 0, warnings(logs))
}

func TestMaximumFlowRateAutosizeStates(t *testing.T) {
	fan := NewFanConstantVolume(New())
	obj := fan.WorkspaceObject()

	require.NoError(t, obj.SetString(idd.FanConstantVolumeMaximumFlowRate, "AUTOSIZE"))
	assert.True(t, fan.IsMaximumFlowRateAutosized())

	require.True(t, fan.SetMaximumFlowRate(2.5))
	assert.False(t, fan.IsMaximumFlowRateAutosized())
	v, ok := fan.MaximumFlowRate()
	require.True(t, ok)
	assert.Equal(t, 2.5, v)

	fan.AutosizeMaximumFlowRate()
	assert.True(t, fan.IsMaximumFlowRateAutosized())

	require.True(t, fan.SetOptionalMaximumFlowRate(nil))
	assert.True(t, fan.IsEmpty(idd.FanConstantVolumeMaximumFlowRate))
	assert.False(t, fan.IsMaximumFlowRateAutosized())

	assert.False(t, fan.SetMaximumFlowRate(-1))
}

func TestAvailabilityScheduleRepairLogsOnce(t *testing.T) {
	m, logs := newObservedModel(t)
	fan := NewFanConstantVolume(m)
	original := fan.AvailabilitySchedule()
	require.True(t, original.Remove())
	require.True(t, fan.IsEmpty(idd.FanConstantVolumeAvailabilityScheduleName))

	repaired := fan.AvailabilitySchedule()
	assert.Equal(t, AlwaysOnDiscreteName, repaired.Name())
	assert.False(t, fan.IsEmpty(idd.FanConstantVolumeAvailabilityScheduleName))
	assert.Equal(t, 1, warnings(logs))

	again := fan.AvailabilitySchedule()
	assert.Equal(t, repaired.Handle(), again.Handle())
	assert.Equal(t, 1, warnings(logs))

	entry := logs.FilterLevelExact(zapcore.WarnLevel).All()[0]
	assert.Equal(t, "openstudio.model.FanConstantVolume", entry.LoggerName)
}

func TestSetAvailabilityScheduleChecksTypeLimits(t *testing.T) {
	m := New()
	fan := NewFanConstantVolume(m)

	continuous := NewScheduleTypeLimits(m)
	continuous.SetLowerLimitValue(0)
	continuous.SetUpperLimitValue(1)
	continuous.SetNumericType("Continuous")
	fractional := NewScheduleConstant(m)
	fractional.SetScheduleTypeLimits(continuous)
	assert.False(t, fan.SetAvailabilitySchedule(fractional))

	bare := NewScheduleConstant(m)
	require.True(t, fan.SetAvailabilitySchedule(bare))
	limits, ok := bare.ScheduleTypeLimits()
	require.True(t, ok)
	assert.Equal(t, "Discrete", limits.NumericType())
	assert.Equal(t, bare.Handle(), fan.AvailabilitySchedule().Handle())

	assert.Equal(t, []ScheduleTypeKey{{"FanConstantVolume", "Availability"}}, fan.GetScheduleTypeKeys(bare))
	assert.Empty(t, fan.GetScheduleTypeKeys(fractional))
}

func TestContainingComponents(t *testing.T) {
	m := New()
	fan := NewFanConstantVolume(m)
	_, ok := fan.ContainingHVACComponent()
	assert.False(t, ok)
	_, ok = fan.ContainingZoneHVACComponent()
	assert.False(t, ok)

	unitary, err := NewHVACComponent(m, idd.AirLoopHVACUnitarySystem)
	require.NoError(t, err)
	require.True(t, unitary.SetSupplyAirFan(fan))
	found, ok := fan.ContainingHVACComponent()
	require.True(t, ok)
	assert.Equal(t, unitary.Handle(), found.Handle())

	other := NewFanConstantVolume(m)
	fanCoil, err := NewZoneHVACComponent(m, idd.ZoneHVACFourPipeFanCoil)
	require.NoError(t, err)
	require.True(t, fanCoil.SetSupplyAirFan(other))
	zone, ok := other.ContainingZoneHVACComponent()
	require.True(t, ok)
	assert.Equal(t, fanCoil.Handle(), zone.Handle())
	_, ok = other.ContainingHVACComponent()
	assert.False(t, ok)

	_, err = NewHVACComponent(m, idd.ZoneHVACUnitHeater)
	assert.Error(t, err)
	_, err = NewZoneHVACComponent(m, idd.AirLoopHVACUnitarySystem)
	assert.Error(t, err)
}

func TestMaximumFlowRateQuantity(t *testing.T) {
	fan := NewFanConstantVolume(New())
	_, ok := fan.MaximumFlowRateQuantity(false)
	assert.False(t, ok)

	require.True(t, fan.SetMaximumFlowRate(1))
	si, ok := fan.MaximumFlowRateQuantity(false)
	require.True(t, ok)
	assert.Equal(t, 1.0, si.Value)
	ip, ok := fan.MaximumFlowRateQuantity(true)
	require.True(t, ok)
	assert.InDelta(t, 35.3146667, ip.Value, 1e-6)

	require.True(t, fan.SetMaximumFlowRateQuantity(units.NewQuantity(35.3146667, units.MustParse("ft^3/s"))))
	v, _ := fan.MaximumFlowRate()
	assert.InDelta(t, 1.0, v, 1e-6)

	assert.False(t, fan.SetMaximumFlowRateQuantity(units.NewQuantity(1, units.MustParse("W"))))
}

func TestFanCloneAndRemove(t *testing.T) {
	m := New()
	fan := NewFanConstantVolume(m)
	require.True(t, fan.SetPressureRise(300))

	clone := fan.Clone()
	require.False(t, clone.IsNil())
	assert.NotEqual(t, fan.Handle(), clone.Handle())
	assert.NotEqual(t, fan.Name(), clone.Name())
	assert.Equal(t, 300.0, clone.PressureRise())
	assert.Equal(t, fan.AvailabilitySchedule().Handle(), clone.AvailabilitySchedule().Handle())
	assert.Len(t, m.FanConstantVolumes(), 2)

	require.True(t, clone.Remove())
	assert.True(t, clone.Removed())
	assert.Len(t, m.FanConstantVolumes(), 1)
	assert.False(t, clone.SetPressureRise(10))
}

func TestOtherEquipmentLoads(t *testing.T) {
	m := New()
	space := NewSpace(m)
	require.True(t, space.SetFloorArea(100))
	require.True(t, space.SetNumberOfPeople(4))

	def := NewOtherEquipmentDefinition(m)
	require.True(t, def.SetPowerPerSpaceFloorArea(5))
	assert.Equal(t, MethodWattsPerArea, def.DesignLevelCalculationMethod())
	_, ok := def.DesignLevel()
	assert.False(t, ok)

	e := NewOtherEquipment(def)
	require.True(t, e.SetSpace(space))
	assert.True(t, e.IsMultiplierDefaulted())
	assert.Equal(t, 1.0, e.Multiplier())
	require.True(t, e.SetMultiplier(2))
	assert.False(t, e.IsMultiplierDefaulted())
	assert.False(t, e.SetMultiplier(0))

	level, err := e.GetDesignLevel(100, 4)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, level)
	perArea, err := e.GetPowerPerFloorArea(100, 4)
	require.NoError(t, err)
	assert.Equal(t, 10.0, perArea)
	perPerson, err := e.GetPowerPerPerson(100, 4)
	require.NoError(t, err)
	assert.Equal(t, 250.0, perPerson)
	_, err = e.GetPowerPerPerson(100, 0)
	assert.ErrorIs(t, err, ErrDesignLevelUndefined)

	e.ResetMultiplier()
	assert.True(t, e.IsMultiplierDefaulted())
}

func TestOtherEquipmentHardSizeClonesSharedDefinition(t *testing.T) {
	m := New()
	space := NewSpace(m)
	space.SetFloorArea(50)
	def := NewOtherEquipmentDefinition(m)
	def.SetPowerPerSpaceFloorArea(2)

	a := NewOtherEquipment(def)
	b := NewOtherEquipment(def)
	require.True(t, a.SetSpace(space))
	require.True(t, a.HardSize())

	aDef, _ := a.OtherEquipmentDefinition()
	assert.NotEqual(t, def.Handle(), aDef.Handle())
	assert.Equal(t, MethodEquipmentLevel, aDef.DesignLevelCalculationMethod())
	level, _ := aDef.DesignLevel()
	assert.Equal(t, 100.0, level)

	bDef, _ := b.OtherEquipmentDefinition()
	assert.Equal(t, def.Handle(), bDef.Handle())
	assert.Equal(t, MethodWattsPerArea, bDef.DesignLevelCalculationMethod())

	assert.False(t, b.HardSize())
}

func TestOtherEquipmentSchedules(t *testing.T) {
	m := New()
	e := NewOtherEquipment(NewOtherEquipmentDefinition(m))
	assert.True(t, e.IsScheduleDefaulted())
	assert.False(t, e.HardApplySchedules())

	s := NewScheduleConstant(m)
	s.SetValue(0.5)
	require.True(t, e.SetSchedule(s))
	assert.False(t, e.IsScheduleDefaulted())
	assert.True(t, e.HardApplySchedules())
	limits, ok := s.ScheduleTypeLimits()
	require.True(t, ok)
	assert.Equal(t, "Continuous", limits.NumericType())
	assert.Equal(t, []ScheduleTypeKey{{"OtherEquipment", "Other Equipment"}}, e.GetScheduleTypeKeys(s))

	e.ResetSchedule()
	assert.True(t, e.IsScheduleDefaulted())
}

func TestOtherEquipmentDefinitionFractions(t *testing.T) {
	def := NewOtherEquipmentDefinition(New())
	assert.True(t, def.IsFractionLatentDefaulted())
	require.True(t, def.SetFractionLatent(0.5))
	require.True(t, def.SetFractionRadiant(0.4))
	assert.False(t, def.SetFractionLost(0.2))
	require.True(t, def.SetFractionLost(0.05))
	def.ResetFractionLatent()
	assert.True(t, def.IsFractionLatentDefaulted())
	assert.Equal(t, 0.0, def.FractionLatent())
}

func TestUtilityCostRatchetParent(t *testing.T) {
	m := New()
	tariff := NewUtilityCostTariff(m, "Electricity:Facility")
	require.True(t, tariff.SetName("Summer Rate"))
	ratchet := NewUtilityCostRatchet(tariff)

	name, ok := ratchet.TariffName()
	require.True(t, ok)
	assert.Equal(t, "Summer Rate", name)
	parent, ok := ratchet.Parent()
	require.True(t, ok)
	assert.Equal(t, tariff.Handle(), parent.Handle())
	assert.Empty(t, ratchet.Children())
	assert.Empty(t, ratchet.AllowableChildTypes())
	assert.Len(t, tariff.Children(), 1)

	_, ok = ratchet.SeasonFrom()
	assert.False(t, ok)
	require.True(t, ratchet.SetSeasonFrom("summer"))
	season, _ := ratchet.SeasonFrom()
	assert.Equal(t, "Summer", season)
	assert.False(t, ratchet.SetSeasonTo("Harvest"))

	require.True(t, ratchet.SetBaselineSourceVariable("TotalDemand"))
	v, ok := ratchet.BaselineSourceVariable()
	require.True(t, ok)
	assert.Equal(t, "TotalDemand", v)

	require.True(t, tariff.SetName("Winter Rate"))
	name, _ = ratchet.TariffName()
	assert.Equal(t, "Winter Rate", name)

	other := NewUtilityCostTariff(m, "Gas:Facility")
	require.True(t, ratchet.SetParent(other))
	parent, _ = ratchet.Parent()
	assert.Equal(t, other.Handle(), parent.Handle())
	assert.Empty(t, tariff.Children())
}

func TestTariffRenameThroughAttributeKeepsRatchets(t *testing.T) {
	m := New()
	tariff := NewUtilityCostTariff(m, "Electricity:Facility")
	ratchet := NewUtilityCostRatchet(tariff)

	require.True(t, tariff.Base().SetAttribute("name", "Renamed"))
	assert.Equal(t, "Renamed", tariff.Name())
	parent, ok := ratchet.Parent()
	require.True(t, ok)
	assert.Equal(t, tariff.Handle(), parent.Handle())
}

func TestTariffRenameToTakenNameKeepsOwnership(t *testing.T) {
	m := New()
	a := NewUtilityCostTariff(m, "Electricity:Facility")
	b := NewUtilityCostTariff(m, "Gas:Facility")
	ra := NewUtilityCostRatchet(a)
	rb := NewUtilityCostRatchet(b)

	require.True(t, b.SetName(a.Name()))
	assert.NotEqual(t, a.Name(), b.Name())

	parent, ok := rb.Parent()
	require.True(t, ok)
	assert.Equal(t, b.Handle(), parent.Handle())
	parent, ok = ra.Parent()
	require.True(t, ok)
	assert.Equal(t, a.Handle(), parent.Handle())
	assert.Len(t, a.Ratchets(), 1)
	assert.Len(t, b.Ratchets(), 1)
}

func TestLightingSimulationControl(t *testing.T) {
	m := New()
	lsc := m.LightingSimulationControl()
	assert.Equal(t, lsc.Handle(), m.LightingSimulationControl().Handle())

	assert.True(t, lsc.RunSimulationForDesignDays())
	assert.True(t, lsc.IsRunSimulationForDesignDaysDefaulted())
	require.True(t, lsc.SetRunSimulationForDesignDays(false))
	assert.False(t, lsc.RunSimulationForDesignDays())
	assert.False(t, lsc.IsRunSimulationForDesignDaysDefaulted())
	lsc.ResetRunSimulationForDesignDays()
	assert.True(t, lsc.RunSimulationForDesignDays())

	require.True(t, lsc.SetRunSimulationForWeatherFileRunPeriods(false))
	assert.False(t, lsc.RunSimulationForWeatherFileRunPeriods())
	lsc.ResetRunSimulationForWeatherFileRunPeriods()
	assert.True(t, lsc.IsRunSimulationForWeatherFileRunPeriodsDefaulted())
}

func TestGlareSensor(t *testing.T) {
	m := New()
	g := NewGlareSensor(m)
	assert.Equal(t, 1, g.NumberOfGlareViewVectors())
	assert.True(t, g.IsNumberOfGlareViewVectorsDefaulted())
	require.True(t, g.SetNumberOfGlareViewVectors(3))
	assert.False(t, g.SetNumberOfGlareViewVectors(5))
	assert.Equal(t, 3, g.NumberOfGlareViewVectors())

	dgi, ok := g.MaximumAllowableDaylightGlareIndex()
	require.True(t, ok)
	assert.Equal(t, 22.0, dgi)
	assert.True(t, g.IsMaximumAllowableDaylightGlareIndexDefaulted())

	require.True(t, g.SetPositionXCoordinate(3.048))
	q, ok := g.GetQuantity(idd.GlareSensorPositionXCoordinate, true)
	require.True(t, ok)
	assert.InDelta(t, 10.0, q.Value, 1e-9)

	space := NewSpace(m)
	require.True(t, g.SetSpace(space))
	got, ok := g.Space()
	require.True(t, ok)
	assert.Equal(t, space.Handle(), got.Handle())
}

func TestAttributes(t *testing.T) {
	m := New()
	g := NewGlareSensor(m)
	base := g.Base()

	assert.Contains(t, base.AttributeNames(), "numberOfGlareViewVectors")
	assert.True(t, base.IsSettableAttribute("numberOfGlareViewVectors"))
	assert.False(t, base.IsSettableAttribute("isNumberOfGlareViewVectorsDefaulted"))

	require.True(t, base.SetAttribute("numberOfGlareViewVectors", 2))
	v, ok := base.GetAttribute("numberOfGlareViewVectors")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.False(t, base.SetAttribute("numberOfGlareViewVectors", "two"))
	assert.False(t, base.SetAttribute("numberOfGlareViewVectors", 2.5))

	require.True(t, base.ResetAttribute("numberOfGlareViewVectors"))
	defaulted, _ := base.GetAttribute("isNumberOfGlareViewVectorsDefaulted")
	assert.Equal(t, true, defaulted)

	fan := NewFanConstantVolume(m)
	require.True(t, fan.Base().SetAttribute("maximumFlowRate", 1.5))
	autosized, _ := fan.Base().GetAttribute("isMaximumFlowRateAutosized")
	assert.Equal(t, false, autosized)
	require.True(t, fan.Base().SetAttribute("isMaximumFlowRateAutosized", true))
	assert.True(t, fan.IsMaximumFlowRateAutosized())
}

func TestZoneHVACEquipmentList(t *testing.T) {
	m := New()
	list := NewZoneHVACEquipmentList(m)
	ptac, err := NewZoneHVACComponent(m, idd.ZoneHVACPackagedTerminalAirConditioner)
	require.NoError(t, err)
	heater, err := NewZoneHVACComponent(m, idd.ZoneHVACUnitHeater)
	require.NoError(t, err)

	g, ok := list.AddEquipment(ptac)
	require.True(t, ok)
	assert.Equal(t, 0, g.Index())
	_, ok = list.AddEquipment(ptac)
	assert.False(t, ok)
	_, ok = list.AddEquipment(heater)
	require.True(t, ok)

	cooling, _ := list.CoolingPriority(heater)
	assert.Equal(t, 2, cooling)
	require.True(t, list.SetHeatingPriority(heater, 1))
	heating, _ := list.HeatingPriority(heater)
	assert.Equal(t, 1, heating)
	assert.False(t, list.SetCoolingPriority(heater, 0))
	assert.Len(t, list.Equipment(), 2)

	require.True(t, list.RemoveEquipment(ptac))
	assert.Len(t, list.Equipment(), 1)
	second := ExtensibleGroup{owner: list.ModelObject, index: 1}
	assert.True(t, second.Empty())
}

func TestObjectsResolveTypedWrappers(t *testing.T) {
	m := New()
	fan := NewFanConstantVolume(m)
	NewGlareSensor(m)

	obj, ok := m.Object(fan.Handle())
	require.True(t, ok)
	_, isFan := obj.(FanConstantVolume)
	assert.True(t, isFan)

	var sensors int
	for _, o := range m.Objects() {
		if _, ok := o.(GlareSensor); ok {
			sensors++
		}
	}
	assert.Equal(t, 1, sensors)
	assert.Len(t, m.ObjectsByType(idd.ScheduleConstant), 1)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := New()
	fan := NewFanConstantVolume(m)
	fan.SetName("Supply Fan")
	fan.SetMaximumFlowRate(1.25)

	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf))
	loaded, err := Load(&buf)
	require.NoError(t, err)

	obj, ok := loaded.ObjectByName(idd.FanConstantVolume, "supply fan")
	require.True(t, ok)
	got := obj.(FanConstantVolume)
	assert.Equal(t, fan.Handle(), got.Handle())
	v, _ := got.MaximumFlowRate()
	assert.Equal(t, 1.25, v)
	assert.Equal(t, AlwaysOnDiscreteName, got.AvailabilitySchedule().Name())
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	factory := func(o ModelObject) Object { return o }
	require.NoError(t, r.Register(idd.Space, factory))
	assert.Error(t, r.Register(idd.Space, factory))
	assert.Error(t, r.Register("OS:Nope", factory))
	assert.Error(t, r.Register(idd.Space, nil))
	assert.Equal(t, []idd.ObjectType{idd.Space}, r.Types())

	assert.Panics(t, func() { r.MustRegister(idd.Space, factory) })
}
