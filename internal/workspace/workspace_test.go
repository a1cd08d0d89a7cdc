package workspace

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/openstudio/internal/idd"
)

func TestAddObjectAssignsHandleAndUniqueName(t *testing.T) {
	w := New()
	first, err := w.AddObject(idd.FanConstantVolume)
	require.NoError(t, err)
	second, err := w.AddObject(idd.FanConstantVolume)
	require.NoError(t, err)

	assert.NotEqual(t, NilHandle, first.Handle())
	assert.NotEqual(t, first.Handle(), second.Handle())
	name1, _ := first.Name()
	name2, _ := second.Name()
	assert.Equal(t, "Fan Constant Volume 1", name1)
	assert.Equal(t, "Fan Constant Volume 2", name2)
	assert.Equal(t, 2, w.Len())
}

func TestAddObjectRejectsUnknownAndDuplicateUnique(t *testing.T) {
	w := New()
	_, err := w.AddObject(idd.ObjectType("OS:Nope"))
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = w.AddObject(idd.LightingSimulationControl)
	require.NoError(t, err)
	_, err = w.AddObject(idd.LightingSimulationControl)
	assert.ErrorIs(t, err, ErrDuplicateUnique)
}

func TestGetStringFallsBackToDefault(t *testing.T) {
	w := New()
	fan, err := w.AddObject(idd.FanConstantVolume)
	require.NoError(t, err)

	_, ok := fan.GetString(idd.FanConstantVolumeFanEfficiency, false)
	assert.False(t, ok)
	v, ok := fan.GetDouble(idd.FanConstantVolumeFanEfficiency, true)
	require.True(t, ok)
	assert.InDelta(t, 0.7, v, 1e-12)
	assert.True(t, fan.IsEmpty(idd.FanConstantVolumeFanEfficiency))
}

func TestSetStringValidatesNumericFields(t *testing.T) {
	w := New()
	fan, err := w.AddObject(idd.FanConstantVolume)
	require.NoError(t, err)

	assert.ErrorIs(t, fan.SetString(idd.FanConstantVolumeFanEfficiency, "abc"), ErrInvalidValue)
	assert.ErrorIs(t, fan.SetDouble(idd.FanConstantVolumeFanEfficiency, 1.5), ErrInvalidValue)
	assert.ErrorIs(t, fan.SetString(idd.FanConstantVolumeFanEfficiency, "autosize"), ErrInvalidValue)

	require.NoError(t, fan.SetString(idd.FanConstantVolumeMaximumFlowRate, "AutoSize"))
	raw, _ := fan.GetString(idd.FanConstantVolumeMaximumFlowRate, false)
	assert.Equal(t, "AutoSize", raw)
	_, ok := fan.GetDouble(idd.FanConstantVolumeMaximumFlowRate, true)
	assert.False(t, ok)

	require.NoError(t, fan.SetDouble(idd.FanConstantVolumeMaximumFlowRate, 2.5))
	v, ok := fan.GetDouble(idd.FanConstantVolumeMaximumFlowRate, true)
	require.True(t, ok)
	assert.Equal(t, 2.5, v)

	require.NoError(t, fan.SetString(idd.FanConstantVolumeMaximumFlowRate, ""))
	assert.True(t, fan.IsEmpty(idd.FanConstantVolumeMaximumFlowRate))
}

func TestIntegerFieldsRejectFractions(t *testing.T) {
	w := New()
	sensor, err := w.AddObject(idd.GlareSensor)
	require.NoError(t, err)
	assert.ErrorIs(t, sensor.SetString(idd.GlareSensorNumberOfGlareViewVectors, "2.5"), ErrInvalidValue)
	assert.ErrorIs(t, sensor.SetInt(idd.GlareSensorNumberOfGlareViewVectors, 9), ErrInvalidValue)
	require.NoError(t, sensor.SetInt(idd.GlareSensorNumberOfGlareViewVectors, 3))
	v, ok := sensor.GetInt(idd.GlareSensorNumberOfGlareViewVectors, true)
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestChoiceFieldsStoreCanonicalKey(t *testing.T) {
	w := New()
	lsc, err := w.AddObject(idd.LightingSimulationControl)
	require.NoError(t, err)
	require.NoError(t, lsc.SetString(idd.LightingSimulationControlRunSimulationForDesignDays, "no"))
	v, _ := lsc.GetString(idd.LightingSimulationControlRunSimulationForDesignDays, true)
	assert.Equal(t, "No", v)
	assert.ErrorIs(t, lsc.SetString(idd.LightingSimulationControlRunSimulationForDesignDays, "maybe"), ErrInvalidValue)
}

func TestPointerFieldsCheckTargetType(t *testing.T) {
	w := New()
	fan, err := w.AddObject(idd.FanConstantVolume)
	require.NoError(t, err)
	sched, err := w.AddObject(idd.ScheduleConstant)
	require.NoError(t, err)
	space, err := w.AddObject(idd.Space)
	require.NoError(t, err)

	assert.ErrorIs(t, fan.SetPointer(idd.FanConstantVolumeAvailabilityScheduleName, space.Handle()), ErrInvalidReference)
	require.NoError(t, fan.SetPointer(idd.FanConstantVolumeAvailabilityScheduleName, sched.Handle()))

	target, ok := fan.GetPointer(idd.FanConstantVolumeAvailabilityScheduleName)
	require.True(t, ok)
	assert.Equal(t, sched.Handle(), target.Handle())
	assert.Equal(t, []int{idd.FanConstantVolumeAvailabilityScheduleName}, fan.Sources(sched.Handle()))
}

func TestChangeNotificationsAndUnsubscribe(t *testing.T) {
	w := New()
	fan, err := w.AddObject(idd.FanConstantVolume)
	require.NoError(t, err)

	calls := 0
	sub := fan.OnChange(func() {
		calls++
		// subscribers may read back without deadlocking
		_, _ = fan.GetDouble(idd.FanConstantVolumePressureRise, true)
	})
	require.NoError(t, fan.SetDouble(idd.FanConstantVolumePressureRise, 300))
	require.NoError(t, fan.SetDouble(idd.FanConstantVolumePressureRise, 300))
	assert.Equal(t, 1, calls, "unchanged value must not notify")

	sub.Close()
	sub.Close()
	require.NoError(t, fan.SetDouble(idd.FanConstantVolumePressureRise, 400))
	assert.Equal(t, 1, calls)
}

func TestRemoveClearsReferencesAndNotifies(t *testing.T) {
	w := New()
	fan, err := w.AddObject(idd.FanConstantVolume)
	require.NoError(t, err)
	sched, err := w.AddObject(idd.ScheduleConstant)
	require.NoError(t, err)
	require.NoError(t, fan.SetPointer(idd.FanConstantVolumeAvailabilityScheduleName, sched.Handle()))

	var removed Handle
	sched.OnRemove(func(h Handle) { removed = h })
	fanChanged := false
	fan.OnChange(func() { fanChanged = true })

	require.NoError(t, w.Remove(sched.Handle()))
	assert.Equal(t, sched.Handle(), removed)
	assert.True(t, fanChanged)
	assert.True(t, sched.Removed())
	assert.True(t, fan.IsEmpty(idd.FanConstantVolumeAvailabilityScheduleName))
	assert.ErrorIs(t, sched.SetDouble(idd.ScheduleConstantValue, 1), ErrObjectRemoved)
	assert.True(t, errors.Is(w.Remove(sched.Handle()), ErrNotFound))
}

func TestSetNameKeepsNamesUniquePerType(t *testing.T) {
	w := New()
	first, err := w.AddObject(idd.FanConstantVolume)
	require.NoError(t, err)
	second, err := w.AddObject(idd.FanConstantVolume)
	require.NoError(t, err)
	space, err := w.AddObject(idd.Space)
	require.NoError(t, err)

	require.NoError(t, second.SetName("fan constant volume 1"))
	name, _ := second.Name()
	assert.Equal(t, "fan constant volume 1 1", name)

	require.NoError(t, first.SetName("Fan Constant Volume 1"))
	name, _ = first.Name()
	assert.Equal(t, "Fan Constant Volume 1", name, "keeping its own name is not a clash")

	require.NoError(t, space.SetName("Fan Constant Volume 1"))
	name, _ = space.Name()
	assert.Equal(t, "Fan Constant Volume 1", name, "other types do not clash")
}

func TestRemoveNotifiesReferrersInCreationOrder(t *testing.T) {
	w := New()
	sched, err := w.AddObject(idd.ScheduleConstant)
	require.NoError(t, err)
	var order []int
	for i := 0; i < 8; i++ {
		fan, err := w.AddObject(idd.FanConstantVolume)
		require.NoError(t, err)
		require.NoError(t, fan.SetPointer(idd.FanConstantVolumeAvailabilityScheduleName, sched.Handle()))
		i := i
		fan.OnChange(func() { order = append(order, i) })
	}

	require.NoError(t, w.Remove(sched.Handle()))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, order)
}

func TestExtensibleGroups(t *testing.T) {
	w := New()
	list, err := w.AddObject(idd.ZoneHVACEquipmentList)
	require.NoError(t, err)
	unit, err := w.AddObject(idd.ZoneHVACUnitHeater)
	require.NoError(t, err)

	g, err := list.PushGroup(unit.Handle().String(), "1", "2")
	require.NoError(t, err)
	assert.Equal(t, 0, g)
	cooling, ok := list.GroupInt(g, idd.ZoneHVACEquipmentListZoneEquipmentCoolingSequence)
	require.True(t, ok)
	assert.Equal(t, 1, cooling)

	require.NoError(t, list.SetGroupInt(g, idd.ZoneHVACEquipmentListZoneEquipmentHeatingOrNoLoadSequence, 4))
	assert.ErrorIs(t, list.SetGroupString(g, idd.ZoneHVACEquipmentListZoneEquipmentCoolingSequence, "0"), ErrInvalidValue)

	require.NoError(t, w.Remove(unit.Handle()))
	_, ok = list.GroupPointer(g, idd.ZoneHVACEquipmentListZoneEquipment)
	assert.False(t, ok)

	require.NoError(t, list.EraseGroup(g))
	assert.Equal(t, 0, list.NumGroups())
}

func TestCloneCopiesFieldsWithNewIdentity(t *testing.T) {
	w := New()
	fan, err := w.AddObject(idd.FanConstantVolume)
	require.NoError(t, err)
	require.NoError(t, fan.SetDouble(idd.FanConstantVolumePressureRise, 612))

	clone, err := fan.Clone()
	require.NoError(t, err)
	assert.NotEqual(t, fan.Handle(), clone.Handle())
	v, _ := clone.GetDouble(idd.FanConstantVolumePressureRise, false)
	assert.Equal(t, 612.0, v)
	n1, _ := fan.Name()
	n2, _ := clone.Name()
	assert.NotEqual(t, n1, n2)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	w := New()
	fan, err := w.AddObject(idd.FanConstantVolume)
	require.NoError(t, err)
	sched, err := w.AddObject(idd.ScheduleConstant)
	require.NoError(t, err)
	require.NoError(t, fan.SetPointer(idd.FanConstantVolumeAvailabilityScheduleName, sched.Handle()))
	require.NoError(t, fan.SetString(idd.FanConstantVolumeMaximumFlowRate, "autosize"))

	path := filepath.Join(t.TempDir(), "nested", "model.osm.yaml")
	require.NoError(t, w.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())
	lf, ok := loaded.Object(fan.Handle())
	require.True(t, ok)
	target, ok := lf.GetPointer(idd.FanConstantVolumeAvailabilityScheduleName)
	require.True(t, ok)
	assert.Equal(t, sched.Handle(), target.Handle())
	raw, _ := lf.GetString(idd.FanConstantVolumeMaximumFlowRate, false)
	assert.Equal(t, "autosize", raw)
}

func TestLoadRejectsInvalidDocuments(t *testing.T) {
	bad := `version: 1
objects:
  - type: OS:Fan:ConstantVolume
    handle: 3f0c2a57-6f0e-4b36-9d5e-0d4f8f4a7c11
    fields: ["Fan", "", "not-a-number"]
`
	_, err := Load(bytes.NewBufferString(bad))
	assert.ErrorIs(t, err, ErrInvalidValue)

	empty, err := Load(bytes.NewBufferString(""))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	missing, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0, missing.Len())
}

func TestDefaultName(t *testing.T) {
	assert.Equal(t, "Air Loop HVAC Unitary Heat Cool VAV Changeover Bypass", defaultName(idd.AirLoopHVACUnitaryHeatCoolVAVChangeoverBypass))
	assert.Equal(t, "Zone HVAC Four Pipe Fan Coil", defaultName(idd.ZoneHVACFourPipeFanCoil))
}
