package model

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/kingrea/openstudio/internal/idd"
	"github.com/kingrea/openstudio/internal/workspace"
)

const loggerPrefix = "openstudio.model"

// AlwaysOnDiscreteName names the schedule substituted for missing
// availability schedules.
const AlwaysOnDiscreteName = "Always On Discrete"

// Model owns a workspace and hands out typed views over its objects.
type Model struct {
	ws       *workspace.Workspace
	logger   *zap.Logger
	registry *Registry
}

// Option customizes a Model.
type Option func(*Model)

// WithLogger sets the logger used for repair warnings and setter failures.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithWorkspace wraps an existing workspace instead of creating a new one.
func WithWorkspace(ws *workspace.Workspace) Option {
	return func(m *Model) {
		if ws != nil {
			m.ws = ws
		}
	}
}

// WithRegistry replaces the default wrapper registry.
func WithRegistry(r *Registry) Option {
	return func(m *Model) {
		if r != nil {
			m.registry = r
		}
	}
}

// New returns an empty model.
func New(opts ...Option) *Model {
	m := &Model{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	if m.ws == nil {
		m.ws = workspace.New()
	}
	if m.registry == nil {
		m.registry = DefaultRegistry()
	}
	return m
}

// Load reads a model document from in.
func Load(in io.Reader, opts ...Option) (*Model, error) {
	ws, err := workspace.Load(in)
	if err != nil {
		return nil, fmt.Errorf("model: load: %w", err)
	}
	return New(append(opts, WithWorkspace(ws))...), nil
}

// LoadFile reads the model at path. A missing file yields an empty model.
func LoadFile(path string, opts ...Option) (*Model, error) {
	ws, err := workspace.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: load %s: %w", path, err)
	}
	return New(append(opts, WithWorkspace(ws))...), nil
}

// Save writes the model document to out.
func (m *Model) Save(out io.Writer) error {
	return m.ws.Save(out)
}

// SaveFile writes the model document to path.
func (m *Model) SaveFile(path string) error {
	if err := m.ws.SaveFile(path); err != nil {
		return fmt.Errorf("model: save %s: %w", path, err)
	}
	return nil
}

// Workspace exposes the underlying object store.
func (m *Model) Workspace() *workspace.Workspace { return m.ws }

// Logger returns the model logger.
func (m *Model) Logger() *zap.Logger { return m.logger }

// Registry returns the wrapper registry.
func (m *Model) Registry() *Registry { return m.registry }

// Object returns the typed wrapper for handle h.
func (m *Model) Object(h workspace.Handle) (Object, bool) {
	mo, ok := m.ModelObject(h)
	if !ok {
		return nil, false
	}
	return m.registry.Resolve(mo), true
}

// ModelObject returns the base view for handle h.
func (m *Model) ModelObject(h workspace.Handle) (ModelObject, bool) {
	obj, ok := m.ws.Object(h)
	if !ok {
		return ModelObject{}, false
	}
	return ModelObject{model: m, obj: obj}, true
}

// Objects returns typed wrappers for every object in insertion order.
func (m *Model) Objects() []Object {
	objs := m.ws.Objects()
	out := make([]Object, 0, len(objs))
	for _, obj := range objs {
		out = append(out, m.registry.Resolve(ModelObject{model: m, obj: obj}))
	}
	return out
}

// ObjectsByType returns typed wrappers for every object of type t.
func (m *Model) ObjectsByType(t idd.ObjectType) []Object {
	objs := m.ws.ObjectsByType(t)
	out := make([]Object, 0, len(objs))
	for _, obj := range objs {
		out = append(out, m.registry.Resolve(ModelObject{model: m, obj: obj}))
	}
	return out
}

// ObjectByName finds an object of type t by case-insensitive name.
func (m *Model) ObjectByName(t idd.ObjectType, name string) (Object, bool) {
	obj, ok := m.ws.ObjectByName(t, name)
	if !ok {
		return nil, false
	}
	return m.registry.Resolve(ModelObject{model: m, obj: obj}), true
}

// FanConstantVolumes returns every constant volume fan.
func (m *Model) FanConstantVolumes() []FanConstantVolume {
	return concrete(m, idd.FanConstantVolume, func(o ModelObject) FanConstantVolume { return FanConstantVolume{o} })
}

// Schedules returns every constant schedule.
func (m *Model) Schedules() []Schedule {
	return concrete(m, idd.ScheduleConstant, func(o ModelObject) Schedule { return Schedule{o} })
}

// Spaces returns every space.
func (m *Model) Spaces() []Space {
	return concrete(m, idd.Space, func(o ModelObject) Space { return Space{o} })
}

// GlareSensors returns every glare sensor.
func (m *Model) GlareSensors() []GlareSensor {
	return concrete(m, idd.GlareSensor, func(o ModelObject) GlareSensor { return GlareSensor{o} })
}

// UtilityCostTariffs returns every tariff.
func (m *Model) UtilityCostTariffs() []UtilityCostTariff {
	return concrete(m, idd.UtilityCostTariff, func(o ModelObject) UtilityCostTariff { return UtilityCostTariff{o} })
}

// UtilityCostRatchets returns every ratchet.
func (m *Model) UtilityCostRatchets() []UtilityCostRatchet {
	return concrete(m, idd.UtilityCostRatchet, func(o ModelObject) UtilityCostRatchet { return UtilityCostRatchet{o} })
}

// OtherEquipments returns every other equipment instance.
func (m *Model) OtherEquipments() []OtherEquipment {
	return concrete(m, idd.OtherEquipment, func(o ModelObject) OtherEquipment { return OtherEquipment{o} })
}

func concrete[T any](m *Model, t idd.ObjectType, wrap func(ModelObject) T) []T {
	objs := m.ws.ObjectsByType(t)
	out := make([]T, 0, len(objs))
	for _, obj := range objs {
		out = append(out, wrap(ModelObject{model: m, obj: obj}))
	}
	return out
}

// AlwaysOnDiscreteSchedule returns the model's "Always On Discrete"
// schedule, creating it with value 1 and on/off type limits when absent.
func (m *Model) AlwaysOnDiscreteSchedule() Schedule {
	for _, s := range m.Schedules() {
		if !strings.EqualFold(s.Name(), AlwaysOnDiscreteName) {
			continue
		}
		if s.Value() == 1 {
			return s
		}
	}
	s := NewScheduleConstant(m)
	s.SetName(AlwaysOnDiscreteName)
	s.SetValue(1)
	s.SetScheduleTypeLimits(m.onOffTypeLimits())
	return s
}

// onOffTypeLimits finds or creates discrete 0..1 availability limits.
func (m *Model) onOffTypeLimits() ScheduleTypeLimits {
	for _, o := range concrete(m, idd.ScheduleTypeLimits, func(o ModelObject) ScheduleTypeLimits { return ScheduleTypeLimits{o} }) {
		lower, lok := o.LowerLimitValue()
		upper, uok := o.UpperLimitValue()
		if lok && uok && lower == 0 && upper == 1 && o.NumericType() == "Discrete" {
			return o
		}
	}
	limits := NewScheduleTypeLimits(m)
	limits.SetName("OnOff")
	limits.SetLowerLimitValue(0)
	limits.SetUpperLimitValue(1)
	limits.SetNumericType("Discrete")
	limits.SetUnitType("Availability")
	return limits
}

// LightingSimulationControl returns the unique lighting simulation control
// object, creating it when absent.
func (m *Model) LightingSimulationControl() LightingSimulationControl {
	if objs := m.ws.ObjectsByType(idd.LightingSimulationControl); len(objs) > 0 {
		return LightingSimulationControl{ModelObject{model: m, obj: objs[0]}}
	}
	return LightingSimulationControl{m.mustAdd(idd.LightingSimulationControl)}
}

// mustAdd creates an object of a type this package registers a schema for.
// Failure means the schema table and the wrappers disagree.
func (m *Model) mustAdd(t idd.ObjectType) ModelObject {
	obj, err := m.ws.AddObject(t)
	if err != nil {
		panic(fmt.Sprintf("model: add %s: %v", t, err))
	}
	return ModelObject{model: m, obj: obj}
}
