package model

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kingrea/openstudio/internal/idd"
)

// Factory wraps a base object into its concrete type.
type Factory func(ModelObject) Object

// Registry maps IDD object types to wrapper factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[idd.ObjectType]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[idd.ObjectType]Factory{}}
}

// Register installs a factory. Returns an error if the type already exists.
func (r *Registry) Register(t idd.ObjectType, factory Factory) error {
	if t == "" {
		return fmt.Errorf("model: object type is required")
	}
	if factory == nil {
		return fmt.Errorf("model: factory is required for %s", t)
	}
	if _, ok := idd.Lookup(t); !ok {
		return fmt.Errorf("model: %s has no schema", t)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[t]; exists {
		return fmt.Errorf("model: %s already registered", t)
	}
	r.factories[t] = factory
	return nil
}

// MustRegister panics if registration fails.
func (r *Registry) MustRegister(t idd.ObjectType, factory Factory) {
	if err := r.Register(t, factory); err != nil {
		panic(err)
	}
}

// Resolve returns the concrete wrapper for o, or o itself when its type has
// no registered factory.
func (r *Registry) Resolve(o ModelObject) Object {
	r.mu.RLock()
	factory, ok := r.factories[o.IddObjectType()]
	r.mu.RUnlock()
	if !ok {
		return o
	}
	return factory(o)
}

// Types returns the registered object types in sorted order.
func (r *Registry) Types() []idd.ObjectType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]idd.ObjectType, 0, len(r.factories))
	for t := range r.factories {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DefaultRegistry knows every wrapper in this package.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(idd.FanConstantVolume, func(o ModelObject) Object { return FanConstantVolume{o} })
	r.MustRegister(idd.OtherEquipment, func(o ModelObject) Object { return OtherEquipment{o} })
	r.MustRegister(idd.OtherEquipmentDefinition, func(o ModelObject) Object { return OtherEquipmentDefinition{o} })
	r.MustRegister(idd.UtilityCostTariff, func(o ModelObject) Object { return UtilityCostTariff{o} })
	r.MustRegister(idd.UtilityCostRatchet, func(o ModelObject) Object { return UtilityCostRatchet{o} })
	r.MustRegister(idd.LightingSimulationControl, func(o ModelObject) Object { return LightingSimulationControl{o} })
	r.MustRegister(idd.ScheduleConstant, func(o ModelObject) Object { return Schedule{o} })
	r.MustRegister(idd.ScheduleTypeLimits, func(o ModelObject) Object { return ScheduleTypeLimits{o} })
	r.MustRegister(idd.Space, func(o ModelObject) Object { return Space{o} })
	r.MustRegister(idd.GlareSensor, func(o ModelObject) Object { return GlareSensor{o} })
	r.MustRegister(idd.ZoneHVACEquipmentList, func(o ModelObject) Object { return ZoneHVACEquipmentList{o} })
	for _, t := range idd.FanContainerTypes {
		if isZoneHVACType(t) {
			r.MustRegister(t, func(o ModelObject) Object { return ZoneHVACComponent{HVACComponent{o}} })
			continue
		}
		r.MustRegister(t, func(o ModelObject) Object { return HVACComponent{o} })
	}
	return r
}
