package idd

import (
	"fmt"
	"sort"
	"strings"
)

// ObjectType identifies an IDD object class, e.g. "OS:Fan:ConstantVolume".
type ObjectType string

const (
	FanConstantVolume                             ObjectType = "OS:Fan:ConstantVolume"
	OtherEquipment                                ObjectType = "OS:OtherEquipment"
	OtherEquipmentDefinition                      ObjectType = "OS:OtherEquipment:Definition"
	UtilityCostTariff                             ObjectType = "OS:UtilityCost:Tariff"
	UtilityCostRatchet                            ObjectType = "OS:UtilityCost:Ratchet"
	LightingSimulationControl                     ObjectType = "OS:LightingSimulationControl"
	ScheduleConstant                              ObjectType = "OS:Schedule:Constant"
	ScheduleTypeLimits                            ObjectType = "OS:ScheduleTypeLimits"
	Space                                         ObjectType = "OS:Space"
	GlareSensor                                   ObjectType = "OS:Glare:Sensor"
	ZoneHVACEquipmentList                         ObjectType = "OS:ZoneHVAC:EquipmentList"
	AirLoopHVACUnitarySystem                      ObjectType = "OS:AirLoopHVAC:UnitarySystem"
	AirLoopHVACUnitaryHeatCoolVAVChangeoverBypass ObjectType = "OS:AirLoopHVAC:UnitaryHeatCool:VAVChangeoverBypass"
	AirTerminalSingleDuctParallelPIUReheat        ObjectType = "OS:AirTerminal:SingleDuct:ParallelPIU:Reheat"
	AirLoopHVACUnitaryHeatPumpAirToAir            ObjectType = "OS:AirLoopHVAC:UnitaryHeatPump:AirToAir"
	ZoneHVACFourPipeFanCoil                       ObjectType = "OS:ZoneHVAC:FourPipeFanCoil"
	ZoneHVACPackagedTerminalAirConditioner        ObjectType = "OS:ZoneHVAC:PackagedTerminalAirConditioner"
	ZoneHVACPackagedTerminalHeatPump              ObjectType = "OS:ZoneHVAC:PackagedTerminalHeatPump"
	ZoneHVACUnitHeater                            ObjectType = "OS:ZoneHVAC:UnitHeater"
)

// Kind is the storage type of a field.
type Kind int

const (
	KindHandle Kind = iota
	KindAlpha
	KindReal
	KindInteger
	KindChoice
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindHandle:
		return "handle"
	case KindAlpha:
		return "alpha"
	case KindReal:
		return "real"
	case KindInteger:
		return "integer"
	case KindChoice:
		return "choice"
	case KindObject:
		return "object-list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Numeric reports whether values of this kind are stored as numbers.
func (k Kind) Numeric() bool {
	return k == KindReal || k == KindInteger
}

// Sentinel text values persisted in numeric fields.
const (
	Autosize      = "autosize"
	Autocalculate = "autocalculate"
)

// Bound is an optional numeric limit.
type Bound struct {
	Value     float64
	Exclusive bool
}

// Field describes one field of an object.
type Field struct {
	Name             string
	Kind             Kind
	Default          string
	Required         bool
	Autosizable      bool
	Autocalculatable bool
	Min              *Bound
	Max              *Bound
	// Units is the SI unit string the stored value is expressed in.
	Units string
	// IPUnits is the unit string used when displaying in IP.
	IPUnits    string
	Choices    []string
	References []ObjectType
}

// HasDefault reports whether the schema supplies a default value.
func (f Field) HasDefault() bool {
	return f.Default != ""
}

// AllowsChoice reports whether value is one of the field's keys (case-insensitive).
func (f Field) AllowsChoice(value string) bool {
	for _, c := range f.Choices {
		if strings.EqualFold(c, value) {
			return true
		}
	}
	return false
}

// AllowsReference reports whether the field may point at objects of type t.
func (f Field) AllowsReference(t ObjectType) bool {
	for _, r := range f.References {
		if r == t {
			return true
		}
	}
	return false
}

// InRange checks v against the field's bounds.
func (f Field) InRange(v float64) bool {
	if f.Min != nil {
		if f.Min.Exclusive && v <= f.Min.Value {
			return false
		}
		if !f.Min.Exclusive && v < f.Min.Value {
			return false
		}
	}
	if f.Max != nil {
		if f.Max.Exclusive && v >= f.Max.Value {
			return false
		}
		if !f.Max.Exclusive && v > f.Max.Value {
			return false
		}
	}
	return true
}

// Schema is the full field layout of an object type.
type Schema struct {
	Type   ObjectType
	Fields []Field
	// Extensible holds the fields of one repeating group appended after Fields.
	Extensible []Field
	// Unique objects may appear at most once per workspace.
	Unique bool
}

// Named reports whether field 1 holds the object name.
func (s *Schema) Named() bool {
	return len(s.Fields) > 1 && s.Fields[1].Name == "Name"
}

// Field returns the field at index i, or false when out of range.
func (s *Schema) Field(i int) (Field, bool) {
	if i < 0 || i >= len(s.Fields) {
		return Field{}, false
	}
	return s.Fields[i], true
}

// GroupField returns field i of an extensible group.
func (s *Schema) GroupField(i int) (Field, bool) {
	if i < 0 || i >= len(s.Extensible) {
		return Field{}, false
	}
	return s.Extensible[i], true
}

// FieldIndex finds a field by name (case-insensitive).
func (s *Schema) FieldIndex(name string) (int, bool) {
	for i, f := range s.Fields {
		if strings.EqualFold(f.Name, name) {
			return i, true
		}
	}
	return -1, false
}

var schemas = map[ObjectType]*Schema{}

func register(s *Schema) {
	if _, exists := schemas[s.Type]; exists {
		panic(fmt.Sprintf("idd: %s registered twice", s.Type))
	}
	schemas[s.Type] = s
}

// Lookup returns the schema for t.
func Lookup(t ObjectType) (*Schema, bool) {
	s, ok := schemas[t]
	return s, ok
}

// Types returns every known object type sorted by name.
func Types() []ObjectType {
	out := make([]ObjectType, 0, len(schemas))
	for t := range schemas {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
