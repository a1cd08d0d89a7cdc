package model

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/kingrea/openstudio/internal/idd"
	"github.com/kingrea/openstudio/internal/units"
	"github.com/kingrea/openstudio/internal/workspace"
)

// Object is implemented by ModelObject and every typed wrapper.
type Object interface {
	Handle() workspace.Handle
	Name() string
	IddObjectType() idd.ObjectType
	Base() ModelObject
	attributes() []Attribute
}

// ModelObject is the base view shared by all wrappers. The zero value is an
// uninitialized view; IsNil reports it.
type ModelObject struct {
	model *Model
	obj   *workspace.Object
}

// IsNil reports whether the view points at nothing.
func (o ModelObject) IsNil() bool { return o.obj == nil }

// Base returns o itself; wrappers inherit it to expose their base view.
func (o ModelObject) Base() ModelObject { return o }

// Handle returns the stable identifier of the object.
func (o ModelObject) Handle() workspace.Handle { return o.obj.Handle() }

// IddObjectType returns the schema type.
func (o ModelObject) IddObjectType() idd.ObjectType { return o.obj.Type() }

// Model returns the owning model.
func (o ModelObject) Model() *Model { return o.model }

// WorkspaceObject returns the raw object.
func (o ModelObject) WorkspaceObject() *workspace.Object { return o.obj }

// Name returns the object name, or "" for unnamed types.
func (o ModelObject) Name() string {
	name, _ := o.obj.Name()
	return name
}

// SetName renames the object.
func (o ModelObject) SetName(name string) bool {
	if err := o.obj.SetName(name); err != nil {
		o.logger().Debug("rename failed", zap.String("name", name), zap.Error(err))
		return false
	}
	return true
}

// Removed reports whether the object has been deleted.
func (o ModelObject) Removed() bool { return o.obj.Removed() }

// Remove deletes the object from the model. References held by other objects
// are cleared.
func (o ModelObject) Remove() bool {
	if err := o.model.ws.Remove(o.Handle()); err != nil {
		o.logger().Debug("remove failed", zap.Error(err))
		return false
	}
	return true
}

// OnChange registers fn to run after any field of the object changes.
func (o ModelObject) OnChange(fn func()) *workspace.Subscription {
	return o.obj.OnChange(fn)
}

// OnRemove registers fn to run after the object is removed.
func (o ModelObject) OnRemove(fn func(workspace.Handle)) *workspace.Subscription {
	return o.obj.OnRemove(fn)
}

// Equal reports whether both views point at the same object.
func (o ModelObject) Equal(other ModelObject) bool {
	return o.obj != nil && other.obj != nil && o.obj.Handle() == other.obj.Handle()
}

func (o ModelObject) logger() *zap.Logger {
	return o.model.logger.Named(loggerPrefix + "." + loggerName(o.IddObjectType())).
		With(zap.String("handle", o.obj.Handle().String()))
}

// loggerName turns "OS:Fan:ConstantVolume" into "FanConstantVolume".
func loggerName(t idd.ObjectType) string {
	return strings.ReplaceAll(strings.TrimPrefix(string(t), "OS:"), ":", "")
}

// IsEmpty reports whether field i holds no stored value.
func (o ModelObject) IsEmpty(i int) bool { return o.obj.IsEmpty(i) }

func (o ModelObject) getString(i int) string {
	s, _ := o.obj.GetString(i, true)
	return s
}

func (o ModelObject) getOptionalString(i int) (string, bool) {
	return o.obj.GetString(i, true)
}

func (o ModelObject) getDouble(i int) float64 {
	v, _ := o.obj.GetDouble(i, true)
	return v
}

func (o ModelObject) getInt(i int) int {
	v, _ := o.obj.GetInt(i, true)
	return v
}

func (o ModelObject) setString(i int, v string) bool {
	if err := o.obj.SetString(i, v); err != nil {
		o.logger().Debug("set failed", zap.Int("field", i), zap.String("value", v), zap.Error(err))
		return false
	}
	return true
}

func (o ModelObject) setDouble(i int, v float64) bool {
	if err := o.obj.SetDouble(i, v); err != nil {
		o.logger().Debug("set failed", zap.Int("field", i), zap.Float64("value", v), zap.Error(err))
		return false
	}
	return true
}

func (o ModelObject) setInt(i int, v int) bool {
	if err := o.obj.SetInt(i, v); err != nil {
		o.logger().Debug("set failed", zap.Int("field", i), zap.Int("value", v), zap.Error(err))
		return false
	}
	return true
}

func (o ModelObject) setPointer(i int, target ModelObject) bool {
	if target.IsNil() {
		return false
	}
	if err := o.obj.SetPointer(i, target.Handle()); err != nil {
		o.logger().Debug("set failed", zap.Int("field", i), zap.Stringer("target", target.Handle()), zap.Error(err))
		return false
	}
	return true
}

func (o ModelObject) resetField(i int) {
	_ = o.obj.SetString(i, "")
}

func (o ModelObject) getTarget(i int) (ModelObject, bool) {
	obj, ok := o.obj.GetPointer(i)
	if !ok {
		return ModelObject{}, false
	}
	return ModelObject{model: o.model, obj: obj}, true
}

func (o ModelObject) getYesNo(i int) bool {
	return strings.EqualFold(o.getString(i), "Yes")
}

func (o ModelObject) setYesNo(i int, v bool) bool {
	if v {
		return o.setString(i, "Yes")
	}
	return o.setString(i, "No")
}

func (o ModelObject) isSentinel(i int, sentinel string) bool {
	s, ok := o.obj.GetString(i, false)
	return ok && strings.EqualFold(strings.TrimSpace(s), sentinel)
}

// GetQuantity returns field i as a quantity in SI units, or in the field's
// IP units when returnIP is set.
func (o ModelObject) GetQuantity(i int, returnIP bool) (units.Quantity, bool) {
	f, ok := o.obj.Schema().Field(i)
	if !ok || f.Units == "" {
		return units.Quantity{}, false
	}
	v, ok := o.obj.GetDouble(i, true)
	if !ok {
		return units.Quantity{}, false
	}
	si, err := units.Parse(f.Units)
	if err != nil {
		return units.Quantity{}, false
	}
	q := units.NewQuantity(v, si)
	if !returnIP || f.IPUnits == "" || f.IPUnits == f.Units {
		return q, true
	}
	ip, err := units.Parse(f.IPUnits)
	if err != nil {
		return units.Quantity{}, false
	}
	converted, err := units.Convert(q, ip)
	if err != nil {
		o.logger().Debug("quantity conversion failed", zap.Int("field", i), zap.Error(err))
		return units.Quantity{}, false
	}
	return converted, true
}

// SetQuantity converts q to the field's SI units and stores it.
func (o ModelObject) SetQuantity(i int, q units.Quantity) bool {
	f, ok := o.obj.Schema().Field(i)
	if !ok || f.Units == "" {
		return false
	}
	si, err := units.Parse(f.Units)
	if err != nil {
		return false
	}
	converted, err := units.Convert(q, si)
	if err != nil {
		o.logger().Debug("quantity conversion failed", zap.Int("field", i), zap.Error(err))
		return false
	}
	return o.setDouble(i, converted.Value)
}

// Attribute is a named, reflectively accessible property of an object. Set
// and Reset are nil for read-only attributes.
type Attribute struct {
	Name  string
	Get   func() (any, bool)
	Set   func(any) bool
	Reset func()
}

// Settable reports whether the attribute accepts writes.
func (a Attribute) Settable() bool { return a.Set != nil }

func (o ModelObject) attributes() []Attribute {
	return []Attribute{{
		Name: "name",
		Get:  func() (any, bool) { return o.Name(), o.obj.Schema().Named() },
		Set: func(v any) bool {
			s, ok := v.(string)
			return ok && o.SetName(s)
		},
	}}
}

// Attributes returns the attributes of the object's concrete type keyed by
// name.
func (o ModelObject) Attributes() map[string]Attribute {
	out := map[string]Attribute{}
	for _, a := range o.model.registry.Resolve(o).attributes() {
		out[a.Name] = a
	}
	return out
}

// AttributeNames lists attribute names in sorted order.
func (o ModelObject) AttributeNames() []string {
	attrs := o.Attributes()
	out := make([]string, 0, len(attrs))
	for name := range attrs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// GetAttribute reads the named attribute.
func (o ModelObject) GetAttribute(name string) (any, bool) {
	a, ok := o.Attributes()[name]
	if !ok {
		return nil, false
	}
	return a.Get()
}

// SetAttribute writes the named attribute.
func (o ModelObject) SetAttribute(name string, v any) bool {
	a, ok := o.Attributes()[name]
	if !ok || a.Set == nil {
		return false
	}
	return a.Set(v)
}

// ResetAttribute resets the named attribute.
func (o ModelObject) ResetAttribute(name string) bool {
	a, ok := o.Attributes()[name]
	if !ok || a.Reset == nil {
		return false
	}
	a.Reset()
	return true
}

// IsSettableAttribute reports whether the named attribute accepts writes.
func (o ModelObject) IsSettableAttribute(name string) bool {
	a, ok := o.Attributes()[name]
	return ok && a.Settable()
}

// attribute helpers

func doubleAttr(name string, get func() (float64, bool), set func(float64) bool, reset func()) Attribute {
	a := Attribute{Name: name, Get: func() (any, bool) { return get() }, Reset: reset}
	if set != nil {
		a.Set = func(v any) bool {
			f, ok := toFloat(v)
			return ok && set(f)
		}
	}
	return a
}

func intAttr(name string, get func() (int, bool), set func(int) bool, reset func()) Attribute {
	a := Attribute{Name: name, Get: func() (any, bool) { return get() }, Reset: reset}
	if set != nil {
		a.Set = func(v any) bool {
			f, ok := toFloat(v)
			if !ok || f != float64(int(f)) {
				return false
			}
			return set(int(f))
		}
	}
	return a
}

func boolAttr(name string, get func() bool, set func(bool) bool) Attribute {
	a := Attribute{Name: name, Get: func() (any, bool) { return get(), true }}
	if set != nil {
		a.Set = func(v any) bool {
			b, ok := v.(bool)
			return ok && set(b)
		}
	}
	return a
}

func stringAttr(name string, get func() (string, bool), set func(string) bool, reset func()) Attribute {
	a := Attribute{Name: name, Get: func() (any, bool) { return get() }, Reset: reset}
	if set != nil {
		a.Set = func(v any) bool {
			s, ok := v.(string)
			return ok && set(s)
		}
	}
	return a
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

func always[T any](get func() T) func() (T, bool) {
	return func() (T, bool) { return get(), true }
}
