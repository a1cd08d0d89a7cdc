package binding

import (
	"fmt"

	"github.com/kingrea/openstudio/internal/model"
)

// AttributeNames names the optional companion attributes of an integer
// attribute binding.
type AttributeNames struct {
	IsDefaulted      string
	IsAutosized      string
	IsAutocalculated string
}

// AttributeIntegerEdit edits an integer attribute of a model object looked
// up by name.
type AttributeIntegerEdit struct {
	IntegerEdit
	property string
}

func NewAttributeIntegerEdit(opts ...Option) *AttributeIntegerEdit {
	return &AttributeIntegerEdit{IntegerEdit: IntegerEdit{core: newCore(opts)}}
}

// Property returns the bound attribute name, or "" when unbound.
func (e *AttributeIntegerEdit) Property() string {
	if !e.Bound() {
		return ""
	}
	return e.property
}

// Bind attaches the edit to property of obj. Every named attribute must
// exist on obj.
func (e *AttributeIntegerEdit) Bind(obj model.ModelObject, property string, names AttributeNames) error {
	if obj.IsNil() {
		return ErrNoTarget
	}
	if names.IsAutosized != "" && names.IsAutocalculated != "" {
		return ErrAutosizeAutocalculateConflict
	}
	attrs := obj.Attributes()
	for _, name := range []string{property, names.IsDefaulted, names.IsAutosized, names.IsAutocalculated} {
		if name == "" {
			continue
		}
		if _, ok := attrs[name]; !ok {
			return fmt.Errorf("%w: %s has no %q", ErrUnknownAttribute, obj.IddObjectType(), name)
		}
	}

	cb := IntCallbacks{
		GetOptional: func() (int, bool) {
			v, ok := obj.GetAttribute(property)
			if !ok {
				return 0, false
			}
			return asInt(v)
		},
		Set: func(v int) bool { return obj.SetAttribute(property, v) },
		Reset: func() {
			obj.ResetAttribute(property)
		},
	}
	if names.IsDefaulted != "" {
		cb.IsDefaulted = boolAttribute(obj, names.IsDefaulted)
	}
	if names.IsAutosized != "" {
		cb.IsAutosized = boolAttribute(obj, names.IsAutosized)
		if obj.IsSettableAttribute(names.IsAutosized) {
			cb.Autosize = func() { obj.SetAttribute(names.IsAutosized, true) }
		}
	}
	if names.IsAutocalculated != "" {
		cb.IsAutocalculated = boolAttribute(obj, names.IsAutocalculated)
		if obj.IsSettableAttribute(names.IsAutocalculated) {
			cb.Autocalculate = func() { obj.SetAttribute(names.IsAutocalculated, true) }
		}
	}
	if err := e.IntegerEdit.Bind(obj, cb); err != nil {
		return err
	}
	e.property = property
	return nil
}

// MustBind panics when Bind fails.
func (e *AttributeIntegerEdit) MustBind(obj model.ModelObject, property string, names AttributeNames) {
	if err := e.Bind(obj, property, names); err != nil {
		panic(err)
	}
}

// Unbind detaches the edit.
func (e *AttributeIntegerEdit) Unbind() {
	e.IntegerEdit.Unbind()
	e.property = ""
}

func boolAttribute(obj model.ModelObject, name string) func() bool {
	return func() bool {
		v, ok := obj.GetAttribute(name)
		b, isBool := v.(bool)
		return ok && isBool && b
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
