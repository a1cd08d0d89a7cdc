package model

import (
	"go.uber.org/zap"

	"github.com/kingrea/openstudio/internal/workspace"
)

// ExtensibleGroup is a view of one repeated field group of an object. The
// view is positional: erasing an earlier group shifts it onto the next one.
type ExtensibleGroup struct {
	owner ModelObject
	index int
}

// Owner returns the object holding the group.
func (g ExtensibleGroup) Owner() ModelObject { return g.owner }

func (g ExtensibleGroup) Index() int { return g.index }

// Empty reports whether the group no longer exists.
func (g ExtensibleGroup) Empty() bool {
	if g.owner.IsNil() || g.owner.Removed() {
		return true
	}
	return g.index < 0 || g.index >= g.owner.obj.NumGroups()
}

func (g ExtensibleGroup) GetString(i int) (string, bool) {
	return g.owner.obj.GroupString(g.index, i, true)
}

func (g ExtensibleGroup) SetString(i int, v string) bool {
	if err := g.owner.obj.SetGroupString(g.index, i, v); err != nil {
		g.owner.logger().Debug("set group field failed", zap.Int("group", g.index), zap.Int("field", i), zap.Error(err))
		return false
	}
	return true
}

func (g ExtensibleGroup) GetInt(i int) (int, bool) {
	return g.owner.obj.GroupInt(g.index, i)
}

func (g ExtensibleGroup) SetInt(i int, v int) bool {
	if err := g.owner.obj.SetGroupInt(g.index, i, v); err != nil {
		g.owner.logger().Debug("set group field failed", zap.Int("group", g.index), zap.Int("field", i), zap.Error(err))
		return false
	}
	return true
}

// GetTarget resolves an object field of the group.
func (g ExtensibleGroup) GetTarget(i int) (ModelObject, bool) {
	obj, ok := g.owner.obj.GroupPointer(g.index, i)
	if !ok {
		return ModelObject{}, false
	}
	return ModelObject{model: g.owner.model, obj: obj}, true
}

// OnChange forwards to the owner; group fields have no finer notification.
func (g ExtensibleGroup) OnChange(fn func()) *workspace.Subscription {
	return g.owner.OnChange(fn)
}

func (g ExtensibleGroup) OnRemove(fn func(workspace.Handle)) *workspace.Subscription {
	return g.owner.OnRemove(fn)
}

// ExtensibleGroups returns views of every group of o.
func (o ModelObject) ExtensibleGroups() []ExtensibleGroup {
	n := o.obj.NumGroups()
	out := make([]ExtensibleGroup, n)
	for i := range out {
		out[i] = ExtensibleGroup{owner: o, index: i}
	}
	return out
}
