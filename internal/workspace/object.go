package workspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kingrea/openstudio/internal/idd"
)

// Object is one row of the workspace. All accessors go through the owning
// workspace lock; the pointer stays valid after removal but every write then
// fails with ErrObjectRemoved.
type Object struct {
	ws         *Workspace
	handle     Handle
	schema     *idd.Schema
	fields     []string
	groups     [][]string
	removed    bool
	changeSubs map[int]func()
	removeSubs map[int]func(Handle)
	nextSub    int
}

// Subscription detaches a notification callback when closed.
type Subscription struct {
	cancel func()
}

// Close detaches the callback. Closing twice is a no-op.
func (s *Subscription) Close() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

// Handle returns the object's stable identifier.
func (o *Object) Handle() Handle { return o.handle }

// Type returns the IDD object type.
func (o *Object) Type() idd.ObjectType { return o.schema.Type }

// Schema returns the object's field layout.
func (o *Object) Schema() *idd.Schema { return o.schema }

// Workspace returns the owning workspace.
func (o *Object) Workspace() *Workspace { return o.ws }

// Removed reports whether the object has been deleted from its workspace.
func (o *Object) Removed() bool {
	o.ws.mu.RLock()
	defer o.ws.mu.RUnlock()
	return o.removed
}

// Name returns the object name for named types.
func (o *Object) Name() (string, bool) {
	if !o.schema.Named() {
		return "", false
	}
	return o.GetString(1, false)
}

// SetName renames the object. A name already held by another object of the
// same type, compared case-insensitively, gets a " N" suffix.
func (o *Object) SetName(name string) error {
	if !o.schema.Named() {
		return fmt.Errorf("%w: %s has no name field", ErrUnknownField, o.schema.Type)
	}
	o.ws.mu.Lock()
	name = strings.TrimSpace(name)
	if name != "" && o.ws.nameTakenLocked(o, name) {
		name = o.ws.uniqueNameLocked(o.schema.Type, name, o)
	}
	subs, err := o.setStringLocked(1, name)
	o.ws.mu.Unlock()
	notify(subs)
	return err
}

// NumFields returns the number of non-extensible fields.
func (o *Object) NumFields() int { return len(o.schema.Fields) }

// IsEmpty reports whether field i holds no value.
func (o *Object) IsEmpty(i int) bool {
	o.ws.mu.RLock()
	defer o.ws.mu.RUnlock()
	if i < 0 || i >= len(o.fields) {
		return true
	}
	return o.fields[i] == ""
}

// GetString returns field i. When the field is empty and returnDefault is
// set, the schema default is returned instead.
func (o *Object) GetString(i int, returnDefault bool) (string, bool) {
	o.ws.mu.RLock()
	defer o.ws.mu.RUnlock()
	f, ok := o.schema.Field(i)
	if !ok {
		return "", false
	}
	return resolve(o.fields[i], f, returnDefault)
}

// GetDouble returns field i parsed as a number. Sentinel values such as
// "autosize" are not numbers and report false.
func (o *Object) GetDouble(i int, returnDefault bool) (float64, bool) {
	s, ok := o.GetString(i, returnDefault)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// GetInt returns field i parsed as an integer.
func (o *Object) GetInt(i int, returnDefault bool) (int, bool) {
	v, ok := o.GetDouble(i, returnDefault)
	if !ok || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// SetString validates value against the schema and stores it. An empty value
// resets the field.
func (o *Object) SetString(i int, value string) error {
	o.ws.mu.Lock()
	subs, err := o.setStringLocked(i, value)
	o.ws.mu.Unlock()
	notify(subs)
	return err
}

// setStringLocked stores field i and returns the change subscribers to
// notify once the lock is released.
func (o *Object) setStringLocked(i int, value string) ([]func(), error) {
	if o.removed {
		return nil, ErrObjectRemoved
	}
	f, ok := o.schema.Field(i)
	if !ok {
		return nil, fmt.Errorf("%w: %s field %d", ErrUnknownField, o.schema.Type, i)
	}
	canonical, err := o.ws.validateLocked(f, value)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", o.schema.Type, f.Name, err)
	}
	if o.fields[i] == canonical {
		return nil, nil
	}
	o.fields[i] = canonical
	return o.changeSubscribersLocked(), nil
}

// SetDouble stores a numeric value in a real or integer field.
func (o *Object) SetDouble(i int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidValue, v)
	}
	return o.SetString(i, strconv.FormatFloat(v, 'g', -1, 64))
}

// SetInt stores an integer value.
func (o *Object) SetInt(i int, v int) error {
	return o.SetString(i, strconv.Itoa(v))
}

// SetPointer points field i at the object with handle target.
func (o *Object) SetPointer(i int, target Handle) error {
	return o.SetString(i, target.String())
}

// GetPointer resolves field i to the object it references.
func (o *Object) GetPointer(i int) (*Object, bool) {
	o.ws.mu.RLock()
	defer o.ws.mu.RUnlock()
	if i < 0 || i >= len(o.fields) {
		return nil, false
	}
	return o.ws.resolveLocked(o.fields[i])
}

// Sources returns the indices of fields of o that point at target.
func (o *Object) Sources(target Handle) []int {
	o.ws.mu.RLock()
	defer o.ws.mu.RUnlock()
	want := target.String()
	var out []int
	for i, f := range o.schema.Fields {
		if f.Kind == idd.KindObject && o.fields[i] == want {
			out = append(out, i)
		}
	}
	return out
}

// NumGroups returns the number of extensible groups.
func (o *Object) NumGroups() int {
	o.ws.mu.RLock()
	defer o.ws.mu.RUnlock()
	return len(o.groups)
}

// PushGroup appends an extensible group and returns its index. Missing
// trailing values are left empty.
func (o *Object) PushGroup(values ...string) (int, error) {
	o.ws.mu.Lock()
	if o.removed {
		o.ws.mu.Unlock()
		return -1, ErrObjectRemoved
	}
	if len(o.schema.Extensible) == 0 {
		o.ws.mu.Unlock()
		return -1, fmt.Errorf("%w: %s is not extensible", ErrUnknownField, o.schema.Type)
	}
	if len(values) > len(o.schema.Extensible) {
		o.ws.mu.Unlock()
		return -1, fmt.Errorf("%w: %d values for %d group fields", ErrInvalidValue, len(values), len(o.schema.Extensible))
	}
	group := make([]string, len(o.schema.Extensible))
	for i, v := range values {
		canonical, err := o.ws.validateLocked(o.schema.Extensible[i], v)
		if err != nil {
			o.ws.mu.Unlock()
			return -1, fmt.Errorf("%s %q: %w", o.schema.Type, o.schema.Extensible[i].Name, err)
		}
		group[i] = canonical
	}
	o.groups = append(o.groups, group)
	idx := len(o.groups) - 1
	subs := o.changeSubscribersLocked()
	o.ws.mu.Unlock()
	notify(subs)
	return idx, nil
}

// EraseGroup removes extensible group g; later groups shift down.
func (o *Object) EraseGroup(g int) error {
	o.ws.mu.Lock()
	if o.removed {
		o.ws.mu.Unlock()
		return ErrObjectRemoved
	}
	if g < 0 || g >= len(o.groups) {
		o.ws.mu.Unlock()
		return fmt.Errorf("%w: group %d", ErrUnknownField, g)
	}
	o.groups = append(o.groups[:g], o.groups[g+1:]...)
	subs := o.changeSubscribersLocked()
	o.ws.mu.Unlock()
	notify(subs)
	return nil
}

// GroupString returns field i of group g.
func (o *Object) GroupString(g, i int, returnDefault bool) (string, bool) {
	o.ws.mu.RLock()
	defer o.ws.mu.RUnlock()
	f, ok := o.schema.GroupField(i)
	if !ok || g < 0 || g >= len(o.groups) {
		return "", false
	}
	return resolve(o.groups[g][i], f, returnDefault)
}

// GroupInt returns field i of group g parsed as an integer.
func (o *Object) GroupInt(g, i int) (int, bool) {
	s, ok := o.GroupString(g, i, true)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}

// GroupPointer resolves field i of group g to the object it references.
func (o *Object) GroupPointer(g, i int) (*Object, bool) {
	o.ws.mu.RLock()
	defer o.ws.mu.RUnlock()
	if g < 0 || g >= len(o.groups) || i < 0 || i >= len(o.schema.Extensible) {
		return nil, false
	}
	return o.ws.resolveLocked(o.groups[g][i])
}

// SetGroupString validates and stores field i of group g.
func (o *Object) SetGroupString(g, i int, value string) error {
	o.ws.mu.Lock()
	if o.removed {
		o.ws.mu.Unlock()
		return ErrObjectRemoved
	}
	f, ok := o.schema.GroupField(i)
	if !ok || g < 0 || g >= len(o.groups) {
		o.ws.mu.Unlock()
		return fmt.Errorf("%w: %s group %d field %d", ErrUnknownField, o.schema.Type, g, i)
	}
	canonical, err := o.ws.validateLocked(f, value)
	if err != nil {
		o.ws.mu.Unlock()
		return fmt.Errorf("%s %q: %w", o.schema.Type, f.Name, err)
	}
	if o.groups[g][i] == canonical {
		o.ws.mu.Unlock()
		return nil
	}
	o.groups[g][i] = canonical
	subs := o.changeSubscribersLocked()
	o.ws.mu.Unlock()
	notify(subs)
	return nil
}

// SetGroupInt stores an integer in field i of group g.
func (o *Object) SetGroupInt(g, i, v int) error {
	return o.SetGroupString(g, i, strconv.Itoa(v))
}

// OnChange registers fn to run after any field of o changes.
func (o *Object) OnChange(fn func()) *Subscription {
	o.ws.mu.Lock()
	defer o.ws.mu.Unlock()
	id := o.nextSub
	o.nextSub++
	o.changeSubs[id] = fn
	return &Subscription{cancel: func() {
		o.ws.mu.Lock()
		delete(o.changeSubs, id)
		o.ws.mu.Unlock()
	}}
}

// OnRemove registers fn to run once o has been removed from the workspace.
func (o *Object) OnRemove(fn func(Handle)) *Subscription {
	o.ws.mu.Lock()
	defer o.ws.mu.Unlock()
	id := o.nextSub
	o.nextSub++
	o.removeSubs[id] = fn
	return &Subscription{cancel: func() {
		o.ws.mu.Lock()
		delete(o.removeSubs, id)
		o.ws.mu.Unlock()
	}}
}

// Clone copies o into a new object of the same type. Fields pointing at other
// objects are kept; the clone gets a fresh handle and a unique name.
func (o *Object) Clone() (*Object, error) {
	w := o.ws
	w.mu.Lock()
	defer w.mu.Unlock()
	if o.removed {
		return nil, ErrObjectRemoved
	}
	if o.schema.Unique {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateUnique, o.schema.Type)
	}
	clone := w.newObjectLocked(o.schema, w.newHandle())
	copy(clone.fields[1:], o.fields[1:])
	for _, g := range o.groups {
		clone.groups = append(clone.groups, append([]string(nil), g...))
	}
	if o.schema.Named() {
		clone.fields[1] = w.uniqueNameLocked(o.schema.Type, o.fields[1], nil)
	}
	return clone, nil
}

func (o *Object) changeSubscribersLocked() []func() {
	out := make([]func(), 0, len(o.changeSubs))
	for id := 0; id < o.nextSub; id++ {
		if fn, ok := o.changeSubs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func (o *Object) removeSubscribersLocked() []func(Handle) {
	out := make([]func(Handle), 0, len(o.removeSubs))
	for id := 0; id < o.nextSub; id++ {
		if fn, ok := o.removeSubs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func (o *Object) clearReferencesLocked(target string) bool {
	changed := false
	for i, f := range o.schema.Fields {
		if f.Kind == idd.KindObject && o.fields[i] == target {
			o.fields[i] = ""
			changed = true
		}
	}
	for _, g := range o.groups {
		for i, f := range o.schema.Extensible {
			if f.Kind == idd.KindObject && g[i] == target {
				g[i] = ""
				changed = true
			}
		}
	}
	return changed
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}

func resolve(raw string, f idd.Field, returnDefault bool) (string, bool) {
	if raw != "" {
		return raw, true
	}
	if returnDefault && f.HasDefault() {
		return f.Default, true
	}
	return "", false
}

func (w *Workspace) resolveLocked(raw string) (*Object, bool) {
	if raw == "" {
		return nil, false
	}
	h, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	obj, ok := w.objects[h]
	return obj, ok
}

// validateLocked checks value against f and returns the form to store.
func (w *Workspace) validateLocked(f idd.Field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		if f.Kind == idd.KindHandle {
			return "", fmt.Errorf("%w: handle cannot be reset", ErrInvalidValue)
		}
		return "", nil
	}
	switch f.Kind {
	case idd.KindHandle:
		return "", fmt.Errorf("%w: handle is read-only", ErrInvalidValue)
	case idd.KindAlpha:
		return value, nil
	case idd.KindReal, idd.KindInteger:
		if f.Autosizable && strings.EqualFold(value, idd.Autosize) {
			return value, nil
		}
		if f.Autocalculatable && strings.EqualFold(value, idd.Autocalculate) {
			return value, nil
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return "", fmt.Errorf("%w: %q is not a number", ErrInvalidValue, value)
		}
		if f.Kind == idd.KindInteger && v != math.Trunc(v) {
			return "", fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, value)
		}
		if !f.InRange(v) {
			return "", fmt.Errorf("%w: %q out of range", ErrInvalidValue, value)
		}
		return value, nil
	case idd.KindChoice:
		for _, c := range f.Choices {
			if strings.EqualFold(c, value) {
				return c, nil
			}
		}
		return "", fmt.Errorf("%w: %q is not one of %v", ErrInvalidValue, value, f.Choices)
	case idd.KindObject:
		target, ok := w.resolveLocked(value)
		if !ok {
			return "", fmt.Errorf("%w: no object %q", ErrInvalidReference, value)
		}
		if !f.AllowsReference(target.schema.Type) {
			return "", fmt.Errorf("%w: %s not allowed", ErrInvalidReference, target.schema.Type)
		}
		return target.handle.String(), nil
	default:
		return "", fmt.Errorf("%w: unsupported field kind %s", ErrInvalidValue, f.Kind)
	}
}
