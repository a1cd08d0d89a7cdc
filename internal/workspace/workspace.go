// Package workspace is the generic, schema-driven object store the model
// layer is built on. Every object is an ordered array of text fields keyed by
// the index constants of the idd package and identified by a stable handle.
// Values are validated against the object's schema on write, and every
// mutation is announced to subscribers registered on the affected object.
package workspace

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/kingrea/openstudio/internal/idd"
)

// Handle is the stable identifier of an object.
type Handle = uuid.UUID

// NilHandle is the zero handle; no object ever has it.
var NilHandle = uuid.Nil

var (
	ErrUnknownType      = errors.New("workspace: unknown object type")
	ErrUnknownField     = errors.New("workspace: unknown field")
	ErrInvalidValue     = errors.New("workspace: invalid value")
	ErrInvalidReference = errors.New("workspace: invalid reference")
	ErrObjectRemoved    = errors.New("workspace: object removed")
	ErrDuplicateUnique  = errors.New("workspace: unique object already exists")
	ErrNotFound         = errors.New("workspace: object not found")
)

// Option customizes a Workspace.
type Option func(*Workspace)

// WithHandleSource overrides handle generation, mostly for deterministic tests.
func WithHandleSource(next func() Handle) Option {
	return func(w *Workspace) {
		if next != nil {
			w.newHandle = next
		}
	}
}

// Workspace owns a set of objects. It is safe for concurrent use, although
// the application drives it from a single event loop. Subscribers are always
// invoked after the internal lock is released so they may read back freely.
type Workspace struct {
	mu        sync.RWMutex
	objects   map[Handle]*Object
	order     []Handle
	newHandle func() Handle
}

// New returns an empty workspace.
func New(opts ...Option) *Workspace {
	w := &Workspace{
		objects:   map[Handle]*Object{},
		newHandle: uuid.New,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// AddObject creates a new object of type t with every field blank except the
// handle and, for named types, a generated unique name.
func (w *Workspace) AddObject(t idd.ObjectType) (*Object, error) {
	schema, ok := idd.Lookup(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if schema.Unique && len(w.byTypeLocked(t)) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateUnique, t)
	}
	obj := w.newObjectLocked(schema, w.newHandle())
	if schema.Named() {
		obj.fields[1] = w.uniqueNameLocked(t, defaultName(t), nil)
	}
	return obj, nil
}

func (w *Workspace) newObjectLocked(schema *idd.Schema, h Handle) *Object {
	obj := &Object{
		ws:         w,
		handle:     h,
		schema:     schema,
		fields:     make([]string, len(schema.Fields)),
		changeSubs: map[int]func(){},
		removeSubs: map[int]func(Handle){},
	}
	obj.fields[0] = h.String()
	w.objects[h] = obj
	w.order = append(w.order, h)
	return obj
}

// Object returns the live object with handle h.
func (w *Workspace) Object(h Handle) (*Object, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	obj, ok := w.objects[h]
	return obj, ok
}

// Objects returns every live object in creation order.
func (w *Workspace) Objects() []*Object {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Object, 0, len(w.order))
	for _, h := range w.order {
		out = append(out, w.objects[h])
	}
	return out
}

// ObjectsByType returns the live objects of type t in creation order.
func (w *Workspace) ObjectsByType(t idd.ObjectType) []*Object {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.byTypeLocked(t)
}

func (w *Workspace) byTypeLocked(t idd.ObjectType) []*Object {
	var out []*Object
	for _, h := range w.order {
		if obj := w.objects[h]; obj.schema.Type == t {
			out = append(out, obj)
		}
	}
	return out
}

// ObjectByName finds an object of type t by name (case-insensitive).
func (w *Workspace) ObjectByName(t idd.ObjectType, name string) (*Object, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, obj := range w.byTypeLocked(t) {
		if obj.schema.Named() && strings.EqualFold(obj.fields[1], name) {
			return obj, true
		}
	}
	return nil, false
}

// Len reports the number of live objects.
func (w *Workspace) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.order)
}

// Remove deletes the object with handle h. Pointer fields of other objects
// that referenced it are cleared and those objects report a change.
func (w *Workspace) Remove(h Handle) error {
	w.mu.Lock()
	obj, ok := w.objects[h]
	if !ok {
		w.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, h)
	}
	delete(w.objects, h)
	for i, candidate := range w.order {
		if candidate == h {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	obj.removed = true
	target := h.String()
	var touched []*Object
	for _, candidate := range w.order {
		other := w.objects[candidate]
		if other.clearReferencesLocked(target) {
			touched = append(touched, other)
		}
	}
	removeSubs := obj.removeSubscribersLocked()
	var changeSubs []func()
	for _, other := range touched {
		changeSubs = append(changeSubs, other.changeSubscribersLocked()...)
	}
	obj.changeSubs = map[int]func(){}
	obj.removeSubs = map[int]func(Handle){}
	w.mu.Unlock()

	for _, fn := range changeSubs {
		fn()
	}
	for _, fn := range removeSubs {
		fn(h)
	}
	return nil
}

// nameTakenLocked reports whether an object of self's type other than self
// is already called name.
func (w *Workspace) nameTakenLocked(self *Object, name string) bool {
	for _, obj := range w.byTypeLocked(self.schema.Type) {
		if obj != self && strings.EqualFold(obj.fields[1], name) {
			return true
		}
	}
	return false
}

// uniqueNameLocked returns the first "<base> N" not used by an object of type
// t, ignoring skip.
func (w *Workspace) uniqueNameLocked(t idd.ObjectType, base string, skip *Object) string {
	taken := map[string]struct{}{}
	for _, obj := range w.byTypeLocked(t) {
		if obj == skip {
			continue
		}
		taken[strings.ToLower(obj.fields[1])] = struct{}{}
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s %d", base, n)
		if _, exists := taken[strings.ToLower(candidate)]; !exists {
			return candidate
		}
	}
}

// defaultName turns "OS:Fan:ConstantVolume" into "Fan Constant Volume".
func defaultName(t idd.ObjectType) string {
	raw := strings.TrimPrefix(string(t), "OS:")
	var words []string
	for _, part := range strings.Split(raw, ":") {
		words = append(words, splitCamel(part)...)
	}
	return strings.Join(words, " ")
}

func splitCamel(s string) []string {
	var words []string
	var current []rune
	runes := []rune(s)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && len(current) > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				words = append(words, string(current))
				current = nil
			}
		}
		current = append(current, r)
	}
	if len(current) > 0 {
		words = append(words, string(current))
	}
	return words
}
