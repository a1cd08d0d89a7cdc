// Package binding connects text edit state to model fields. An edit is
// bound to a target (a model object or one extensible group of it) through
// capability callbacks; user input is committed through the callbacks and
// model changes flow back into the displayed text. The edits hold no
// terminal state of their own so any front end can render them.
package binding

import (
	"errors"
	"regexp"

	"go.uber.org/zap"

	"github.com/kingrea/openstudio/internal/workspace"
)

var (
	// ErrAutosizeAutocalculateConflict is returned when a binding declares
	// both autosize and autocalculate capabilities.
	ErrAutosizeAutocalculateConflict = errors.New("binding: a field can only be autosized or autocalculated, it cannot be both")
	ErrNoGetter                      = errors.New("binding: a getter is required")
	ErrNoTarget                      = errors.New("binding: target is required")
	ErrUnknownAttribute              = errors.New("binding: unknown attribute")
)

// Sentinel texts shown for autosized and autocalculated fields.
const (
	AutosizeText      = "autosize"
	AutocalculateText = "autocalculate"
)

var autoPattern = regexp.MustCompile(`[aA][uU][tT][oO]`)

// Target is what an edit observes. model.ModelObject and
// model.ExtensibleGroup both satisfy it.
type Target interface {
	OnChange(fn func()) *workspace.Subscription
	OnRemove(fn func(workspace.Handle)) *workspace.Subscription
}

// emptier is implemented by targets that can disappear without being
// removed, such as extensible groups.
type emptier interface {
	Empty() bool
}

// Option customizes an edit.
type Option func(*core)

// WithLogger logs reverted input at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *core) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFocusHandler registers fn to receive focus changes along with whether
// the edit currently holds data.
func WithFocusHandler(fn func(inFocus, hasData bool)) Option {
	return func(c *core) { c.onFocus = fn }
}

// core holds the state shared by every edit: the text buffer, the last text
// written from the model, and the subscriptions to the bound target.
type core struct {
	text      string
	shown     string
	enabled   bool
	defaulted bool
	focused   bool
	target    Target
	subs      []*workspace.Subscription
	logger    *zap.Logger
	onFocus   func(inFocus, hasData bool)
}

func newCore(opts []Option) core {
	c := core{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// attach subscribes to target. refresh runs on every change; detach runs on
// removal or once the target reports itself empty.
func (c *core) attach(target Target, refresh, detach func()) {
	c.target = target
	c.enabled = true
	c.subs = append(c.subs,
		target.OnChange(func() {
			if e, ok := target.(emptier); ok && e.Empty() {
				detach()
				return
			}
			refresh()
		}),
		target.OnRemove(func(workspace.Handle) { detach() }),
	)
}

func (c *core) detach() {
	for _, sub := range c.subs {
		sub.Close()
	}
	c.subs = nil
	c.target = nil
	c.enabled = false
}

// show replaces the buffer with text read from the model.
func (c *core) show(text string, defaulted bool) {
	c.text = text
	c.shown = text
	c.defaulted = defaulted
}

// Text is the current buffer.
func (c *core) Text() string { return c.text }

// SetText replaces the buffer, as typing does. Nothing is committed until
// EditingFinished.
func (c *core) SetText(s string) {
	if c.enabled {
		c.text = s
	}
}

// Enabled reports whether the edit is bound.
func (c *core) Enabled() bool { return c.enabled }

// Bound reports whether the edit has a target.
func (c *core) Bound() bool { return c.target != nil }

// Defaulted reports whether the displayed value is the schema default.
func (c *core) Defaulted() bool { return c.defaulted }

// Focused reports whether the edit is highlighted for input.
func (c *core) Focused() bool { return c.focused }

// HasData reports whether the edit is bound and shows a value.
func (c *core) HasData() bool { return c.enabled && c.text != "" }

func (c *core) FocusIn() {
	c.focused = true
	if c.onFocus != nil {
		c.onFocus(true, c.HasData())
	}
}

func (c *core) FocusOut() {
	c.focused = false
	if c.onFocus != nil {
		c.onFocus(false, false)
	}
}

func (c *core) revert(reason string, refresh func()) {
	c.logger.Debug("edit reverted", zap.String("text", c.text), zap.String("reason", reason))
	refresh()
}
