package form

import (
	"github.com/dmitrymomot/forms/core/sanitizer"
	"github.com/dmitrymomot/forms/core/validator"
)

// Text is a single-value control: text inputs, text areas, hidden and
// password fields all reconcile the same way.
type Text struct {
	leaf
}

// NewText creates a text control.
func NewText(name string, opts ...ControlOption) *Text {
	t := &Text{leaf: newLeaf(name, opts)}
	t.init(t)
	return t
}

// NewMarker creates an immutable hidden control with a fixed value, such as
// a marker telling which form was posted.
func NewMarker(name string, value any, opts ...ControlOption) *Text {
	return NewText(name, append(opts, WithValue(value), WithImmutable(true))...)
}

func (t *Text) reconcile(s Values, _ *pass) (Values, ChangedSet) {
	raw, present := scalar(s, t.key)
	if t.frozen {
		return t.fixed(raw, present)
	}

	v := t.clean(raw)
	changed := Canonical(t.value) != Canonical(v)
	t.value = v
	return t.accepted(v, changed)
}

// Number is a text control that only keeps valid decimal numbers.
// Values are stored in their cleaned string form.
type Number struct {
	Text
}

// NewNumber creates a number control. The number cleaner runs after any
// cleaners given in opts.
func NewNumber(name string, opts ...ControlOption) *Number {
	n := &Number{Text: Text{leaf: newLeaf(name, append(opts, WithCleaners(sanitizer.Number)))}}
	n.init(n)
	return n
}

// SetRange installs a validator requiring the value to lie within [min, max].
// Empty values pass; add a required rule to reject them.
func (n *Number) SetRange(min, max float64) *Number {
	n.validators = append(n.validators, ValidatorFunc(func(c Control) bool {
		rule := validator.Range(c.Name(), Canonical(c.Value()), min, max)
		if rule.Check() {
			return true
		}
		c.AddError(rule.Error.Message)
		return false
	}))
	return n
}
