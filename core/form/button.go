package form

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/forms/pkg/obfuscate"
)

// Handler runs when its submit button triggered the submission.
type Handler func(ctx context.Context, f *Form) error

// Button is an immutable trigger control. It is accepted only when the
// submitted value equals its configured value and it never appears in the
// changed-set.
type Button struct {
	leaf
	submit  bool
	handler Handler
}

// NewButton creates a plain button.
func NewButton(name string, value any, opts ...ControlOption) *Button {
	b := &Button{leaf: newLeaf(name, opts)}
	b.value = value
	b.init(b)
	return b
}

// NewSubmitButton creates a button bound to a handler. A nil handler is
// reported by Prepare.
func NewSubmitButton(name string, value any, handler Handler, opts ...ControlOption) *Button {
	b := NewButton(name, value, opts...)
	b.submit = true
	b.handler = handler
	return b
}

// IsSubmit reports whether the button triggers a handler.
func (b *Button) IsSubmit() bool { return b.submit }

func (b *Button) prepare(parentPath string, inherited obfuscate.Obfuscator, _ bool, ancestors map[*Group]bool) error {
	if err := b.leaf.prepare(parentPath, inherited, true, ancestors); err != nil {
		return err
	}
	// Buttons are immutable whatever their ancestors say.
	b.frozen = true
	if b.submit && b.handler == nil {
		return fmt.Errorf("%w: %q", ErrMissingHandler, b.path)
	}
	return nil
}

func (b *Button) reconcile(s Values, p *pass) (Values, ChangedSet) {
	raw, present := scalar(s, b.key)
	values, _ := b.fixed(raw, present)
	if values != nil && b.submit && p.trigger == nil {
		p.trigger = b
	}
	return values, nil
}

// export skips buttons: they carry no data.
func (b *Button) export(Values) {}

// load skips buttons: their value is configuration, not data.
func (b *Button) load(Values, bool) {}
