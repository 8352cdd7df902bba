package form

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/forms/core/sanitizer"
	"github.com/dmitrymomot/forms/pkg/obfuscate"
)

// Control is a node of the form tree: a leaf holding one value or a group of children.
type Control interface {
	// Name is the control identity. Groups with an empty name are transparent.
	Name() string
	// SubmitPath is the bracket-nested key the control occupies in a
	// submission. It is recomputed by every Prepare.
	SubmitPath() string
	// Value returns the current value.
	Value() any
	// Errors returns the messages recorded by the last validation.
	Errors() []string
	// AddError records a user-facing validation message.
	AddError(msg string)

	node() *base
	setValue(v any)
	prepare(parentPath string, inherited obfuscate.Obfuscator, frozen bool, ancestors map[*Group]bool) error
	reconcile(s Values, p *pass) (Values, ChangedSet)
	load(values Values, merge bool)
	export(values Values)
	validate() []Control
}

// Mutability is the tri-state immutability setting of a control.
type Mutability int

const (
	// Inherit takes immutability from the parent group.
	Inherit Mutability = iota
	// Immutable controls accept a submission only when it reproduces their value.
	Immutable
	// Mutable controls always accept submissions, even inside an immutable group.
	Mutable
)

// ControlOption configures a control.
type ControlOption func(*base)

// WithCleaners appends cleaners. Leaves apply them to the submitted value;
// groups apply them once to their whole nested scope.
func WithCleaners(cleaners ...sanitizer.Cleaner) ControlOption {
	return func(b *base) {
		b.cleaners = append(b.cleaners, cleaners...)
	}
}

// WithClean appends cleaners from a sanitizer tag such as "trim,lower".
// On a group the tag applies to every scalar of its nested scope.
func WithClean(tag string) ControlOption {
	return func(b *base) {
		c, err := sanitizer.Parse(tag)
		if err != nil {
			b.configErrs = append(b.configErrs, fmt.Errorf("%w: %w", ErrInvalidOption, err))
			return
		}
		b.cleaners = append(b.cleaners, tagged{c})
	}
}

// tagged marks a scalar cleaner built from a sanitizer tag.
type tagged struct{ sanitizer.Cleaner }

// WithValidators appends validators. They run in order and stop at the first failure.
func WithValidators(validators ...Validator) ControlOption {
	return func(b *base) {
		b.validators = append(b.validators, validators...)
	}
}

// WithRules appends a validator built from a rule tag such as "required;max:64".
func WithRules(tag string) ControlOption {
	return func(b *base) {
		v, err := Rules(tag)
		if err != nil {
			b.configErrs = append(b.configErrs, fmt.Errorf("%w: %w", ErrInvalidOption, err))
			return
		}
		b.validators = append(b.validators, v)
	}
}

// WithObfuscator sets the obfuscator used for the submit key of the control
// and of its descendants, unless they set their own.
func WithObfuscator(o obfuscate.Obfuscator) ControlOption {
	return func(b *base) {
		b.obfuscator = o
	}
}

// WithImmutable marks the control immutable (true) or explicitly mutable (false).
func WithImmutable(immutable bool) ControlOption {
	return func(b *base) {
		if immutable {
			b.mutability = Immutable
		} else {
			b.mutability = Mutable
		}
	}
}

// WithValue sets the initial value of a leaf.
func WithValue(v any) ControlOption {
	return func(b *base) {
		b.initial, b.hasInitial = v, true
	}
}

type base struct {
	self       Control
	name       string
	key        string
	path       string
	obfuscator obfuscate.Obfuscator
	effective  obfuscate.Obfuscator
	mutability Mutability
	frozen     bool
	cleaners   []sanitizer.Cleaner
	validators []Validator
	errors     []string
	configErrs []error
	initial    any
	hasInitial bool
}

func newBase(name string, opts []ControlOption) base {
	b := base{name: name}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}
	return b
}

// Name returns the control name.
func (b *base) Name() string { return b.name }

// SubmitPath returns the key path computed by the last Prepare.
func (b *base) SubmitPath() string { return b.path }

// Errors returns the validation messages.
func (b *base) Errors() []string { return b.errors }

// AddError records a validation message.
func (b *base) AddError(msg string) { b.errors = append(b.errors, msg) }

// Immutable reports whether the control was immutable at the last Prepare.
func (b *base) Immutable() bool { return b.frozen }

func (b *base) node() *base { return b }

// preparePath derives the submit key and path and resolves inherited settings.
func (b *base) preparePath(parentPath string, inherited obfuscate.Obfuscator, frozen bool) {
	b.effective = inherited
	if b.obfuscator != nil {
		b.effective = b.obfuscator
	}

	switch b.mutability {
	case Immutable:
		b.frozen = true
	case Mutable:
		b.frozen = false
	default:
		b.frozen = frozen
	}

	b.key = b.encode(b.name)
	b.path = composePath(parentPath, b.key)
}

// encode maps an identifier to its public form.
func (b *base) encode(id string) string {
	if id == "" || b.effective == nil {
		return id
	}
	return b.effective.Encode(id)
}

func (b *base) configError() error {
	return errors.Join(b.configErrs...)
}

func (b *base) clean(v any) any {
	for _, c := range b.cleaners {
		v = c.Clean(v)
	}
	return v
}

// runValidators resets the recorded messages and runs validators until the first failure.
func (b *base) runValidators() bool {
	b.errors = nil
	for _, v := range b.validators {
		if v.Validate(b.self) {
			continue
		}
		if len(b.errors) == 0 {
			b.AddError("invalid value")
		}
		return false
	}
	return true
}

// leaf implements the behavior shared by single-value controls.
type leaf struct {
	base
	value any
}

func newLeaf(name string, opts []ControlOption) leaf {
	return leaf{base: newBase(name, opts)}
}

// init binds the outer control and applies WithValue.
func (l *leaf) init(self Control) {
	l.self = self
	if l.hasInitial {
		self.setValue(l.initial)
	}
}

// Value returns the current value.
func (l *leaf) Value() any { return l.value }

// SetValue replaces the current value.
func (l *leaf) SetValue(v any) { l.self.setValue(v) }

func (l *leaf) setValue(v any) { l.value = v }

func (l *leaf) prepare(parentPath string, inherited obfuscate.Obfuscator, frozen bool, _ map[*Group]bool) error {
	if l.name == "" {
		return fmt.Errorf("%w: leaf under %q", ErrUnnamedControl, parentPath)
	}
	l.preparePath(parentPath, inherited, frozen)
	return l.configError()
}

// load seeds the value from values. Immutable controls keep their value.
func (l *leaf) load(values Values, merge bool) {
	if l.frozen {
		return
	}
	v, ok := values[l.name]
	if !ok {
		if merge {
			return
		}
		v = nil
	}
	l.self.setValue(v)
}

func (l *leaf) export(values Values) {
	values[l.name] = l.self.Value()
}

func (l *leaf) validate() []Control {
	if l.runValidators() {
		return nil
	}
	return []Control{l.self}
}

// accepted builds the whitelist and changed-set contribution of a leaf.
func (l *leaf) accepted(v any, changed bool) (Values, ChangedSet) {
	var cs ChangedSet
	if changed {
		cs = ChangedSet{l.name: l.self}
	}
	return Values{l.name: v}, cs
}

// fixed accepts the current value only when the submission reproduces it.
// Immutable controls never report a change.
func (l *leaf) fixed(candidate any, present bool) (Values, ChangedSet) {
	if !present || Canonical(candidate) != Canonical(l.value) {
		return nil, nil
	}
	return Values{l.name: l.value}, nil
}
