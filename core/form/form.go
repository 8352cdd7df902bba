package form

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/forms/core/logger"
)

// Form owns the root group of a control tree and runs the traversals over it.
// A Form is not safe for concurrent use.
type Form struct {
	root   *Group
	logger *slog.Logger
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithName names the root group. A named root nests the whole submission
// under that name, the way a form prefix does.
func WithName(name string) FormOption {
	return func(f *Form) {
		f.root.name = name
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) FormOption {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithRoot applies control options, such as cleaners, validators, an
// obfuscator or immutability, to the root group.
func WithRoot(opts ...ControlOption) FormOption {
	return func(f *Form) {
		for _, opt := range opts {
			if opt != nil {
				opt(&f.root.base)
			}
		}
	}
}

// New creates an empty form with a transparent root.
func New(opts ...FormOption) *Form {
	f := &Form{
		root:   NewGroup(""),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Add appends top-level controls.
func (f *Form) Add(controls ...Control) *Form {
	f.root.Add(controls...)
	return f
}

// Root returns the root group.
func (f *Form) Root() *Group {
	return f.root
}

// Prepare recomputes submit paths, inherited obfuscators and immutability
// and reports configuration errors of the whole tree.
func (f *Form) Prepare() error {
	if err := f.root.prepare("", nil, false, map[*Group]bool{}); err != nil {
		f.logger.Error("form configuration invalid",
			logger.Component("form"),
			logger.Form(f.root.name),
			logger.Error(err),
		)
		return err
	}
	return nil
}

// pass carries per-reconciliation state that is not part of the
// whitelist or the changed-set.
type pass struct {
	uploads Uploads
	trigger *Button
}

// Result is the outcome of a reconciliation.
type Result struct {
	// Values is the whitelist: only values contributed by real controls.
	Values Values
	// Changed holds the controls whose value differs from before.
	Changed ChangedSet
	// Trigger is the first submit button accepted, if any.
	Trigger *Button
}

// Reconcile threads submission through the tree. Every control takes its
// value from the submission, unknown keys are dropped, and the result lists
// the accepted values and the changed controls. uploads may be nil.
func (f *Form) Reconcile(submission Values, uploads Uploads) (*Result, error) {
	start := time.Now()
	if err := f.Prepare(); err != nil {
		return nil, err
	}

	p := &pass{uploads: uploads}
	values, changed := f.root.reconcile(scope(submission), p)
	if values == nil {
		values = Values{}
	}
	if changed == nil {
		changed = ChangedSet{}
	}

	res := &Result{Values: values, Changed: changed, Trigger: p.trigger}

	attrs := []any{
		logger.Component("form"),
		logger.Form(f.root.name),
		logger.Count("accepted", len(values)),
		logger.Count("changed", changed.Len()),
		logger.Elapsed(start),
	}
	if p.trigger != nil {
		attrs = append(attrs, logger.Control(p.trigger.Name()))
	}
	f.logger.Debug("form reconciled", attrs...)

	return res, nil
}

// SetValues resets every mutable control from values. Controls whose name is
// missing are cleared.
func (f *Form) SetValues(values Values) error {
	if err := f.Prepare(); err != nil {
		return err
	}
	f.root.load(scope(values), false)
	return nil
}

// MergeValues overwrites only the mutable controls whose name is present in values.
func (f *Form) MergeValues(values Values) error {
	if err := f.Prepare(); err != nil {
		return err
	}
	f.root.load(scope(values), true)
	return nil
}

// Values exports the current values. The shape matches SetValues, so the
// result can be fed back unchanged.
func (f *Form) Values() Values {
	out := Values{}
	f.root.export(out)
	return out
}

// Validate runs the validators of every control and returns those that failed.
func (f *Form) Validate() []Control {
	invalid := f.root.validate()
	for _, c := range invalid {
		f.logger.Debug("control invalid",
			logger.Component("form"),
			logger.Control(c.Name()),
			logger.SubmitPath(c.SubmitPath()),
		)
	}
	f.logger.Debug("form validated",
		logger.Component("form"),
		logger.Form(f.root.name),
		logger.Count("invalid", len(invalid)),
	)
	return invalid
}

// Handle calls the handler of the submit button that triggered res.
func (f *Form) Handle(ctx context.Context, res *Result) error {
	if res == nil || res.Trigger == nil {
		return ErrNoTrigger
	}
	if err := res.Trigger.handler(ctx, f); err != nil {
		return fmt.Errorf("form: handler %q: %w", res.Trigger.Name(), err)
	}
	return nil
}

// Lookup finds a control by name path, looking through transparent groups.
func (f *Form) Lookup(path ...string) (Control, bool) {
	return f.root.Lookup(path...)
}

// Walk visits every control below the root in pre-order.
func (f *Form) Walk(fn func(Control)) {
	for _, c := range f.root.children {
		if g, ok := c.(*Group); ok {
			g.walk(fn)
			continue
		}
		fn(c)
	}
}
