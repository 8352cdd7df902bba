package form

import "errors"

// Configuration errors. They are reported by Prepare and Reconcile and
// indicate a programming mistake in how the form was built.
var (
	// ErrUnnamedControl indicates a leaf control was created without a name.
	ErrUnnamedControl = errors.New("form: control must have a name")

	// ErrCycle indicates a group contains itself.
	ErrCycle = errors.New("form: group contains itself")

	// ErrMissingHandler indicates a submit button has no handler bound.
	ErrMissingHandler = errors.New("form: submit button has no handler")

	// ErrInvalidOption indicates a control option could not be applied,
	// such as an unknown cleaner or validation rule.
	ErrInvalidOption = errors.New("form: invalid control option")
)

// ErrNoTrigger is returned by Handle when no submit button matched the submission.
var ErrNoTrigger = errors.New("form: no submit button triggered")
