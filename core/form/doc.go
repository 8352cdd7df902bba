// Package form models a web form as a tree of controls and reconciles
// untrusted submissions against it.
//
// A tree is built from leaves (Text, Number, Checkbox, Button, File,
// MultiFile), grouped-choice controls (CheckboxSet, RadioSet, Select) and
// groups. A named Group introduces a nesting level in the submission; a
// group with an empty name is transparent and shares its parent's namespace.
//
// Reconciliation threads a submission through the tree and returns two
// structures: a whitelist holding only the values real controls accepted,
// and a changed-set of the controls whose value differs from before.
//
//	f := form.New()
//	f.Add(
//		form.NewGroup("address").Add(
//			form.NewText("street", form.WithClean("text")),
//			form.NewText("city", form.WithClean("text"), form.WithRules("required")),
//		),
//		form.NewSubmitButton("save", "Save", save),
//	)
//
//	res, err := f.Reconcile(submission, uploads)
//	if err != nil {
//		return err // configuration error
//	}
//	if invalid := f.Validate(); len(invalid) > 0 {
//		return render(f)
//	}
//	return f.Handle(ctx, res)
//
// # Change detection
//
// Values are compared by their Canonical string form: nil, false and ""
// are equal, 0 and "0" are equal, "0" and "0.0" are not.
//
// # Immutability
//
// A control marked WithImmutable(true), and every descendant of such a
// group that does not opt out with WithImmutable(false), keeps its value.
// It is accepted into the whitelist only when the submission reproduces
// the current value and never appears in the changed-set. Buttons are
// always immutable.
//
// # Obfuscation
//
// WithObfuscator replaces submit keys and option codes with tokens produced
// by an obfuscate.Obfuscator. Descendants inherit it unless they set their
// own. Whitelist and changed-set keys always use plain names.
package form
