// Package sanitizer provides the cleaning pipeline applied to submitted form
// values before they are compared and stored.
//
// A Cleaner is a pure value-normalization step. Cleaners accept nil, may
// return nil to signal that nothing meaningful remains, and are chained in
// registration order.
//
// # String Sanitizers
//
// Plain `func(string) string` helpers are lifted into cleaners with String:
//
//	import "github.com/dmitrymomot/forms/core/sanitizer"
//
//	c := sanitizer.Chain(
//		sanitizer.String(sanitizer.Trim),
//		sanitizer.String(sanitizer.RemoveExtraWhitespace),
//		sanitizer.Nullify,
//	)
//
//	c.Clean("  12   Main St ") // "12 Main St"
//	c.Clean("   ")             // nil
//	c.Clean(nil)               // nil
//
// String panics with ErrUnsupportedValue when given a map or slice. Form
// controls never pass wrong-shaped submission data to their cleaners, so such
// a call is a programmer error.
//
// # Registry
//
// Named cleaners can be combined from a tag:
//
//	c, err := sanitizer.Parse("trim,lower,max:64")
//	if err != nil {
//		// ErrUnknownSanitizer or ErrInvalidParam
//	}
//
// Available names:
//
//   - trim, lower, upper, title, kebab, single_line, no_spaces, nfc
//   - strip_html, escape_html, alphanum, digits, no_null, no_control
//   - email, phone, url, filename, number
//   - nullify
//   - text, slug, username, safe_text (composites)
//   - max:N (truncate to N runes)
//
// Custom cleaners are added with Register.
//
// # Scope Cleaners
//
// Composite controls can clean their whole nested scope at once:
//
//	point := sanitizer.MapFunc(func(m map[string]any) map[string]any {
//		if m["lat"] == nil || m["lng"] == nil {
//			return map[string]any{}
//		}
//		return m
//	})
//
//	trimAll := sanitizer.Each(sanitizer.String(sanitizer.Trim))
package sanitizer
