// Package validator provides rule-based validation of single form values.
//
// Rules are written as a tag: rule names separated by semicolons, parameters
// separated by commas.
//
//	import "github.com/dmitrymomot/forms/core/validator"
//
//	err := validator.Value("username", "jo", "required;min:3;max:20;alphanum")
//	if err != nil {
//		for _, e := range err.(validator.ValidationErrors) {
//			fmt.Println(e.Field, e.Message, e.TranslationKey)
//		}
//	}
//
// Values are validated in their string form: nil and false are empty, true is
// "1" and numbers use their shortest decimal representation. Slices and maps
// are validated by item count (required, min, max, len).
//
// Most format rules (email, url, uuid, in, regex, numeric, range, positive,
// date) accept the empty string so optional fields can be combined with
// required when a value is mandatory.
//
// # Built-in Rules
//
//   - required
//   - min:N, max:N, len:N, between:A,B (rune length)
//   - email, url, uuid[:VERSION]
//   - alpha, alphanum
//   - in:A,B,..., not_in:A,B,..., contains:S, prefix:S, suffix:S, regex:P[,DESC]
//   - numeric, range:MIN,MAX, positive
//   - date[:LAYOUT]
//
// # Programmatic Rules
//
// The rule constructors can be used directly:
//
//	rule := validator.Range("age", "17", 18, 120)
//	if !rule.Check() {
//		log.Println(rule.Error.Message)
//	}
//
// # Custom Rules
//
//	validator.RegisterValidator("even", func(field, value string, params []string) validator.Rule {
//		return validator.Rule{
//			Check: func() bool { n, _ := strconv.Atoi(value); return n%2 == 0 },
//			Error: validator.ValidationError{Field: field, Message: "must be even"},
//		}
//	})
//
// Use Check to reject tags with unknown rules when building a form.
package validator
