package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ValidatorFunc builds a Rule for a field value and the rule parameters.
type ValidatorFunc func(field, value string, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		// String validators
		"required": requiredValidator,
		"min":      minValidator,
		"max":      maxValidator,
		"len":      lenValidator,
		"between":  betweenValidator,
		"email":    emailValidator,
		"url":      urlValidator,
		"uuid":     uuidValidator,
		"alpha":    alphaValidator,
		"alphanum": alphanumValidator,
		"in":       inValidator,
		"not_in":   notInValidator,
		"contains": containsValidator,
		"prefix":   prefixValidator,
		"suffix":   suffixValidator,
		"regex":    regexValidator,

		// Numeric validators
		"numeric":  numericValidator,
		"range":    rangeValidator,
		"positive": positiveValidator,

		// Date validators
		"date": dateValidator,
	}
)

// RegisterValidator adds a custom validator function to the registry.
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// Check reports unknown rule names in tag. Use it to reject bad tags when a
// form is built rather than when it is validated.
func Check(tag string) error {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, r := range parseTag(tag) {
		if _, ok := registry[r.name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownRule, r.name)
		}
	}
	return nil
}

// Value validates a single value against a tag such as "required;min:3;max:20".
// Rules are separated by semicolons and parameters by commas. All rules are
// evaluated; the returned ValidationErrors keep their order.
//
// Slices and maps are validated by item count: only required, min, max and
// len apply to them.
func Value(field string, v any, tag string) error {
	var errs ValidationErrors

	registryMu.RLock()
	defer registryMu.RUnlock()

	rv := reflect.ValueOf(v)
	collection := rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map) && rv.Type() != reflect.TypeOf([]byte(nil))

	for _, r := range parseTag(tag) {
		var rule Rule
		if collection {
			rule = collectionRule(field, rv.Len(), r)
		} else {
			fn, ok := registry[r.name]
			if !ok {
				errs.Add(ValidationError{
					Field:          field,
					Message:        fmt.Sprintf("unknown rule %q", r.name),
					TranslationKey: "validation.unknown",
				})
				continue
			}
			rule = fn(field, toString(v), r.params)
		}
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

type parsedRule struct {
	name   string
	params []string
}

func parseTag(tag string) []parsedRule {
	var rules []parsedRule
	for _, ruleStr := range strings.Split(tag, ";") {
		ruleStr = strings.TrimSpace(ruleStr)
		if ruleStr == "" {
			continue
		}

		// Split rule name and parameters
		name, paramStr, _ := strings.Cut(ruleStr, ":")
		r := parsedRule{name: strings.TrimSpace(name)}

		if paramStr = strings.TrimSpace(paramStr); paramStr != "" {
			r.params = strings.Split(paramStr, ",")
			for i := range r.params {
				r.params[i] = strings.TrimSpace(r.params[i])
			}
		}
		rules = append(rules, r)
	}
	return rules
}

func collectionRule(field string, n int, r parsedRule) Rule {
	bound := 0
	if len(r.params) > 0 {
		bound, _ = strconv.Atoi(r.params[0])
	}

	var check func() bool
	var message string
	switch r.name {
	case "required":
		check, message = func() bool { return n > 0 }, "field is required"
	case "min":
		check, message = func() bool { return n >= bound }, fmt.Sprintf("must have at least %d items", bound)
	case "max":
		check, message = func() bool { return n <= bound }, fmt.Sprintf("must have at most %d items", bound)
	case "len":
		check, message = func() bool { return n == bound }, fmt.Sprintf("must have exactly %d items", bound)
	default:
		return pass()
	}

	return Rule{
		Check: check,
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation." + r.name + "_items",
			TranslationValues: map[string]any{
				"field": field,
				r.name:  bound,
			},
		},
	}
}

func toString(v any) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return vv
	case []byte:
		return string(vv)
	case bool:
		if vv {
			return "1"
		}
		return ""
	case float64:
		return strconv.FormatFloat(vv, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(vv), 'f', -1, 32)
	default:
		return fmt.Sprint(vv)
	}
}

// Built-in validators

func requiredValidator(field, value string, params []string) Rule {
	return Required(field, value)
}

func minValidator(field, value string, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}
	min, _ := strconv.Atoi(params[0])
	return MinLen(field, value, min)
}

func maxValidator(field, value string, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}
	max, _ := strconv.Atoi(params[0])
	return MaxLen(field, value, max)
}

func lenValidator(field, value string, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}
	expectedLen, _ := strconv.Atoi(params[0])
	return Rule{
		Check: func() bool {
			return len([]rune(value)) == expectedLen
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d characters long", expectedLen),
			TranslationKey: "validation.exact_length",
			TranslationValues: map[string]any{
				"field": field,
				"len":   expectedLen,
			},
		},
	}
}

func betweenValidator(field, value string, params []string) Rule {
	if len(params) < 2 {
		return pass()
	}
	min, _ := strconv.Atoi(params[0])
	max, _ := strconv.Atoi(params[1])
	return Rule{
		Check: func() bool {
			l := len([]rune(value))
			return l >= min && l <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %d and %d characters long", min, max),
			TranslationKey: "validation.between_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

func emailValidator(field, value string, params []string) Rule {
	if value == "" {
		return pass()
	}
	return ValidEmail(field, value)
}

func urlValidator(field, value string, params []string) Rule {
	if value == "" {
		return pass()
	}
	return ValidURL(field, value)
}

func uuidValidator(field, value string, params []string) Rule {
	if value == "" {
		return pass()
	}
	version := 0 // Any version
	if len(params) > 0 {
		version, _ = strconv.Atoi(params[0])
	}
	return ValidUUID(field, value, version)
}

func alphaValidator(field, value string, params []string) Rule {
	return Charset(field, value, "alpha", isAlpha)
}

func alphanumValidator(field, value string, params []string) Rule {
	return Charset(field, value, "alphanumeric", isAlphanumeric)
}

func inValidator(field, value string, params []string) Rule {
	if value == "" {
		return pass()
	}
	return InList(field, value, params)
}

func notInValidator(field, value string, params []string) Rule {
	return NotInList(field, value, params)
}

func containsValidator(field, value string, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}
	substring := params[0]
	return Rule{
		Check: func() bool {
			return strings.Contains(value, substring)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain '%s'", substring),
			TranslationKey: "validation.contains",
			TranslationValues: map[string]any{
				"field":     field,
				"substring": substring,
			},
		},
	}
}

func prefixValidator(field, value string, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}
	prefix := params[0]
	return Rule{
		Check: func() bool {
			return strings.HasPrefix(value, prefix)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must start with '%s'", prefix),
			TranslationKey: "validation.prefix",
			TranslationValues: map[string]any{
				"field":  field,
				"prefix": prefix,
			},
		},
	}
}

func suffixValidator(field, value string, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}
	suffix := params[0]
	return Rule{
		Check: func() bool {
			return strings.HasSuffix(value, suffix)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must end with '%s'", suffix),
			TranslationKey: "validation.suffix",
			TranslationValues: map[string]any{
				"field":  field,
				"suffix": suffix,
			},
		},
	}
}

func regexValidator(field, value string, params []string) Rule {
	if len(params) < 1 || value == "" {
		return pass()
	}
	pattern := params[0]
	description := "pattern"
	if len(params) > 1 {
		description = params[1]
	}
	return Matches(field, value, pattern, description)
}

func numericValidator(field, value string, params []string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			_, err := strconv.ParseFloat(value, 64)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number",
			TranslationKey: "validation.numeric",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func rangeValidator(field, value string, params []string) Rule {
	if len(params) < 2 {
		return pass()
	}
	min, err1 := strconv.ParseFloat(params[0], 64)
	max, err2 := strconv.ParseFloat(params[1], 64)
	if err1 != nil || err2 != nil {
		return pass()
	}
	return Range(field, value, min, max)
}

func positiveValidator(field, value string, params []string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			n, err := strconv.ParseFloat(value, 64)
			return err == nil && n > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be positive",
			TranslationKey: "validation.positive",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func dateValidator(field, value string, params []string) Rule {
	// Try common date formats unless one is given
	formats := []string{
		"2006-01-02",
		"2006-01-02 15:04:05",
		time.RFC3339,
	}
	if len(params) > 0 {
		formats = params
	}

	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			for _, format := range formats {
				if _, err := time.Parse(format, value); err == nil {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid date",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
