package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Required fails for empty or whitespace-only strings.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLen requires at least min runes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLen allows at most max runes.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// Range requires a numeric string within [min, max]. Empty values pass;
// combine with Required to reject them.
func Range(field, value string, min, max float64) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return false
			}
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %s and %s", formatFloat(min), formatFloat(max)),
			TranslationKey: "validation.range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// ValidEmail checks the address is a bare RFC 5322 address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			addr, err := mail.ParseAddress(value)
			return err == nil && addr.Address == value
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidURL requires an absolute http or https URL with a host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidUUID accepts any UUID, or only the given version when version > 0.
func ValidUUID(field, value string, version int) Rule {
	return Rule{
		Check: func() bool {
			id, err := uuid.Parse(value)
			if err != nil {
				return false
			}
			return version <= 0 || int(id.Version()) == version
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid UUID",
			TranslationKey: "validation.uuid",
			TranslationValues: map[string]any{
				"field":   field,
				"version": version,
			},
		},
	}
}

// InList requires value to be one of list.
func InList(field, value string, list []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(list, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(list, ", ")),
			TranslationKey: "validation.in",
			TranslationValues: map[string]any{
				"field":  field,
				"values": list,
			},
		},
	}
}

// NotInList rejects values contained in list.
func NotInList(field, value string, list []string) Rule {
	return Rule{
		Check: func() bool {
			return !slices.Contains(list, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not be one of: %s", strings.Join(list, ", ")),
			TranslationKey: "validation.not_in",
			TranslationValues: map[string]any{
				"field":  field,
				"values": list,
			},
		},
	}
}

// Matches requires value to match pattern. An invalid pattern never matches.
func Matches(field, value, pattern, description string) Rule {
	return Rule{
		Check: func() bool {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return false
			}
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s", description),
			TranslationKey: "validation.regex",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": description,
			},
		},
	}
}

// Charset requires every rune to satisfy allowed.
func Charset(field, value, name string, allowed func(rune) bool) Rule {
	return Rule{
		Check: func() bool {
			for _, r := range value {
				if !allowed(r) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain only %s characters", name),
			TranslationKey: "validation." + name,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
