package validator

import (
	"errors"
	"strings"
)

// ErrUnknownRule indicates a validation tag references a rule missing from the registry.
var ErrUnknownRule = errors.New("validator: unknown rule")

// ValidationError describes a single failed rule.
type ValidationError struct {
	Field             string         `json:"field"`
	Message           string         `json:"message"`
	TranslationKey    string         `json:"translation_key"`
	TranslationValues map[string]any `json:"translation_values,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors collects failed rules in evaluation order.
type ValidationErrors []ValidationError

// Add appends a validation error.
func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

// IsEmpty reports whether no rule failed.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Has reports whether the given field has at least one error.
func (e ValidationErrors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Messages returns the user-facing messages in order.
func (e ValidationErrors) Messages() []string {
	out := make([]string, 0, len(e))
	for _, err := range e {
		out = append(out, err.Message)
	}
	return out
}

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, err := range e {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

// Rule pairs a deferred check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

func pass() Rule {
	return Rule{Check: func() bool { return true }}
}
