package form

import (
	"errors"

	"github.com/dmitrymomot/forms/core/validator"
)

// Validator checks a control after reconciliation. On failure it may record
// a message with Control.AddError.
type Validator interface {
	Validate(c Control) bool
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(c Control) bool

// Validate calls fn(c).
func (fn ValidatorFunc) Validate(c Control) bool { return fn(c) }

// Rules builds a validator from a rule tag such as "required;min:3".
// Unknown rule names are reported immediately. Checkbox sets are validated
// by their checked keys, so "required" means at least one option checked.
func Rules(tag string) (Validator, error) {
	if err := validator.Check(tag); err != nil {
		return nil, err
	}
	return ValidatorFunc(func(c Control) bool {
		v := c.Value()
		if set, ok := c.(*CheckboxSet); ok {
			v = set.Checked()
		}

		err := validator.Value(c.Name(), v, tag)
		if err == nil {
			return true
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			c.AddError(verrs[0].Message)
		}
		return false
	}), nil
}

// MustRules is like Rules but panics on an unknown rule.
func MustRules(tag string) Validator {
	v, err := Rules(tag)
	if err != nil {
		panic(err)
	}
	return v
}

// Required rejects empty values with msg.
func Required(msg string) Validator {
	return ValidatorFunc(func(c Control) bool {
		if !empty(c) {
			return true
		}
		c.AddError(msg)
		return false
	})
}

func empty(c Control) bool {
	switch cc := c.(type) {
	case *CheckboxSet:
		return len(cc.Checked()) == 0
	case *MultiFile:
		return len(cc.Uploads()) == 0
	case *File:
		return cc.Upload() == nil
	case *Group:
		return false
	}
	return Canonical(c.Value()) == ""
}
