package formdef

import "errors"

var (
	// ErrDefinition indicates the definition could not be parsed or decoded.
	// It wraps the HCL diagnostics.
	ErrDefinition = errors.New("formdef: invalid form definition")

	// ErrUnknownHandler indicates a submit block names a handler that was not registered.
	ErrUnknownHandler = errors.New("formdef: unknown handler")
)
