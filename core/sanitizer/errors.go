package sanitizer

import "errors"

var (
	// ErrUnknownSanitizer indicates a cleaner tag references a name missing from the registry.
	ErrUnknownSanitizer = errors.New("sanitizer: unknown sanitizer")

	// ErrInvalidParam indicates a parameterized cleaner tag (e.g. max:n) has a bad parameter.
	ErrInvalidParam = errors.New("sanitizer: invalid parameter")

	// ErrUnsupportedValue is raised when a string cleaner receives a non-scalar value.
	// It signals a programmer error and is used as a panic value.
	ErrUnsupportedValue = errors.New("sanitizer: unsupported value type")
)
