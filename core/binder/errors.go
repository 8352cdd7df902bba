package binder

import "errors"

// Error variables define common failures while reading uploads from a request.
var (
	// ErrUnsupportedMediaType indicates the Content-Type header specifies a media type
	// that carries no files (e.g., application/json).
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFailedToParseForm indicates form data parsing failed due to malformed
	// multipart boundaries or a truncated body.
	ErrFailedToParseForm = errors.New("failed to parse form data")

	// ErrMissingContentType indicates the request lacks a Content-Type header.
	ErrMissingContentType = errors.New("missing content type")
)
