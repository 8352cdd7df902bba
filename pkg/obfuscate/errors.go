package obfuscate

import "errors"

var (
	// ErrInvalidToken indicates the token format is malformed or not valid base64url.
	ErrInvalidToken = errors.New("obfuscate: invalid token")

	// ErrSignatureInvalid indicates the token signature does not match its payload.
	ErrSignatureInvalid = errors.New("obfuscate: signature invalid")

	// ErrInvalidKey indicates the secret or key material is unusable.
	ErrInvalidKey = errors.New("obfuscate: invalid key")

	// ErrInvalidPrefix indicates the identifier prefix pattern is malformed.
	ErrInvalidPrefix = errors.New("obfuscate: invalid prefix")
)
