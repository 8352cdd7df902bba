// Package obfuscate provides reversible encoding of identifiers into opaque tokens.
//
// Forms use an Obfuscator to hide sequential or database-style identifiers
// (control names, option keys) from the client. Every implementation is
// deterministic: encoding the same identifier twice yields the same token, so
// a token computed while preparing a form matches the key found in the
// submission that comes back.
//
// # Implementations
//
//   - Signed: base64url identifier plus a truncated HMAC-SHA256 signature.
//     Tamper-evident but not secret.
//   - Sealed: AES-256-GCM with an HKDF-derived key and a synthetic nonce.
//     Hides the identifier entirely.
//   - Prefix: prepends a fixed, validated prefix. Useful to namespace fields
//     without any cryptography.
//
// # Usage
//
//	import "github.com/dmitrymomot/forms/pkg/obfuscate"
//
//	obf, err := obfuscate.NewSigned("your-secret-key")
//	if err != nil {
//		// Handle configuration error
//	}
//
//	token := obf.Encode("42")
//	id, err := obf.Decode(token) // "42"
//
// # Error Handling
//
//   - ErrInvalidToken: token is malformed or contains invalid base64
//   - ErrSignatureInvalid: token was tampered with or created with another secret
//   - ErrInvalidKey: secret or key material is empty or has the wrong length
//   - ErrInvalidPrefix: prefix pattern is malformed
//
// Configuration errors are returned by the constructors; Decode only fails on
// untrusted input.
package obfuscate
