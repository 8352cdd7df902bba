package obfuscate

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// signatureSize is the number of HMAC-SHA256 bytes kept in a token.
const signatureSize = 8

// Signed encodes identifiers as `<base64url-id>.<base64url-signature>`.
type Signed struct {
	secret []byte
}

// NewSigned creates a Signed obfuscator. The secret must not be empty.
func NewSigned(secret string) (*Signed, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidKey)
	}
	return &Signed{secret: []byte(secret)}, nil
}

// Encode returns the signed token for id.
func (s *Signed) Encode(id string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(id))
	sig := base64.RawURLEncoding.EncodeToString(s.sign([]byte(id)))
	return payload + "." + sig
}

// Decode verifies the token signature and returns the original identifier.
func (s *Signed) Decode(token string) (string, error) {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok || sig == "" {
		return "", ErrInvalidToken
	}

	id, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !hmac.Equal(got, s.sign(id)) {
		return "", ErrSignatureInvalid
	}
	return string(id), nil
}

func (s *Signed) sign(data []byte) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(data)
	return mac.Sum(nil)[:signatureSize]
}
