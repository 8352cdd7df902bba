package obfuscate

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KeySize is the required length of both Sealed key inputs.
const KeySize = 32

const hkdfInfo = "forms/obfuscate/sealed"

// Sealed hides identifiers with AES-256-GCM.
//
// The nonce is derived from the identifier with HMAC-SHA256, so tokens are
// stable across calls. The encryption and nonce keys are derived with HKDF
// from an application key and a workspace key.
type Sealed struct {
	aead     cipher.AEAD
	nonceKey []byte
}

// NewSealed creates a Sealed obfuscator. Both keys must be exactly KeySize bytes.
func NewSealed(appKey, workspaceKey []byte) (*Sealed, error) {
	if len(appKey) != KeySize {
		return nil, fmt.Errorf("%w: app key must be %d bytes", ErrInvalidKey, KeySize)
	}
	if len(workspaceKey) != KeySize {
		return nil, fmt.Errorf("%w: workspace key must be %d bytes", ErrInvalidKey, KeySize)
	}

	kdf := hkdf.New(sha256.New, appKey, workspaceKey, []byte(hkdfInfo))
	material := make([]byte, 2*KeySize)
	if _, err := io.ReadFull(kdf, material); err != nil {
		return nil, fmt.Errorf("%w: key derivation: %v", ErrInvalidKey, err)
	}

	block, err := aes.NewCipher(material[:KeySize])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return &Sealed{aead: aead, nonceKey: material[KeySize:]}, nil
}

// Encode returns the sealed token for id.
func (s *Sealed) Encode(id string) string {
	nonce := s.nonce([]byte(id))
	sealed := s.aead.Seal(nonce, nonce, []byte(id), nil)
	return base64.RawURLEncoding.EncodeToString(sealed)
}

// Decode opens the token and returns the original identifier.
func (s *Sealed) Decode(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	size := s.aead.NonceSize()
	if len(raw) < size+s.aead.Overhead() {
		return "", ErrInvalidToken
	}

	nonce, ciphertext := raw[:size], raw[size:]
	id, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrSignatureInvalid
	}

	// A valid ciphertext under a foreign nonce is still a forgery.
	if !hmac.Equal(nonce, s.nonce(id)) {
		return "", ErrSignatureInvalid
	}
	return string(id), nil
}

func (s *Sealed) nonce(id []byte) []byte {
	mac := hmac.New(sha256.New, s.nonceKey)
	mac.Write(id)
	return mac.Sum(nil)[:s.aead.NonceSize()]
}
