package obfuscate

// Obfuscator maps identifiers to opaque tokens and back.
// Encode must be deterministic and free of side effects.
type Obfuscator interface {
	Encode(id string) string
	Decode(token string) (string, error)
}

// Nop returns identifiers unchanged.
type Nop struct{}

// Encode returns id as is.
func (Nop) Encode(id string) string { return id }

// Decode returns token as is.
func (Nop) Decode(token string) (string, error) { return token, nil }
