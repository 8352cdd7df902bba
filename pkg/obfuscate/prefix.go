package obfuscate

import (
	"fmt"
	"regexp"
	"strings"
)

var prefixPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Prefix namespaces identifiers with a fixed prefix.
type Prefix struct {
	prefix string
}

// NewPrefix creates a Prefix obfuscator.
// The prefix must start with a letter and contain only letters, digits, '_' and '-'.
func NewPrefix(prefix string) (*Prefix, error) {
	if !prefixPattern.MatchString(prefix) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
	return &Prefix{prefix: prefix}, nil
}

// Encode returns id with the prefix prepended.
func (p *Prefix) Encode(id string) string {
	return p.prefix + id
}

// Decode strips the prefix. Tokens without it are rejected.
func (p *Prefix) Decode(token string) (string, error) {
	id, ok := strings.CutPrefix(token, p.prefix)
	if !ok {
		return "", fmt.Errorf("%w: missing prefix %q", ErrInvalidToken, p.prefix)
	}
	return id, nil
}
