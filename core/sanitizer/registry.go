package sanitizer

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Cleaner{
		// String sanitizers
		"trim":        String(Trim),
		"lower":       String(ToLower),
		"upper":       String(ToUpper),
		"title":       String(ToTitle),
		"kebab":       String(ToKebabCase),
		"single_line": String(SingleLine),
		"no_spaces":   String(RemoveExtraWhitespace),
		"strip_html":  String(StripHTML),
		"escape_html": String(EscapeHTML),
		"alphanum":    String(KeepAlphanumeric),
		"digits":      String(KeepDigits),
		"no_null":     String(RemoveNullBytes),
		"no_control":  String(RemoveControlChars),
		"nfc":         String(NormalizeUnicode),

		// Format sanitizers
		"email":    String(NormalizeEmail),
		"phone":    String(NormalizePhone),
		"url":      String(NormalizeURL),
		"filename": String(SanitizeFilename),
		"number":   Number,

		// Value sanitizers
		"nullify": Nullify,

		// Composite sanitizers for common use cases
		"text": Chain(String(Trim), String(RemoveExtraWhitespace)),
		"slug": String(func(s string) string {
			return ToKebabCase(Trim(s))
		}),
		"username": String(func(s string) string {
			return KeepAlphanumeric(ToLower(Trim(s)))
		}),
		"safe_text": String(func(s string) string {
			return EscapeHTML(RemoveExtraWhitespace(Trim(s)))
		}),
	}
)

// Register adds or replaces a named cleaner in the registry.
func Register(name string, c Cleaner) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = c
}

// Lookup returns the cleaner registered under name.
func Lookup(name string) (Cleaner, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[name]
	return c, ok
}

// Parse builds a cleaner chain from a comma separated tag such as "trim,lower,max:64".
// Unknown names are configuration errors.
func Parse(tag string) (Cleaner, error) {
	names := strings.Split(tag, ",")
	chain := make([]Cleaner, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		c, err := resolve(name)
		if err != nil {
			return nil, err
		}
		chain = append(chain, c)
	}

	return Chain(chain...), nil
}

// MustParse is like Parse but panics on error.
func MustParse(tag string) Cleaner {
	c, err := Parse(tag)
	if err != nil {
		panic(err)
	}
	return c
}

func resolve(name string) (Cleaner, error) {
	// Handle max length special case: max:100
	if param, ok := strings.CutPrefix(name, "max:"); ok {
		maxLen, err := strconv.Atoi(param)
		if err != nil || maxLen <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParam, name)
		}
		return String(func(s string) string { return MaxLength(s, maxLen) }), nil
	}

	c, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSanitizer, name)
	}
	return c, nil
}
