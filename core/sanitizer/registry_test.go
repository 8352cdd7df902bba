package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forms/core/sanitizer"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  string
		in   any
		want any
	}{
		{"trim lower", "trim,lower", "  USER@Example.COM ", "user@example.com"},
		{"text", "text", "  12   Main   St  ", "12 Main St"},
		{"max length", "trim, max:3", "  abcdef", "abc"},
		{"unicode max", "max:2", "ñandú", "ña"},
		{"nullify", "trim,nullify", "   ", nil},
		{"empty tag", "", "  as is ", "  as is "},
		{"email", "email", " John <JOHN@Example.com> ", "john@example.com"},
		{"phone", "phone", "+1 (555) 010-9999", "+15550109999"},
		{"url", "url", "Example.COM/path", "https://example.com/path"},
		{"slug", "slug", " Hello, World! ", "hello-world"},
		{"title", "title", "jane doe", "Jane Doe"},
		{"nfc", "nfc", "e\u0301", "\u00e9"},
		{"strip html", "strip_html", "<b>bold</b> &amp; more", "bold & more"},
		{"filename", "filename", "../../etc/passwd", "passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := sanitizer.Parse(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Clean(tt.in))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := sanitizer.Parse("trim,nope")
	require.ErrorIs(t, err, sanitizer.ErrUnknownSanitizer)

	for _, tag := range []string{"max:", "max:0", "max:x"} {
		_, err := sanitizer.Parse(tag)
		assert.ErrorIs(t, err, sanitizer.ErrInvalidParam, tag)
	}

	assert.Panics(t, func() { sanitizer.MustParse("nope") })
}

func TestRegister(t *testing.T) {
	t.Parallel()

	sanitizer.Register("test_reverse", sanitizer.String(func(s string) string {
		var b strings.Builder
		for i := len(s) - 1; i >= 0; i-- {
			b.WriteByte(s[i])
		}
		return b.String()
	}))

	c, err := sanitizer.Parse("trim,test_reverse")
	require.NoError(t, err)
	assert.Equal(t, "cba", c.Clean(" abc "))

	_, ok := sanitizer.Lookup("test_reverse")
	assert.True(t, ok)
}
