package obfuscate_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forms/pkg/obfuscate"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, obfuscate.KeySize)
}

func TestObfuscators_RoundTrip(t *testing.T) {
	t.Parallel()

	signed, err := obfuscate.NewSigned("secret")
	require.NoError(t, err)
	sealed, err := obfuscate.NewSealed(testKey(1), testKey(2))
	require.NoError(t, err)
	prefix, err := obfuscate.NewPrefix("f_")
	require.NoError(t, err)

	tests := []struct {
		name string
		obf  obfuscate.Obfuscator
	}{
		{"nop", obfuscate.Nop{}},
		{"signed", signed},
		{"sealed", sealed},
		{"prefix", prefix},
	}

	ids := []string{"42", "0", "0.0", "email", "", "ünïcödé"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, id := range ids {
				token := tt.obf.Encode(id)
				assert.Equal(t, token, tt.obf.Encode(id), "encode must be deterministic")

				got, err := tt.obf.Decode(token)
				require.NoError(t, err)
				assert.Equal(t, id, got)
			}
		})
	}
}

func TestSigned(t *testing.T) {
	t.Parallel()

	t.Run("empty secret", func(t *testing.T) {
		t.Parallel()
		_, err := obfuscate.NewSigned("")
		require.ErrorIs(t, err, obfuscate.ErrInvalidKey)
	})

	t.Run("tampered payload", func(t *testing.T) {
		t.Parallel()
		obf, err := obfuscate.NewSigned("secret")
		require.NoError(t, err)

		other := obf.Encode("43")
		token := obf.Encode("42")
		payload, _, _ := strings.Cut(other, ".")
		_, sig, _ := strings.Cut(token, ".")

		_, err = obf.Decode(payload + "." + sig)
		require.ErrorIs(t, err, obfuscate.ErrSignatureInvalid)
	})

	t.Run("different secret", func(t *testing.T) {
		t.Parallel()
		a, _ := obfuscate.NewSigned("a")
		b, _ := obfuscate.NewSigned("b")

		_, err := b.Decode(a.Encode("42"))
		require.ErrorIs(t, err, obfuscate.ErrSignatureInvalid)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		obf, _ := obfuscate.NewSigned("secret")
		for _, token := range []string{"", "abc", ".", "abc.", "!!!.abc", "abc.!!!"} {
			_, err := obf.Decode(token)
			assert.ErrorIs(t, err, obfuscate.ErrInvalidToken, token)
		}
	})
}

func TestSealed(t *testing.T) {
	t.Parallel()

	t.Run("key length", func(t *testing.T) {
		t.Parallel()
		_, err := obfuscate.NewSealed([]byte("short"), testKey(2))
		require.ErrorIs(t, err, obfuscate.ErrInvalidKey)
		_, err = obfuscate.NewSealed(testKey(1), nil)
		require.ErrorIs(t, err, obfuscate.ErrInvalidKey)
	})

	t.Run("hides identifier", func(t *testing.T) {
		t.Parallel()
		obf, err := obfuscate.NewSealed(testKey(1), testKey(2))
		require.NoError(t, err)
		assert.NotContains(t, obf.Encode("customer_id"), "customer")
		assert.NotEqual(t, obf.Encode("1"), obf.Encode("2"))
	})

	t.Run("workspace isolation", func(t *testing.T) {
		t.Parallel()
		a, _ := obfuscate.NewSealed(testKey(1), testKey(2))
		b, _ := obfuscate.NewSealed(testKey(1), testKey(3))

		assert.NotEqual(t, a.Encode("42"), b.Encode("42"))
		_, err := b.Decode(a.Encode("42"))
		require.ErrorIs(t, err, obfuscate.ErrSignatureInvalid)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		obf, _ := obfuscate.NewSealed(testKey(1), testKey(2))
		_, err := obf.Decode("!!!")
		require.ErrorIs(t, err, obfuscate.ErrInvalidToken)
		_, err = obf.Decode("abc")
		require.ErrorIs(t, err, obfuscate.ErrInvalidToken)
	})
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"", "1abc", "a b", "a[", "-x"} {
		_, err := obfuscate.NewPrefix(bad)
		assert.ErrorIs(t, err, obfuscate.ErrInvalidPrefix, bad)
	}

	obf, err := obfuscate.NewPrefix("fld_")
	require.NoError(t, err)
	assert.Equal(t, "fld_name", obf.Encode("name"))

	_, err = obf.Decode("name")
	require.ErrorIs(t, err, obfuscate.ErrInvalidToken)
}
