package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const definition = `
text "email" {
  clean    = ["trim", "lower"]
  validate = "required;email"
}

group "address" {
  text "city" {
    clean = ["text"]
  }
}

submit "save" {
  value = "Save"
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	def := writeFile(t, dir, "form.hcl", definition)
	values := writeFile(t, dir, "values.json", `{"email": "jane@example.com", "address": {"city": "Oslo"}}`)
	sub := writeFile(t, dir, "submission.json", `{
		"email": " JANE@example.com ",
		"address": {"city": "  Bergen  ", "zip": "5003"},
		"save": "Save",
		"admin": "1"
	}`)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-form", def, "-submission", sub, "-values", values}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	var got struct {
		Accepted map[string]any     `json:"accepted"`
		Changed  []string           `json:"changed"`
		Trigger  string             `json:"trigger"`
		Invalid  map[string][]string `json:"invalid"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))

	assert.Equal(t, map[string]any{
		"email":   "jane@example.com",
		"address": map[string]any{"city": "Bergen"},
		"save":    "Save",
	}, got.Accepted)
	assert.Equal(t, []string{"address.city"}, got.Changed)
	assert.Equal(t, "save", got.Trigger)
	assert.Empty(t, got.Invalid)
}

func TestRun_InvalidAndDump(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	def := writeFile(t, dir, "form.hcl", definition)
	sub := writeFile(t, dir, "submission.json", `{"email": "nope"}`)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-form", def, "-submission", sub, "-dump"}, &stdout, &stderr)
	require.NoError(t, err)

	var got struct {
		Invalid map[string][]string `json:"invalid"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Contains(t, got.Invalid, "email")
	assert.Contains(t, stderr.String(), "form.ChangedSet")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	def := writeFile(t, dir, "form.hcl", definition)
	bad := writeFile(t, dir, "bad.json", `{`)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing flags", []string{"-form", def}, "-form and -submission are required"},
		{"bad json", []string{"-form", def, "-submission", bad}, "parse"},
		{"missing definition", []string{"-form", filepath.Join(dir, "nope.hcl"), "-submission", bad}, "invalid form definition"},
		{"decode without obfuscator", []string{"-decode", "abc"}, "FORMCHECK_OBFUSCATOR is none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, &stdout, &stderr)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), err.Error())
		})
	}
}

func TestConfig_Obfuscator(t *testing.T) {
	t.Parallel()

	key := hex.EncodeToString(bytes.Repeat([]byte{1}, 32))
	tests := []struct {
		name    string
		cfg     Config
		wantNil bool
		wantErr bool
	}{
		{"none", Config{Obfuscator: "none"}, true, false},
		{"signed", Config{Obfuscator: "signed", Secret: "s3cret"}, false, false},
		{"signed without secret", Config{Obfuscator: "signed"}, true, true},
		{"sealed", Config{Obfuscator: "sealed", Secret: key, WorkspaceKey: key}, false, false},
		{"sealed bad hex", Config{Obfuscator: "sealed", Secret: "zz", WorkspaceKey: key}, true, true},
		{"sealed short key", Config{Obfuscator: "sealed", Secret: "0102", WorkspaceKey: key}, true, true},
		{"prefix", Config{Obfuscator: "prefix", Prefix: "f_"}, false, false},
		{"bad prefix", Config{Obfuscator: "prefix", Prefix: "1x"}, true, true},
		{"unknown", Config{Obfuscator: "rot13"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			o, err := tt.cfg.obfuscator()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantNil, o == nil)

			if o != nil {
				id, err := o.Decode(o.Encode("email"))
				require.NoError(t, err)
				assert.Equal(t, "email", id)
			}
		})
	}
}
