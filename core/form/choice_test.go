package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forms/core/form"
	"github.com/dmitrymomot/forms/pkg/obfuscate"
)

func numberedOptions(n int) []*form.Option {
	opts := make([]*form.Option, 0, n)
	for i := 1; i <= n; i++ {
		opts = append(opts, form.NewOption(i, ""))
	}
	return opts
}

func TestCheckboxSet_FullCoverage(t *testing.T) {
	t.Parallel()

	opts := numberedOptions(5)
	set := form.NewCheckboxSet("tags", opts)
	f := form.New().Add(set)

	res, err := f.Reconcile(form.Values{
		"tags": map[string]any{"2": "on", "4": "on"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{
		"1": false, "2": true, "3": false, "4": true, "5": false,
	}, res.Values["tags"])
	assert.Equal(t, []string{"tags.2", "tags.4"}, res.Changed.Paths())
	assert.Equal(t, []any{2, 4}, set.Checked())
	assert.True(t, opts[1].Checked)
	assert.False(t, opts[0].Checked)
}

func TestCheckboxSet_PerOptionChanges(t *testing.T) {
	t.Parallel()

	opts := []*form.Option{form.NewOption("a", "A"), form.NewOption("b", "B"), form.NewOption("c", "C")}
	set := form.NewCheckboxSet("letters", opts, form.WithValue([]any{"a", "b"}))
	f := form.New().Add(set)

	res, err := f.Reconcile(form.Values{
		"letters": map[string]any{"b": "1", "c": "1", "zzz": "1"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{"a": false, "b": true, "c": true}, res.Values["letters"])
	assert.Equal(t, []string{"letters.a", "letters.c"}, res.Changed.Paths())

	res, err = f.Reconcile(form.Values{"letters": "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"a": false, "b": false, "c": false}, res.Values["letters"])
	assert.Equal(t, 2, res.Changed.Len())
}

func TestCheckboxSet_SetValues(t *testing.T) {
	t.Parallel()

	set := form.NewCheckboxSet("tags", numberedOptions(3))
	f := form.New().Add(set)

	require.NoError(t, f.SetValues(form.Values{"tags": map[string]any{"1": true, "3": "1"}}))
	assert.Equal(t, map[string]bool{"1": true, "2": false, "3": true}, set.State())

	require.NoError(t, f.SetValues(form.Values{}))
	assert.Empty(t, set.Checked())
	assert.Equal(t, map[string]bool{"1": false, "2": false, "3": false}, set.State())
}

func TestCheckboxSet_Immutable(t *testing.T) {
	t.Parallel()

	set := form.NewCheckboxSet("roles", []*form.Option{form.NewOption("admin", ""), form.NewOption("user", "")},
		form.WithValue([]any{"user"}), form.WithImmutable(true))
	f := form.New().Add(set)

	res, err := f.Reconcile(form.Values{"roles": map[string]any{"admin": "1", "user": "1"}}, nil)
	require.NoError(t, err)
	assert.NotContains(t, res.Values, "roles")
	assert.Equal(t, []any{"user"}, set.Checked())

	res, err = f.Reconcile(form.Values{"roles": map[string]any{"user": "1"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"admin": false, "user": true}, res.Values["roles"])
	assert.Zero(t, res.Changed.Len())
}

func TestRadioSet_Reconcile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial any
		submit  form.Values
		want    any
		changed bool
	}{
		{"match", nil, form.Values{"size": "m"}, "m", true},
		{"same", "m", form.Values{"size": "m"}, "m", false},
		{"no match resets", "m", form.Values{"size": "xxl"}, nil, true},
		{"absent resets", "m", form.Values{}, nil, true},
		{"nothing before nothing after", nil, form.Values{}, nil, false},
		{"wrong shape", "s", form.Values{"size": []any{"m"}}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := []*form.Option{form.NewOption("s", "S"), form.NewOption("m", "M"), form.NewOption("l", "L")}
			radio := form.NewRadioSet("size", opts, form.WithValue(tt.initial))
			f := form.New().Add(radio)

			res, err := f.Reconcile(tt.submit, nil)
			require.NoError(t, err)

			v, ok := res.Values["size"]
			assert.True(t, ok, "radio set is always whitelisted")
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.want, radio.Value())
			assert.Equal(t, tt.changed, res.Changed.Has("size"))
		})
	}
}

func TestSelect_KeyEquality(t *testing.T) {
	t.Parallel()

	t.Run("numeric key matches its string form", func(t *testing.T) {
		t.Parallel()

		sel := form.NewSelect("n", []*form.Option{form.NewOption(0, "zero"), form.NewOption(1, "one")})
		f := form.New().Add(sel)

		res, err := f.Reconcile(form.Values{"n": "0"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Values["n"])
		assert.True(t, res.Changed.Has("n"))
		assert.Equal(t, "zero", sel.Selected().Label)
	})

	t.Run("no numeric coercion", func(t *testing.T) {
		t.Parallel()

		sel := form.NewSelect("n", []*form.Option{form.NewOption("0", "zero")}, form.WithValue("0"))
		f := form.New().Add(sel)

		res, err := f.Reconcile(form.Values{"n": "0.0"}, nil)
		require.NoError(t, err)
		assert.Nil(t, res.Values["n"])
		assert.True(t, res.Changed.Has("n"))
		assert.Nil(t, sel.Selected())
	})

	t.Run("first match wins", func(t *testing.T) {
		t.Parallel()

		first := form.NewOption(1, "int")
		second := form.NewOption("1", "string")
		sel := form.NewSelect("n", []*form.Option{first, second})
		f := form.New().Add(sel)

		_, err := f.Reconcile(form.Values{"n": "1"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, sel.Value())
		assert.True(t, first.Checked)
		assert.False(t, second.Checked)
	})

	t.Run("prompt never matches", func(t *testing.T) {
		t.Parallel()

		sel := form.NewSelect("n", []*form.Option{form.NewOption("a", "A")}, form.WithValue("a")).WithPrompt("Choose one")
		f := form.New().Add(sel)

		res, err := f.Reconcile(form.Values{"n": ""}, nil)
		require.NoError(t, err)
		assert.Nil(t, res.Values["n"])
		assert.Equal(t, "Choose one", sel.Prompt())
	})
}

func TestChoice_ObfuscatedCodes(t *testing.T) {
	t.Parallel()

	o, err := obfuscate.NewSigned("k")
	require.NoError(t, err)
	radio := form.NewRadioSet("plan", []*form.Option{form.NewOption("free", ""), form.NewOption("pro", "")}, form.WithObfuscator(o))
	set := form.NewCheckboxSet("extras", []*form.Option{form.NewOption("a", ""), form.NewOption("b", "")}, form.WithObfuscator(o))
	f := form.New().Add(radio, set)
	require.NoError(t, f.Prepare())


	code, ok := radio.Code("pro")
	require.True(t, ok)
	assert.Equal(t, o.Encode("pro"), code)

	res, err := f.Reconcile(form.Values{
		o.Encode("plan"):   o.Encode("pro"),
		o.Encode("extras"): map[string]any{o.Encode("b"): "1", "a": "1"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "pro", res.Values["plan"])
	assert.Equal(t, map[string]bool{"a": false, "b": true}, res.Values["extras"])

	res, err = f.Reconcile(form.Values{o.Encode("plan"): "pro"}, nil)
	require.NoError(t, err)
	assert.Nil(t, res.Values["plan"])
}
