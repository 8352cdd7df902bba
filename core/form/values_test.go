package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/forms/core/form"
)

func TestCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"", ""},
		{false, ""},
		{true, "1"},
		{0, "0"},
		{"0", "0"},
		{"0.0", "0.0"},
		{int64(-7), "-7"},
		{uint8(3), "3"},
		{1.5, "1.5"},
		{float32(0.25), "0.25"},
		{2.0, "2"},
		{[]byte("raw"), "raw"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, form.Canonical(tt.in), "%#v", tt.in)
	}
}

func TestValues_Lookup(t *testing.T) {
	t.Parallel()

	v := form.Values{
		"a": form.Values{"b": map[string]any{"c": 1}},
		"x": "y",
	}

	got, ok := v.Lookup("a", "b", "c")
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = v.Lookup("x", "y")
	assert.False(t, ok)

	_, ok = v.Lookup("a", "missing")
	assert.False(t, ok)
}

func TestChangedSet(t *testing.T) {
	t.Parallel()

	name := form.NewText("name")
	city := form.NewText("city")
	tags := form.NewCheckboxSet("tags", nil)
	cs := form.ChangedSet{
		"name":    name,
		"address": form.ChangedSet{"city": city},
		"tags":    form.ChangedSet{"1": tags, "3": tags},
	}

	assert.Equal(t, 4, cs.Len())
	assert.Equal(t, []string{"address.city", "name", "tags.1", "tags.3"}, cs.Paths())
	assert.True(t, cs.Has("address"))
	assert.True(t, cs.Has("address", "city"))
	assert.False(t, cs.Has("address", "zip"))
	assert.False(t, cs.Has())

	got, ok := cs.Control("address", "city")
	assert.True(t, ok)
	assert.Same(t, city, got)

	_, ok = cs.Control("address")
	assert.False(t, ok)
}
