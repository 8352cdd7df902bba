package form

import (
	"slices"
	"strings"
)

// Values is a nested name/value map. It is used for submissions, for the
// whitelist produced by Reconcile and for seeding and exporting values.
// Nested scopes may be Values or plain map[string]any.
type Values map[string]any

// Lookup follows path through nested maps.
func (v Values) Lookup(path ...string) (any, bool) {
	var cur any = v
	for _, key := range path {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// ChangedSet maps control names to the controls whose value changed.
// Entries are either a Control or a nested ChangedSet for named groups and
// for the per-option entries of a checkbox set.
type ChangedSet map[string]any

// Has reports whether path leads to an entry.
func (c ChangedSet) Has(path ...string) bool {
	_, ok := c.lookup(path)
	return ok
}

// Control returns the control recorded at path.
func (c ChangedSet) Control(path ...string) (Control, bool) {
	v, ok := c.lookup(path)
	if !ok {
		return nil, false
	}
	ctrl, ok := v.(Control)
	return ctrl, ok
}

// Len returns the number of control entries at any depth.
func (c ChangedSet) Len() int {
	n := 0
	for _, v := range c {
		if sub, ok := v.(ChangedSet); ok {
			n += sub.Len()
			continue
		}
		n++
	}
	return n
}

// Paths returns the dotted paths of every control entry, sorted.
func (c ChangedSet) Paths() []string {
	var paths []string
	c.walk("", func(path string, _ Control) {
		paths = append(paths, path)
	})
	slices.Sort(paths)
	return paths
}

func (c ChangedSet) walk(prefix string, fn func(string, Control)) {
	for name, v := range c {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		switch vv := v.(type) {
		case ChangedSet:
			vv.walk(path, fn)
		case Control:
			fn(path, vv)
		}
	}
}

func (c ChangedSet) lookup(path []string) (any, bool) {
	var cur any = c
	for _, key := range path {
		set, ok := cur.(ChangedSet)
		if !ok {
			return nil, false
		}
		cur, ok = set[key]
		if !ok {
			return nil, false
		}
	}
	return cur, len(path) > 0
}

// asMap accepts both Values and map[string]any.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Values:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

// scope returns v as Values, or an empty map when v has the wrong shape.
func scope(v any) Values {
	if m, ok := asMap(v); ok {
		return Values(m)
	}
	return Values{}
}

// scalar returns the submitted scalar at key. Nested maps and lists are
// wrong-shaped for a scalar control and are reported as absent.
func scalar(s Values, key string) (any, bool) {
	v, ok := s[key]
	if !ok {
		return nil, false
	}
	switch v.(type) {
	case map[string]any, Values, []any, []string:
		return nil, false
	}
	return v, true
}

// composePath appends key to a bracket-nested submit path.
func composePath(parent, key string) string {
	switch {
	case key == "":
		return parent
	case parent == "":
		return key
	default:
		var b strings.Builder
		b.Grow(len(parent) + len(key) + 2)
		b.WriteString(parent)
		b.WriteByte('[')
		b.WriteString(key)
		b.WriteByte(']')
		return b.String()
	}
}

func merge[M ~map[string]any](dst, src M) M {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(M, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
