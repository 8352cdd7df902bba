package sanitizer

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Cleaner normalizes a value before it is compared and stored.
// Implementations must accept nil and may return nil when nothing
// meaningful remains.
type Cleaner interface {
	Clean(v any) any
}

// Func adapts an ordinary function to the Cleaner interface.
type Func func(v any) any

// Clean calls f(v).
func (f Func) Clean(v any) any { return f(v) }

// String lifts a string sanitizer into a Cleaner.
// nil passes through untouched; booleans and numbers are cleaned in their
// string form. Maps and slices are a programmer error and cause a panic.
func String(fn func(string) string) Cleaner {
	return Func(func(v any) any {
		if v == nil {
			return nil
		}
		s, ok := scalarString(v)
		if !ok {
			panic(fmt.Errorf("%w: %T", ErrUnsupportedValue, v))
		}
		return fn(s)
	})
}

// Chain applies cleaners in registration order, feeding each result to the next.
func Chain(cleaners ...Cleaner) Cleaner {
	return Func(func(v any) any {
		for _, c := range cleaners {
			if c == nil {
				continue
			}
			v = c.Clean(v)
		}
		return v
	})
}

// Nullify maps the empty string to nil.
var Nullify Cleaner = Func(func(v any) any {
	if s, ok := v.(string); ok && s == "" {
		return nil
	}
	return v
})

// Number keeps a value only when it is a valid decimal number.
// Commas are accepted as decimal separators; anything else becomes nil.
var Number Cleaner = Func(func(v any) any {
	if v == nil {
		return nil
	}
	s, ok := scalarString(v)
	if !ok {
		return nil
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return nil
	}
	return s
})

// MapFunc builds a Cleaner for a whole nested scope. Any map with string
// keys is accepted; other input is replaced by an empty map before fn is called.
func MapFunc(fn func(map[string]any) map[string]any) Cleaner {
	return Func(func(v any) any {
		m, ok := asMap(v)
		if !ok {
			m = map[string]any{}
		}
		return fn(m)
	})
}

// Each applies c to every scalar of a nested map, recursing into sub-maps.
// Lists and other non-scalar values are kept as they are. The input map is
// not modified.
func Each(c Cleaner) Cleaner {
	var walk func(map[string]any) map[string]any
	walk = func(m map[string]any) map[string]any {
		out := make(map[string]any, len(m))
		for k, v := range m {
			if sub, ok := asMap(v); ok {
				out[k] = walk(sub)
				continue
			}
			if _, ok := scalarString(v); ok || v == nil {
				out[k] = c.Clean(v)
				continue
			}
			out[k] = v
		}
		return out
	}
	return MapFunc(walk)
}

// asMap copies any string-keyed map, including named map types, into a map[string]any.
func asMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		m[it.Key().String()] = it.Value().Interface()
	}
	return m, true
}

func scalarString(v any) (string, bool) {
	switch vv := v.(type) {
	case string:
		return vv, true
	case []byte:
		return string(vv), true
	case bool:
		if vv {
			return "1", true
		}
		return "", true
	case int:
		return strconv.Itoa(vv), true
	case int64:
		return strconv.FormatInt(vv, 10), true
	case int32:
		return strconv.FormatInt(int64(vv), 10), true
	case uint:
		return strconv.FormatUint(uint64(vv), 10), true
	case uint64:
		return strconv.FormatUint(vv, 10), true
	case float64:
		return strconv.FormatFloat(vv, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(vv), 'f', -1, 32), true
	case fmt.Stringer:
		return vv.String(), true
	default:
		return "", false
	}
}
