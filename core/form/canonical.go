package form

import (
	"fmt"
	"strconv"
)

// Canonical returns the string form used for change detection and key equality.
//
// nil, false and "" all map to "". true maps to "1". Numbers use their
// shortest decimal form, so 0 and "0" are equal while "0" and "0.0" are not.
// No numeric coercion ever happens between strings.
func Canonical(v any) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return vv
	case bool:
		if vv {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(vv)
	case int8:
		return strconv.FormatInt(int64(vv), 10)
	case int16:
		return strconv.FormatInt(int64(vv), 10)
	case int32:
		return strconv.FormatInt(int64(vv), 10)
	case int64:
		return strconv.FormatInt(vv, 10)
	case uint:
		return strconv.FormatUint(uint64(vv), 10)
	case uint8:
		return strconv.FormatUint(uint64(vv), 10)
	case uint16:
		return strconv.FormatUint(uint64(vv), 10)
	case uint32:
		return strconv.FormatUint(uint64(vv), 10)
	case uint64:
		return strconv.FormatUint(vv, 10)
	case float32:
		return strconv.FormatFloat(float64(vv), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(vv, 'f', -1, 64)
	case []byte:
		return string(vv)
	case fmt.Stringer:
		return vv.String()
	default:
		return fmt.Sprint(vv)
	}
}

// truthy interprets a seeded value as a checkbox state. "0" is false.
func truthy(v any) bool {
	s := Canonical(v)
	return s != "" && s != "0"
}
