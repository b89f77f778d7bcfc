package points

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Float coerces an arbitrary decoded JSON value to a float64.
//
// Numbers, numeric strings, json.Number, and booleans (1/0) coerce
// successfully. nil, objects, arrays, and non-numeric strings do not.
// Coercion never panics; the second return value reports success.
func Float(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
