package model

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// StringForm renders a value the way inputs display it. Strings pass through,
// fmt.Stringer is honoured and nil becomes the empty string.
func StringForm(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// SameID compares two identifiers with numeric coercion, so the string "3"
// coming back from a form submission matches the integer 3 stored on a record.
// Non-numeric identifiers fall back to comparing their string forms.
func SameID(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	left, lok := ToInt64(a)
	right, rok := ToInt64(b)
	if lok && rok {
		return left == right
	}
	return StringForm(a) == StringForm(b)
}

// ToInt64 coerces integers, integral floats and numeric strings.
func ToInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float32:
		return integralFloat(float64(v))
	case float64:
		return integralFloat(v)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func integralFloat(v float64) (int64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, false
	}
	return int64(v), true
}

// Sequence reports whether value is a list of values and returns its items.
// Byte slices and strings are scalars.
func Sequence(value any) ([]any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case []any:
		return append([]any(nil), v...), true
	case []string:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out, true
	case []int:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out, true
	case []int64:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out, true
	case []byte:
		return nil, false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
