package coerce

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Bool normalizes a raw scalar into a native boolean. Recognized string
// forms are "true"/"1"/"yes" and "false"/"0"/"no", case-insensitive and
// trimmed. Native booleans pass through; integers coerce by truthiness.
// Anything else reports ok=false and the caller decides how to surface
// the failure.
func Bool(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "1", "yes":
			return true, true
		case "false", "0", "no":
			return false, true
		}
		return false, false
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i != 0, true
		}
		return false, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, true
	default:
		return false, false
	}
}

// Opaque renders a value that failed coercion as the string kept in the
// sanitized output. Keeping the representation verbatim forces a located
// type error downstream instead of losing the offending value.
func Opaque(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
