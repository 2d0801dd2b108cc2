package coerce

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/Hybridhash/Sheildantic/pkg/schema"
)

// ItemError records one list element that failed numeric coercion.
type ItemError struct {
	Index int
	Value any
}

// Items checks the elements of a list field against the declared element
// kind and normalizes convertible values into native numerics. The scan
// never stops early: every offending index is collected. The returned
// slice is only fully normalized when no failures were recorded.
//
// Non-numeric element kinds are not checked here; the schema construction
// step owns those.
func Items(values []any, elem schema.Kind) ([]any, []ItemError) {
	if !elem.IsNumeric() {
		return values, nil
	}

	out := make([]any, len(values))
	var failures []ItemError
	for i, v := range values {
		n, ok := item(v, elem)
		if !ok {
			failures = append(failures, ItemError{Index: i, Value: v})
			out[i] = v
			continue
		}
		out[i] = n
	}
	return out, failures
}

func item(v any, elem schema.Kind) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case bool:
		return nil, false
	case string:
		return parseNumeric(strings.TrimSpace(x), elem)
	case json.Number:
		return parseNumeric(strings.TrimSpace(string(x)), elem)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch elem {
		case schema.KindInt, schema.KindFloat:
			return v, true
		case schema.KindUint:
			if rv.Int() >= 0 {
				return v, true
			}
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch elem {
		case schema.KindUint, schema.KindFloat:
			return v, true
		case schema.KindInt:
			if rv.Uint() <= math.MaxInt64 {
				return v, true
			}
		}
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		switch elem {
		case schema.KindFloat:
			return v, true
		case schema.KindInt:
			if integral(f) {
				return int64(f), true
			}
		case schema.KindUint:
			if integral(f) && f >= 0 {
				return uint64(f), true
			}
		}
	}
	return nil, false
}

func parseNumeric(s string, elem schema.Kind) (any, bool) {
	switch elem {
	case schema.KindInt:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, false
		}
		return i, true
	case schema.KindUint:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, false
		}
		return u, true
	case schema.KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	default:
		return nil, false
	}
}

func integral(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Trunc(f) == f
}
