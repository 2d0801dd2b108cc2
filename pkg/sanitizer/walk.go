package sanitizer

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sanitize recursively cleans value through the policy for the given
// mode. It handles a closed set of shapes: strings, non-string scalars
// (passed through untouched), sequences, string-keyed mappings, structs
// (decomposed into mappings) and pointers. Nil is inert. Values outside
// the set fail with ErrUnsupportedValue rather than being guessed at.
//
// The context is checked once per visited value, so cancellation cuts
// pathologically large inputs short.
func (s *Sanitizer) Sanitize(ctx context.Context, value any, mode Mode) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch x := value.(type) {
	case nil:
		return nil, nil
	case string:
		return s.SanitizeString(x, mode)
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		json.Number, time.Time, time.Duration, uuid.UUID:
		return value, nil
	case []byte:
		return value, nil
	case []string:
		out := make([]string, len(x))
		for i, item := range x {
			cleaned, err := s.SanitizeString(item, mode)
			if err != nil {
				return nil, err
			}
			out[i] = cleaned
		}
		return out, nil
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			cleaned, err := s.Sanitize(ctx, item, mode)
			if err != nil {
				return nil, err
			}
			out[i] = cleaned
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for key, item := range x {
			cleaned, err := s.Sanitize(ctx, item, mode)
			if err != nil {
				return nil, err
			}
			out[key] = cleaned
		}
		return out, nil
	}

	return s.sanitizeReflect(ctx, reflect.ValueOf(value), mode)
}

// sanitizeReflect covers named and uncommon types that fall outside the
// fast paths above.
func (s *Sanitizer) sanitizeReflect(ctx context.Context, rv reflect.Value, mode Mode) (any, error) {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		return s.Sanitize(ctx, rv.Elem().Interface(), mode)
	case reflect.String:
		// Named string types are cleaned by their underlying
		// representation and come back as plain strings.
		return s.SanitizeString(rv.String(), mode)
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.Interface(), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Interface(), nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			cleaned, err := s.Sanitize(ctx, rv.Index(i).Interface(), mode)
			if err != nil {
				return nil, err
			}
			out[i] = cleaned
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map keyed by %s", ErrUnsupportedValue, rv.Type().Key().Kind())
		}
		if rv.IsNil() {
			return nil, nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			cleaned, err := s.Sanitize(ctx, iter.Value().Interface(), mode)
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = cleaned
		}
		return out, nil
	case reflect.Struct:
		return s.sanitizeStruct(ctx, rv, mode)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, rv.Kind())
	}
}

// sanitizeStruct decomposes an already-typed record field by field and
// reassembles it as a mapping keyed by json names.
func (s *Sanitizer) sanitizeStruct(ctx context.Context, rv reflect.Value, mode Mode) (any, error) {
	t := rv.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := structFieldKey(sf)
		if key == "" {
			continue
		}
		cleaned, err := s.Sanitize(ctx, rv.Field(i).Interface(), mode)
		if err != nil {
			return nil, err
		}
		out[key] = cleaned
	}
	return out, nil
}

func structFieldKey(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return strings.ToLower(sf.Name)
}
