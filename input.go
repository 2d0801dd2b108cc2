package sheildantic

import (
	"net/url"
	"reflect"
)

// Input is the key to value(s) mapping a Validator consumes. Two views
// are needed because form-style transports may carry several values under
// one key, while JSON-style mappings hold native sequences.
type Input interface {
	// Get returns the single value submitted for a key. Multi-valued
	// mappings return their first value.
	Get(name string) (any, bool)

	// All returns every value submitted for a key, in submission order.
	// List-shaped fields consume this view.
	All(name string) ([]any, bool)
}

// Form adapts url.Values. Repeated keys keep their submission order, which
// makes it the natural carrier for query strings, form-encoded bodies, and
// multipart text fields.
type Form url.Values

// Get returns the first value submitted under name.
func (f Form) Get(name string) (any, bool) {
	vs, ok := f[name]
	if !ok || len(vs) == 0 {
		return nil, false
	}
	return vs[0], true
}

// All returns every value submitted under name.
func (f Form) All(name string) ([]any, bool) {
	vs, ok := f[name]
	if !ok {
		return nil, false
	}
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out, true
}

// Map adapts a single-valued mapping, typically a decoded JSON object.
type Map map[string]any

// Get returns the value stored under name.
func (m Map) Get(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// All expands the value stored under name into a sequence. Native slices
// and arrays yield their elements, an explicit null yields an empty
// sequence, and any other value is wrapped as a single element. Byte
// slices stay whole since they represent one binary value.
func (m Map) All(name string) ([]any, bool) {
	v, ok := m[name]
	if !ok {
		return nil, false
	}
	switch x := v.(type) {
	case nil:
		return []any{}, true
	case []any:
		return append([]any(nil), x...), true
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out, true
	case []byte:
		return []any{x}, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return []any{v}, true
}
