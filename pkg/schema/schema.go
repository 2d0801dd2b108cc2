package schema

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxDepth bounds how far nested struct classification recurses.
// Self-referential types run past the limit and fail with ErrTooDeep.
const DefaultMaxDepth = 32

// Shape describes how a declared field consumes input.
type Shape uint8

const (
	// ShapeScalar is a single value of the field's Kind.
	ShapeScalar Shape = iota
	// ShapeBoolean is a single value subject to boolean coercion.
	ShapeBoolean
	// ShapeList is an ordered sequence of elements of the Elem kind.
	ShapeList
	// ShapeNested is an embedded object with its own Schema.
	ShapeNested
	// ShapeEnum is a string restricted to a declared set of variants.
	ShapeEnum
)

var shapeNames = map[Shape]string{
	ShapeScalar:  "scalar",
	ShapeBoolean: "boolean",
	ShapeList:    "list",
	ShapeNested:  "nested",
	ShapeEnum:    "enum",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Field describes a single declared field of the target type.
type Field struct {
	// Name is the display name used in input mappings and error reports:
	// the `json` tag when present, the lowercased Go name otherwise.
	Name string
	// GoName is the declared struct field name.
	GoName string

	Shape Shape
	// Kind is the scalar kind for ShapeScalar fields, KindBool for
	// ShapeBoolean and KindString for ShapeEnum.
	Kind Kind
	// Elem is the element kind for ShapeList fields.
	Elem Kind
	// Nested holds the classified schema for ShapeNested fields, and
	// ElemSchema the element schema for lists of objects.
	Nested     *Schema
	ElemSchema *Schema
	// Variants holds the allowed values of a ShapeEnum field, taken from
	// the `oneof` validation rule.
	Variants []string

	// Required reports whether the `validate` tag contains "required".
	Required bool
	// Default is the raw text of a `default` tag; HasDefault distinguishes
	// an empty default from no default at all.
	Default    string
	HasDefault bool
}

// Schema is the classified, immutable view of a struct type. It is safe
// for concurrent use.
type Schema struct {
	typ      reflect.Type
	fields   []Field
	byName   map[string]int
	byGoName map[string]int
}

// Type returns the struct type the schema was built from.
func (s *Schema) Type() reflect.Type { return s.typ }

// Fields returns the declared fields in declaration order. The returned
// slice is shared and must not be modified.
func (s *Schema) Fields() []Field { return s.fields }

// Field looks a field up by its display name.
func (s *Schema) Field(name string) (*Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return &s.fields[i], true
}

// FieldByGoName looks a field up by its declared Go name. Construction
// errors report Go names, so error mapping needs both directions.
func (s *Schema) FieldByGoName(name string) (*Field, bool) {
	i, ok := s.byGoName[name]
	if !ok {
		return nil, false
	}
	return &s.fields[i], true
}

// Option configures classification.
type Option func(*options)

type options struct {
	maxDepth int
}

// WithMaxDepth overrides DefaultMaxDepth for nested classification.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	uuidType     = reflect.TypeOf(uuid.UUID{})
)

// Of classifies the given struct type. Pointer types are dereferenced.
// It fails with ErrNotStruct, ErrUnsupportedShape or ErrTooDeep when the
// type cannot be expressed in the supported shape set.
func Of(t reflect.Type, opts ...Option) (*Schema, error) {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return classifyStruct(t, o.maxDepth)
}

func classifyStruct(t reflect.Type, depth int) (*Schema, error) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrNotStruct, t)
	}
	if depth <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrTooDeep, t)
	}

	s := &Schema{
		typ:      t,
		byName:   make(map[string]int, t.NumField()),
		byGoName: make(map[string]int, t.NumField()),
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, skip := displayName(sf)
		if skip {
			continue
		}

		f := Field{
			Name:     name,
			GoName:   sf.Name,
			Required: hasRule(sf.Tag.Get("validate"), "required"),
		}
		f.Default, f.HasDefault = sf.Tag.Lookup("default")

		if err := classifyField(&f, sf.Type, sf.Tag.Get("validate"), depth); err != nil {
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}

		s.byName[f.Name] = len(s.fields)
		s.byGoName[f.GoName] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

func classifyField(f *Field, t reflect.Type, validateTag string, depth int) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t {
	case timeType:
		f.Shape, f.Kind = ShapeScalar, KindTime
		return nil
	case durationType:
		f.Shape, f.Kind = ShapeScalar, KindDuration
		return nil
	case uuidType:
		f.Shape, f.Kind = ShapeScalar, KindUUID
		return nil
	}

	switch t.Kind() {
	case reflect.Bool:
		f.Shape, f.Kind = ShapeBoolean, KindBool
	case reflect.String:
		if variants := oneofVariants(validateTag); len(variants) > 0 {
			f.Shape, f.Kind, f.Variants = ShapeEnum, KindString, variants
		} else {
			f.Shape, f.Kind = ShapeScalar, KindString
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f.Shape, f.Kind = ShapeScalar, KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f.Shape, f.Kind = ShapeScalar, KindUint
	case reflect.Float32, reflect.Float64:
		f.Shape, f.Kind = ShapeScalar, KindFloat
	case reflect.Struct:
		nested, err := classifyStruct(t, depth-1)
		if err != nil {
			return err
		}
		f.Shape, f.Kind, f.Nested = ShapeNested, KindObject, nested
	case reflect.Slice, reflect.Array:
		if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 {
			f.Shape, f.Kind = ShapeScalar, KindBytes
			return nil
		}
		elem, elemSchema, err := classifyElem(t.Elem(), depth)
		if err != nil {
			return err
		}
		f.Shape, f.Elem, f.ElemSchema = ShapeList, elem, elemSchema
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return fmt.Errorf("%w: map keyed by %s", ErrUnsupportedShape, t.Key().Kind())
		}
		f.Shape, f.Kind = ShapeScalar, KindMap
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedShape, t.Kind())
	}
	return nil
}

func classifyElem(t reflect.Type, depth int) (Kind, *Schema, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t {
	case timeType:
		return KindTime, nil, nil
	case durationType:
		return KindDuration, nil, nil
	case uuidType:
		return KindUUID, nil, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return KindBool, nil, nil
	case reflect.String:
		return KindString, nil, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt, nil, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindUint, nil, nil
	case reflect.Float32, reflect.Float64:
		return KindFloat, nil, nil
	case reflect.Struct:
		nested, err := classifyStruct(t, depth-1)
		if err != nil {
			return KindInvalid, nil, err
		}
		return KindObject, nested, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return KindInvalid, nil, fmt.Errorf("%w: map keyed by %s", ErrUnsupportedShape, t.Key().Kind())
		}
		return KindMap, nil, nil
	default:
		return KindInvalid, nil, fmt.Errorf("%w: list of %s", ErrUnsupportedShape, t.Kind())
	}
}

// displayName resolves the input/report name of a struct field from its
// json tag, falling back to the lowercased Go name. Fields tagged `json:"-"`
// are excluded from the schema.
func displayName(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name, false
	}
	return strings.ToLower(sf.Name), false
}

func hasRule(validateTag, rule string) bool {
	for _, tok := range strings.Split(validateTag, ",") {
		if tok == rule {
			return true
		}
	}
	return false
}

func oneofVariants(validateTag string) []string {
	for _, tok := range strings.Split(validateTag, ",") {
		if rest, ok := strings.CutPrefix(tok, "oneof="); ok {
			return strings.Fields(rest)
		}
	}
	return nil
}
