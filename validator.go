package sheildantic

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/Hybridhash/Sheildantic/pkg/coerce"
	"github.com/Hybridhash/Sheildantic/pkg/sanitizer"
	"github.com/Hybridhash/Sheildantic/pkg/schema"
)

// Validator sanitizes and validates loosely-typed input against the
// struct type T. Construction classifies T and compiles the sanitization
// policy once; the resulting value is immutable and safe for concurrent
// use.
type Validator[T any] struct {
	schema   *schema.Schema
	san      *sanitizer.Sanitizer
	validate *validator.Validate
}

// New builds a Validator for T under the given sanitization policy. It
// fails when T declares a field shape outside the supported set or when
// the policy cannot be compiled.
func New[T any](cfg sanitizer.Config, opts ...Option) (*Validator[T], error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	t := reflect.TypeOf((*T)(nil)).Elem()
	sch, err := schema.Of(t, schema.WithMaxDepth(s.maxDepth))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t, err)
	}

	san, err := sanitizer.New(cfg)
	if err != nil {
		return nil, err
	}

	vd := s.validate
	if vd == nil {
		vd = validator.New()
	}
	registerTagName(vd)

	return &Validator[T]{schema: sch, san: san, validate: vd}, nil
}

// Schema returns the cached field classification for T.
func (v *Validator[T]) Schema() *schema.Schema { return v.schema }

// Validate runs the full pipeline over the input and returns a terminal
// Result. The returned error is non-nil only when ctx is done; every
// malformed-input condition is reported inside the Result instead.
func (v *Validator[T]) Validate(ctx context.Context, in Input) (*Result[T], error) {
	res := &Result[T]{}

	// Preserving pass. The size guard fails fast: everything sanitized
	// before the offending field is kept in SanitizedData.
	sanitized, failed, err := v.sanitizeAll(ctx, in)
	res.SanitizedData = sanitized
	if err != nil {
		switch {
		case errors.Is(err, sanitizer.ErrFieldTooLarge):
			res.Errors = []ErrorDetail{{
				Field:   GeneralField,
				Kind:    KindFieldTooLarge,
				Message: err.Error(),
			}}
			return res, nil
		case errors.Is(err, sanitizer.ErrUnsupportedValue):
			res.Errors = []ErrorDetail{{
				Field:   failed,
				Kind:    KindSchemaRejected,
				Message: err.Error(),
			}}
			return res, nil
		default:
			return nil, err
		}
	}

	// Shape checks over sanitized values, collecting every failure.
	fields := v.schema.Fields()
	normalized := make(map[string][]any)
	var details []ErrorDetail
	for i := range fields {
		f := &fields[i]
		val, ok := sanitized[f.Name]
		if !ok {
			continue
		}
		switch {
		case f.Shape == schema.ShapeBoolean:
			if opaque, isStr := val.(string); isStr {
				details = append(details, ErrorDetail{
					Field:          f.Name,
					Kind:           KindInvalidBoolean,
					Message:        fmt.Sprintf("value '%s' could not be parsed to a boolean", opaque),
					InputValue:     rawValue(in, f),
					SanitizedValue: opaque,
				})
			}
		case f.Shape == schema.ShapeList && f.Elem.IsNumeric():
			items, _ := val.([]any)
			normal, bad := coerce.Items(items, f.Elem)
			if len(bad) > 0 {
				for _, ie := range bad {
					details = append(details, ErrorDetail{
						Field:          f.Name,
						Kind:           KindInvalidListItem,
						Message:        fmt.Sprintf("value '%v' at index %d could not be parsed to %s", ie.Value, ie.Index, kindPhrase(f.Elem)),
						InputValue:     rawValue(in, f),
						SanitizedValue: val,
					})
				}
				continue
			}
			normalized[f.Name] = normal
		}
	}
	if len(details) > 0 {
		res.Errors = details
		return res, nil
	}

	// Stripped pass builds the construction input. Defaults fill absent
	// fields here, after the preserving pass, so a default never
	// satisfies a required check.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	model := make(map[string]any, len(fields))
	for i := range fields {
		f := &fields[i]
		val, ok := sanitized[f.Name]
		if !ok {
			if f.HasDefault {
				model[f.Name] = f.Default
			}
			continue
		}
		if normal, has := normalized[f.Name]; has {
			val = normal
		}
		stripped, err := v.san.Sanitize(ctx, val, sanitizer.Stripped)
		if err != nil {
			return nil, err
		}
		model[f.Name] = stripped
	}

	for i := range fields {
		f := &fields[i]
		if !f.Required {
			continue
		}
		if _, ok := sanitized[f.Name]; ok {
			continue
		}
		details = append(details, ErrorDetail{
			Field:   f.Name,
			Kind:    KindMissingRequired,
			Message: "field is required",
		})
	}
	if len(details) > 0 {
		res.Errors = details
		return res, nil
	}

	// Typed construction, then constraint checks.
	target := new(T)
	dec, err := mapstructure.NewDecoder(v.decoderConfig(target))
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(model); err != nil {
		res.Errors = v.mapSchemaErrors(err, in, sanitized)
		return res, nil
	}
	if err := v.validate.StructCtx(ctx, target); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		res.Errors = v.mapSchemaErrors(err, in, sanitized)
		return res, nil
	}

	res.IsValid = true
	res.Model = target
	return res, nil
}

// SanitizeInput exposes the structure-preserving pass on its own. On a
// size failure it returns everything sanitized before the offending field
// together with the error, located by field name.
func (v *Validator[T]) SanitizeInput(ctx context.Context, in Input) (map[string]any, error) {
	out, failed, err := v.sanitizeAll(ctx, in)
	if err != nil && failed != "" {
		return out, fmt.Errorf("field %q: %w", failed, err)
	}
	return out, err
}

// sanitizeAll runs the preserving pass over every declared field. Boolean
// fields coerce inline so sanitized output carries native booleans, or
// the opaque string that turns into a located error later. List fields
// always materialize, absent ones as empty sequences. Absent and null
// scalars are skipped. Unknown input keys are never read.
func (v *Validator[T]) sanitizeAll(ctx context.Context, in Input) (map[string]any, string, error) {
	fields := v.schema.Fields()
	out := make(map[string]any, len(fields))
	for i := range fields {
		f := &fields[i]
		if err := ctx.Err(); err != nil {
			return out, "", err
		}
		switch f.Shape {
		case schema.ShapeList:
			values, _ := in.All(f.Name)
			cleaned := make([]any, len(values))
			for j, item := range values {
				c, err := v.san.Sanitize(ctx, item, sanitizer.Preserving)
				if err != nil {
					return out, f.Name, err
				}
				cleaned[j] = c
			}
			out[f.Name] = cleaned
		case schema.ShapeBoolean:
			raw, ok := in.Get(f.Name)
			if !ok || raw == nil {
				continue
			}
			if b, ok := coerce.Bool(raw); ok {
				out[f.Name] = b
				continue
			}
			// The opaque token still passes through the policy so raw
			// markup never reaches sanitized output.
			c, err := v.san.SanitizeString(coerce.Opaque(raw), sanitizer.Preserving)
			if err != nil {
				return out, f.Name, err
			}
			out[f.Name] = c
		default:
			raw, ok := in.Get(f.Name)
			if !ok || raw == nil {
				continue
			}
			c, err := v.san.Sanitize(ctx, raw, sanitizer.Preserving)
			if err != nil {
				return out, f.Name, err
			}
			out[f.Name] = c
		}
	}
	return out, "", nil
}

func (v *Validator[T]) decoderConfig(target *T) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
			stringToUUIDHook,
		),
	}
}

// stringToUUIDHook parses textual UUIDs during construction.
func stringToUUIDHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != uuidType {
		return data, nil
	}
	s, ok := data.(string)
	if !ok {
		return data, nil
	}
	return uuid.Parse(s)
}

var uuidType = reflect.TypeOf(uuid.UUID{})

// registerTagName makes reported field names follow json tags so error
// locations match the names callers submitted.
func registerTagName(vd *validator.Validate) {
	vd.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
}

func kindPhrase(k schema.Kind) string {
	switch k {
	case schema.KindInt:
		return "an integer"
	case schema.KindUint:
		return "an unsigned integer"
	default:
		return "a number"
	}
}
