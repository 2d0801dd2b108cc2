package sheildantic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/Hybridhash/Sheildantic/pkg/schema"
)

// mapSchemaErrors reconciles construction and constraint failures into
// flat, field-addressable details. Dotted and indexed locations collapse
// to the top-level field the caller submitted; failures without a usable
// location land on GeneralField.
func (v *Validator[T]) mapSchemaErrors(err error, in Input, sanitized map[string]any) []ErrorDetail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]ErrorDetail, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, v.constraintDetail(fe, in, sanitized))
		}
		return details
	}

	var merr *mapstructure.Error
	if errors.As(err, &merr) {
		details := make([]ErrorDetail, 0, len(merr.Errors))
		for _, msg := range merr.Errors {
			details = append(details, v.decodeDetail(msg, in, sanitized))
		}
		return details
	}

	return []ErrorDetail{{
		Field:   GeneralField,
		Kind:    KindSchemaRejected,
		Message: err.Error(),
	}}
}

// constraintDetail flattens one validator failure. The namespace carries
// registered tag names per segment, so its first field segment is the
// submitted top-level name.
func (v *Validator[T]) constraintDetail(fe validator.FieldError, in Input, sanitized map[string]any) ErrorDetail {
	name := topLevelField(fe.Namespace())
	f, ok := v.schema.Field(name)
	if !ok {
		return ErrorDetail{
			Field:   GeneralField,
			Kind:    KindSchemaRejected,
			Message: fmt.Sprintf("%s: %s", fe.Namespace(), constraintMessage(fe)),
		}
	}
	return ErrorDetail{
		Field:          f.Name,
		Kind:           KindSchemaRejected,
		Message:        constraintMessage(fe),
		InputValue:     rawValue(in, f),
		SanitizedValue: sanitized[f.Name],
	}
}

// decodeDetail flattens one mapstructure failure. Decode messages locate
// the field in single quotes using Go field names, either as
// "'Field[0]' expected type ..." or "error decoding 'Field': ...".
func (v *Validator[T]) decodeDetail(msg string, in Input, sanitized map[string]any) ErrorDetail {
	path, rest := splitDecodeError(msg)
	seg := path
	if i := strings.IndexAny(seg, ".["); i >= 0 {
		seg = seg[:i]
	}
	f, ok := v.schema.FieldByGoName(seg)
	if !ok {
		f, ok = v.schema.Field(seg)
	}
	if !ok {
		return ErrorDetail{Field: GeneralField, Kind: KindSchemaRejected, Message: msg}
	}
	return ErrorDetail{
		Field:          f.Name,
		Kind:           KindSchemaRejected,
		Message:        rest,
		InputValue:     rawValue(in, f),
		SanitizedValue: sanitized[f.Name],
	}
}

// topLevelField reduces a validator namespace to its first field segment:
// "CreateUser.contacts[0].email" becomes "contacts". The leading segment
// is the struct type name and is dropped when a field segment follows.
func topLevelField(ns string) string {
	if ns == "" {
		return GeneralField
	}
	parts := strings.Split(ns, ".")
	seg := parts[0]
	if len(parts) > 1 {
		seg = parts[1]
	}
	if i := strings.IndexByte(seg, '['); i >= 0 {
		seg = seg[:i]
	}
	if seg == "" {
		return GeneralField
	}
	return seg
}

// splitDecodeError extracts the first single-quoted location from a
// decode message. The location prefix is dropped from the returned
// message only when it leads the sentence, as in "'field' expected type
// ..." or "error decoding 'field': ..."; messages quoting the field
// mid-sentence stay whole.
func splitDecodeError(msg string) (path, rest string) {
	start := strings.IndexByte(msg, '\'')
	if start < 0 {
		return "", msg
	}
	end := strings.IndexByte(msg[start+1:], '\'')
	if end < 0 {
		return "", msg
	}
	path = msg[start+1 : start+1+end]
	rest = msg
	if start == 0 || strings.HasPrefix(msg, "error decoding '") {
		if tail := strings.TrimLeft(msg[start+2+end:], ": "); tail != "" {
			rest = tail
		}
	}
	return path, rest
}

// constraintMessage renders a humane message for a constraint failure.
func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "len":
		return fmt.Sprintf("must have length %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// rawValue looks up the original submitted value for a field. List fields
// attach the whole submitted sequence.
func rawValue(in Input, f *schema.Field) any {
	if f.Shape == schema.ShapeList {
		if vs, ok := in.All(f.Name); ok {
			return vs
		}
		return nil
	}
	if v, ok := in.Get(f.Name); ok {
		return v
	}
	return nil
}
