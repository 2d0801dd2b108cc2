package sheildantic

// ErrorKind categorizes a validation failure.
type ErrorKind string

const (
	// KindFieldTooLarge reports a sanitized value that exceeded the
	// configured size limit.
	KindFieldTooLarge ErrorKind = "field_too_large"

	// KindInvalidBoolean reports a value that could not be read as a
	// boolean token.
	KindInvalidBoolean ErrorKind = "invalid_boolean"

	// KindInvalidListItem reports a list element that could not be
	// parsed into the list's numeric element type.
	KindInvalidListItem ErrorKind = "invalid_list_item"

	// KindMissingRequired reports a required field absent from the input.
	KindMissingRequired ErrorKind = "missing_required_field"

	// KindSchemaRejected reports a construction or constraint failure.
	KindSchemaRejected ErrorKind = "schema_rejected"
)

// GeneralField is the synthetic field name used when a failure carries no
// usable location.
const GeneralField = "general"

// ErrorDetail describes one validation failure, addressed to the
// top-level field name the caller submitted.
type ErrorDetail struct {
	Field          string    `json:"field"`
	Kind           ErrorKind `json:"kind"`
	Message        string    `json:"message"`
	InputValue     any       `json:"input_value,omitempty"`
	SanitizedValue any       `json:"sanitized_value,omitempty"`
}

// Result is the terminal outcome of one Validate call.
//
// Exactly one side is populated: IsValid reports true with Model set and
// Errors empty, or false with at least one ErrorDetail and no Model.
// SanitizedData always holds the structure-preserving pass output, even
// when validation failed partway.
type Result[T any] struct {
	IsValid       bool           `json:"is_valid"`
	Model         *T             `json:"model,omitempty"`
	Errors        []ErrorDetail  `json:"errors,omitempty"`
	SanitizedData map[string]any `json:"sanitized_data"`
}

// FieldErrors returns the details recorded for one field name.
func (r *Result[T]) FieldErrors(name string) []ErrorDetail {
	var out []ErrorDetail
	for _, d := range r.Errors {
		if d.Field == name {
			out = append(out, d)
		}
	}
	return out
}
