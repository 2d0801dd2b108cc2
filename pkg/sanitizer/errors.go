package sanitizer

import "errors"

var (
	// ErrFieldTooLarge reports a sanitized string exceeding the
	// configured MaxFieldSize. It is a resource guard, not a semantic
	// validation, so callers treat it as fatal for the whole input.
	ErrFieldTooLarge = errors.New("field exceeds maximum size")

	// ErrUnsupportedValue reports a value outside the closed shape set
	// the walker handles.
	ErrUnsupportedValue = errors.New("unsupported value type")

	// ErrUnsupportedPrefix reports a generic attribute prefix the
	// underlying engine cannot enforce. Only "data-" is supported.
	ErrUnsupportedPrefix = errors.New("unsupported attribute prefix")

	// ErrInvalidPolicy reports an unparseable YAML policy document.
	ErrInvalidPolicy = errors.New("invalid policy document")
)
