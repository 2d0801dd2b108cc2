package schema

import "errors"

// Classification errors. All of them indicate a misdeclared target type,
// which is a programming error surfaced at construction time.
var (
	ErrNotStruct        = errors.New("target type is not a struct")
	ErrUnsupportedShape = errors.New("unsupported field shape")
	ErrTooDeep          = errors.New("nesting depth exceeded")
)
