package binder

import "errors"

// Common extraction errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidForm          = errors.New("invalid form data")
)
