package binder

import (
	"fmt"
	"mime"
	"net/http"

	sheildantic "github.com/Hybridhash/Sheildantic"
)

// DefaultMaxMemory is the default memory bound for parsing multipart
// forms (10MB).
const DefaultMaxMemory = 10 << 20

// Option configures extraction.
type Option func(*options)

type options struct {
	strict    bool
	maxMemory int64
}

func newOptions(opts []Option) options {
	o := options{maxMemory: DefaultMaxMemory}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Strict makes FromRequest fail on a missing, malformed, or unsupported
// Content-Type instead of returning an empty input.
func Strict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithMaxMemory overrides the multipart parsing memory bound.
func WithMaxMemory(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMemory = n
		}
	}
}

// FromRequest extracts the body of r as an Input, dispatching on the
// media type: application/json, application/x-www-form-urlencoded and
// multipart/form-data are recognized. Any other media type, and requests
// without one, yield an empty input so validation can still report
// missing required fields; Strict turns those cases into errors.
//
// Example:
//
//	in, err := binder.FromRequest(r)
//	if err != nil {
//		// 400 or 415 depending on the sentinel
//	}
//	res, err := v.Validate(r.Context(), in)
func FromRequest(r *http.Request, opts ...Option) (sheildantic.Input, error) {
	o := newOptions(opts)

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		if o.strict {
			return nil, fmt.Errorf("%w: expected a body media type", ErrMissingContentType)
		}
		return sheildantic.Map{}, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		if o.strict {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}
		return sheildantic.Map{}, nil
	}

	switch mediaType {
	case "application/json":
		return JSON(r)
	case "application/x-www-form-urlencoded":
		return FormBody(r)
	case "multipart/form-data":
		return Multipart(r, opts...)
	default:
		if o.strict {
			return nil, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
		}
		return sheildantic.Map{}, nil
	}
}
