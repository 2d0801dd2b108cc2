package binder

import (
	"fmt"
	"net/http"

	sheildantic "github.com/Hybridhash/Sheildantic"
)

// FormBody extracts an application/x-www-form-urlencoded body as a
// multi-valued input mapping. Query string parameters are not included;
// use Query for those.
//
// Example:
//
//	in, err := binder.FormBody(r)
//	if err != nil {
//		// 400, the body could not be parsed
//	}
//	res, err := v.Validate(r.Context(), in)
func FormBody(r *http.Request) (sheildantic.Form, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	return sheildantic.Form(r.PostForm), nil
}

// Multipart extracts the text fields of a multipart/form-data body as a
// multi-valued input mapping. File parts are left untouched on
// r.MultipartForm for the caller. Memory is bounded by WithMaxMemory,
// 10MB by default; larger parts spill to disk.
func Multipart(r *http.Request, opts ...Option) (sheildantic.Form, error) {
	o := newOptions(opts)
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(o.maxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
	}
	return sheildantic.Form(r.MultipartForm.Value), nil
}

// Query extracts the URL query string as a multi-valued input mapping.
// It never fails: an absent query yields an empty mapping.
func Query(r *http.Request) sheildantic.Form {
	return sheildantic.Form(r.URL.Query())
}
