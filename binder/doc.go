// Package binder extracts validation input from HTTP requests.
//
// Rather than binding request bodies into structs directly, the binder
// produces the loose Input mappings the validation pipeline consumes, so
// sanitization always runs before any typed value exists.
//
// FromRequest dispatches on the Content-Type header:
//
//	in, err := binder.FromRequest(r)
//	if err != nil {
//		// binder.ErrInvalidJSON, binder.ErrInvalidForm, or with
//		// binder.Strict(), the content-type sentinels
//	}
//	res, err := v.Validate(r.Context(), in)
//
// JSON bodies become a sheildantic.Map with numbers kept as json.Number;
// form-encoded and multipart bodies become a sheildantic.Form preserving
// repeated keys. Query strings are extracted separately:
//
//	res, err := v.Validate(r.Context(), binder.Query(r))
//
// By default unrecognized media types yield an empty input, which lets
// validation report missing required fields instead of the transport
// failing first. Strict() turns them into ErrUnsupportedMediaType.
package binder
