package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	sheildantic "github.com/Hybridhash/Sheildantic"
)

// JSON extracts the request body as a single-valued input mapping.
//
// The body must hold one JSON object. Numbers decode as json.Number so
// large integers survive extraction unchanged; the validation pipeline
// coerces them later. An empty body yields an empty mapping, trailing
// data after the object is rejected.
//
// Example:
//
//	in, err := binder.JSON(r)
//	if err != nil {
//		// 400, the body was not a JSON object
//	}
//	res, err := v.Validate(r.Context(), in)
func JSON(r *http.Request) (sheildantic.Map, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return sheildantic.Map{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	// Ensure the entire body was consumed
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	if payload == nil {
		payload = map[string]any{}
	}
	return sheildantic.Map(payload), nil
}
