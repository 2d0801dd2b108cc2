// Package handler adapts validators to HTTP handlers.
//
// Wrap pairs a sheildantic.Validator with a typed handler function and
// produces a plain http.HandlerFunc, so it mounts on any router:
//
//	type CreateUser struct {
//		Name  string `json:"name" validate:"required"`
//		Email string `json:"email" validate:"required,email"`
//	}
//
//	v, err := sheildantic.New[CreateUser](sanitizer.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r := chi.NewRouter()
//	r.Post("/users", handler.Wrap(v, func(w http.ResponseWriter, r *http.Request, m *CreateUser) {
//		// m is sanitized and validated
//	}))
//
// The wrapped handler extracts input with the binder package, runs the
// validation pipeline, and only calls through on valid input. Invalid
// input renders the validation result as JSON with status 422:
//
//	{
//	  "is_valid": false,
//	  "errors": [{"field": "email", "kind": "schema_rejected", "message": "..."}],
//	  "sanitized_data": {"name": "..."}
//	}
//
// Extraction failures render an error envelope with status 400, or 415
// for content-type rejections when binder.Strict() is passed through
// WithBinderOptions. Responses and logging are customizable per route via
// WithInvalidRenderer, WithInvalidStatus and WithLogger.
package handler
