// Package sheildantic sanitizes untrusted input and validates it against
// typed Go structs in a single pipeline.
//
// Raw values arriving from HTML forms, query strings, or decoded JSON are
// cleaned first and checked second, so every error message, every reported
// value, and every constructed model is derived from sanitized data only.
// Raw input never leaks past the first stage.
//
// Key Features:
//
//   - Type-safe validators using generics, one per target struct
//   - HTML sanitization with an allow-list policy (structure-preserving
//     for storage, tag-stripping for validation and display)
//   - Lenient coercion for booleans and numeric list items with precise,
//     field-addressable error reporting
//   - Struct construction via mapstructure and constraint checking via
//     go-playground/validator
//   - Flat error paths: nested and indexed failures collapse to the
//     top-level field a caller submitted
//
// Basic Usage:
//
//	// Define your input type
//	type CreateUser struct {
//		Name   string   `json:"name" validate:"required"`
//		Bio    string   `json:"bio"`
//		Age    int      `json:"age" validate:"gte=0"`
//		Tags   []string `json:"tags"`
//		Active bool     `json:"active" default:"true"`
//	}
//
//	// Build a validator once; it is immutable and safe for concurrent use
//	v, err := sheildantic.New[CreateUser](sanitizer.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Validate anything that satisfies Input
//	res, err := v.Validate(ctx, sheildantic.Form(r.PostForm))
//	if err != nil {
//		return err // context cancellation only
//	}
//	if !res.IsValid {
//		for _, d := range res.Errors {
//			fmt.Printf("%s: %s\n", d.Field, d.Message)
//		}
//		return nil
//	}
//	user := *res.Model // fully sanitized and validated
//
// Validation never panics and never returns an error for malformed input:
// every failure is reported inside the Result. The only error Validate
// returns is the context's, when the caller cancels mid-run.
//
// Input Sources:
//
// Two adapters cover the common transports. Form wraps url.Values and keeps
// repeated keys in submission order; Map wraps a decoded JSON object and
// expands native sequences for list-shaped fields:
//
//	res, _ := v.Validate(ctx, sheildantic.Form(r.PostForm))
//	res, _ = v.Validate(ctx, sheildantic.Map(payload))
//
// Anything else can participate by implementing the two-method Input
// interface.
//
// The pipeline follows these principles:
//   - Sanitize before validate, always
//   - Collect every field's errors in one pass rather than failing fast
//   - Report errors where the caller can act on them
//   - Totality over exceptions
package sheildantic
