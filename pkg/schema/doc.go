// Package schema classifies the fields of a target struct type into a
// fixed set of shapes that the validation pipeline understands.
//
// Classification happens once per type, never per call: the resulting
// Schema is an immutable lookup table that callers hold for the lifetime
// of a validator instance and share freely across goroutines.
//
// Each exported struct field is described by a Field carrying its display
// name (the `json` tag when present, the lowercased Go name otherwise),
// its Shape (scalar, boolean, list, nested object or enum), whether the
// `validate` tag marks it required, and the raw text of a `default` tag.
//
// # Usage
//
//	type CreateUser struct {
//	    Name    string   `json:"name" validate:"required"`
//	    Friends []int    `json:"friends"`
//	    Active  bool     `json:"active" default:"true"`
//	    Role    string   `json:"role" validate:"oneof=admin member"`
//	}
//
//	sch, err := schema.Of(reflect.TypeOf(CreateUser{}))
//	if err != nil {
//	    // the type declares a field shape the pipeline cannot handle
//	}
//	f, _ := sch.Field("friends")
//	// f.Shape == schema.ShapeList, f.Elem == schema.KindInt
//
// Unsupported declarations (channels, funcs, bare interfaces, maps with
// non-string keys) fail classification immediately, so a misdeclared
// target type surfaces at construction time, not when the first request
// arrives.
package schema
