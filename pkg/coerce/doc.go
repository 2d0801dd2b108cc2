// Package coerce normalizes raw scalar representations from loosely-typed
// transports (form values, decoded JSON) into native Go values.
//
// The helpers never panic and never return errors: a value that cannot be
// coerced is reported through a boolean or an accumulated failure record,
// so callers can gather every offending field before deciding the outcome
// of a validation pass.
//
//	b, ok := coerce.Bool("YES") // true, true
//	b, ok = coerce.Bool("2")    // _, false
//
//	items, bad := coerce.Items([]any{"2", "x", 3}, schema.KindInt)
//	// bad == [{Index: 1, Value: "x"}]
package coerce
