// Package sanitizer cleans untrusted content through an allow-list HTML
// policy, recursively over arbitrarily nested values.
//
// A Config declares the policy: which tags survive, which attributes they
// may carry, which URL schemes are acceptable, whether comments survive,
// the rel value forced onto links, which tags lose their inner content
// entirely, and the maximum length a sanitized string may reach. The zero
// Config allows no markup at all.
//
// New compiles a Config once into two policies:
//
//   - Preserving keeps the markup the policy allows. This is the pass
//     whose output is shown back to users, so the size ceiling applies
//     here.
//   - Stripped removes all markup regardless of the configured tags,
//     producing plain text suitable for typed model construction.
//
// Sanitize walks a closed set of value shapes: strings are cleaned,
// non-string scalars (numbers, booleans, times, durations, UUIDs, byte
// slices) pass through untouched, sequences and string-keyed mappings are
// cleaned element by element with keys left verbatim, and structs are
// decomposed into mappings field by field. Values outside this set are
// rejected rather than guessed at.
//
// # Usage
//
//	s, err := sanitizer.New(sanitizer.Config{
//	    Tags:       []string{"b", "a"},
//	    Attributes: map[string][]string{"a": {"href", "title"}},
//	    LinkRel:    "noopener noreferrer",
//	})
//	if err != nil {
//	    // the config asked for something the engine cannot express
//	}
//
//	out, err := s.Sanitize(ctx, map[string]any{
//	    "bio": `Hi! <script>alert(1)</script><b>bold</b>`,
//	}, sanitizer.Preserving)
//	// out["bio"] == "Hi! <b>bold</b>"
//
// Policies may also be declared in YAML and loaded with FromFile, which
// keeps deployment-specific allow-lists out of code.
//
// A compiled Sanitizer is immutable and safe for concurrent use.
package sanitizer
