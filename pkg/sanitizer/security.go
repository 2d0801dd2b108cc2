package sanitizer

import "strings"

// stripNullBytes removes NUL bytes before the policy runs; several
// downstream parsers treat them as terminators, which would let content
// smuggle past the allow-list.
func stripNullBytes(s string) string {
	if !strings.ContainsRune(s, 0) {
		return s
	}
	return strings.ReplaceAll(s, "\x00", "")
}
