package sanitizer

import "maps"

// DefaultMaxFieldSize is the sanitized-length ceiling applied when a
// Config leaves MaxFieldSize at zero.
const DefaultMaxFieldSize = 1024

// Mode selects which of the two sanitization passes to apply.
type Mode uint8

const (
	// Preserving keeps markup allowed by the policy.
	Preserving Mode = iota
	// Stripped removes all markup regardless of the policy.
	Stripped
)

func (m Mode) String() string {
	if m == Stripped {
		return "stripped"
	}
	return "preserving"
}

// Config declares the sanitization policy. It is a plain value: New takes
// a private copy, so a Config can be shared, stored and reused freely.
// The zero value allows no markup at all.
type Config struct {
	// Tags lists the elements allowed to survive the preserving pass.
	// Empty means no tags are allowed.
	Tags []string `yaml:"tags"`

	// Attributes maps an element name to the attributes it may carry.
	// The "*" key applies to every allowed element. Entries for elements
	// missing from Tags are ignored; attribute rules never widen the tag
	// allow-list.
	Attributes map[string][]string `yaml:"attributes"`

	// URLSchemes restricts the schemes accepted in URL-bearing
	// attributes. Empty falls back to http, https and mailto.
	URLSchemes []string `yaml:"url_schemes"`

	// AllowComments keeps HTML comments in the preserving pass.
	// Comments are stripped when false.
	AllowComments bool `yaml:"allow_comments"`

	// LinkRel is forced onto the rel attribute of every surviving
	// anchor. Empty leaves rel attributes alone.
	LinkRel string `yaml:"link_rel"`

	// SkipContentTags lists elements whose inner content is dropped
	// entirely instead of being unwrapped when the element is removed.
	SkipContentTags []string `yaml:"skip_content_tags"`

	// AttributePrefixes allows generic attributes by name prefix. Only
	// the "data-" prefix is supported; anything else fails at New.
	AttributePrefixes []string `yaml:"attribute_prefixes"`

	// MaxFieldSize caps the rune length of a sanitized string in the
	// preserving pass. Zero applies DefaultMaxFieldSize, a negative
	// value disables the check.
	MaxFieldSize int `yaml:"max_field_size"`
}

// DefaultConfig returns a conservative policy for user-generated content:
// basic formatting and links, standard URL schemes, rel forced on links.
func DefaultConfig() Config {
	return Config{
		Tags: []string{
			"a", "b", "blockquote", "br", "code", "em", "i",
			"li", "ol", "p", "pre", "strong", "u", "ul",
		},
		Attributes: map[string][]string{
			"a": {"href", "title"},
		},
		URLSchemes: []string{"http", "https", "mailto"},
		LinkRel:    "noopener noreferrer",
	}
}

// StrictConfig returns a policy that allows no markup at all.
func StrictConfig() Config {
	return Config{}
}

func (c Config) clone() Config {
	out := c
	out.Tags = append([]string(nil), c.Tags...)
	out.URLSchemes = append([]string(nil), c.URLSchemes...)
	out.SkipContentTags = append([]string(nil), c.SkipContentTags...)
	out.AttributePrefixes = append([]string(nil), c.AttributePrefixes...)
	if c.Attributes != nil {
		out.Attributes = make(map[string][]string, len(c.Attributes))
		maps.Copy(out.Attributes, c.Attributes)
		for k, v := range out.Attributes {
			out.Attributes[k] = append([]string(nil), v...)
		}
	}
	return out
}
