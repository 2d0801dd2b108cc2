package sanitizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

// Sanitizer applies a compiled Config. Construction is the only place the
// policy is interpreted; after New the value is immutable and safe for
// concurrent use.
type Sanitizer struct {
	cfg        Config
	preserving *bluemonday.Policy
	stripped   *bluemonday.Policy
	maxSize    int
}

// New compiles the config into the preserving and stripped policies.
// It fails with ErrUnsupportedPrefix when the config declares a generic
// attribute prefix the engine cannot enforce.
func New(cfg Config) (*Sanitizer, error) {
	cfg = cfg.clone()
	for _, prefix := range cfg.AttributePrefixes {
		if prefix != "data-" {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedPrefix, prefix)
		}
	}

	maxSize := cfg.MaxFieldSize
	if maxSize == 0 {
		maxSize = DefaultMaxFieldSize
	}

	return &Sanitizer{
		cfg:        cfg,
		preserving: compilePreserving(cfg),
		stripped:   compileStripped(cfg),
		maxSize:    maxSize,
	}, nil
}

// Config returns a copy of the policy the sanitizer was compiled from.
func (s *Sanitizer) Config() Config { return s.cfg.clone() }

// MaxFieldSize returns the effective sanitized-length ceiling; values
// below one mean the check is disabled.
func (s *Sanitizer) MaxFieldSize() int { return s.maxSize }

// SanitizeString cleans a single string through the policy for the given
// mode. NUL bytes are removed and the text is NFC-normalized before the
// policy runs. In Preserving mode the result is checked against the size
// ceiling and the forced link rel is applied; Stripped mode never fails.
func (s *Sanitizer) SanitizeString(str string, mode Mode) (string, error) {
	str = stripNullBytes(str)
	str = norm.NFC.String(str)

	if mode == Stripped {
		return s.stripped.Sanitize(str), nil
	}

	out := s.preserving.Sanitize(str)
	if s.cfg.LinkRel != "" {
		out = forceLinkRel(out, s.cfg.LinkRel)
	}
	if s.maxSize > 0 && utf8.RuneCountInString(out) > s.maxSize {
		return "", fmt.Errorf("%w of %d", ErrFieldTooLarge, s.maxSize)
	}
	return out, nil
}

func compilePreserving(cfg Config) *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	if len(cfg.Tags) > 0 {
		p.AllowElements(cfg.Tags...)
	}

	allowed := make(map[string]struct{}, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		allowed[strings.ToLower(tag)] = struct{}{}
	}
	for tag, attrs := range cfg.Attributes {
		if len(attrs) == 0 {
			continue
		}
		if tag == "*" {
			p.AllowAttrs(attrs...).Globally()
			continue
		}
		if _, ok := allowed[strings.ToLower(tag)]; ok {
			p.AllowAttrs(attrs...).OnElements(tag)
		}
	}

	schemes := cfg.URLSchemes
	if len(schemes) == 0 {
		schemes = []string{"http", "https", "mailto"}
	}
	p.AllowURLSchemes(schemes...)
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)

	if cfg.AllowComments {
		p.AllowComments()
	}
	if len(cfg.AttributePrefixes) > 0 {
		p.AllowDataAttributes()
	}
	if len(cfg.SkipContentTags) > 0 {
		p.SkipElementsContent(cfg.SkipContentTags...)
	}
	return p
}

func compileStripped(cfg Config) *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	if len(cfg.SkipContentTags) > 0 {
		p.SkipElementsContent(cfg.SkipContentTags...)
	}
	return p
}
