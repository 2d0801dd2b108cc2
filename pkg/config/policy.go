package config

import (
	"errors"

	"github.com/Hybridhash/Sheildantic/pkg/sanitizer"
)

// Settings carries the environment-facing sanitization knobs. Pointer
// fields distinguish "not set" from an explicit zero value, so an
// operator can force AllowComments=false or MaxFieldSize=0 over a policy
// file's values.
type Settings struct {
	PolicyFile    string   `env:"SHIELDANTIC_POLICY_FILE"`
	AllowedTags   []string `env:"SHIELDANTIC_ALLOWED_TAGS" envSeparator:","`
	URLSchemes    []string `env:"SHIELDANTIC_URL_SCHEMES" envSeparator:","`
	LinkRel       *string  `env:"SHIELDANTIC_LINK_REL"`
	AllowComments *bool    `env:"SHIELDANTIC_ALLOW_COMMENTS"`
	MaxFieldSize  *int     `env:"SHIELDANTIC_MAX_FIELD_SIZE"`
}

// Policy resolves the active sanitization policy from the environment.
//
// Resolution starts from sanitizer.DefaultConfig. When
// SHIELDANTIC_POLICY_FILE is set, the YAML policy it names replaces the
// base entirely; the remaining SHIELDANTIC_* variables then override
// individual fields on whatever base was chosen.
func Policy() (sanitizer.Config, error) {
	var s Settings
	if err := Load(&s); err != nil {
		return sanitizer.Config{}, err
	}
	return s.Resolve()
}

// Resolve applies the settings over their base policy. It is exposed so
// tests and callers with their own Settings source can reuse the
// resolution order.
func (s Settings) Resolve() (sanitizer.Config, error) {
	cfg := sanitizer.DefaultConfig()
	if s.PolicyFile != "" {
		loaded, err := sanitizer.FromFile(s.PolicyFile)
		if err != nil {
			return sanitizer.Config{}, errors.Join(ErrInvalidPolicyFile, err)
		}
		cfg = loaded
	}

	if len(s.AllowedTags) > 0 {
		cfg.Tags = s.AllowedTags
	}
	if len(s.URLSchemes) > 0 {
		cfg.URLSchemes = s.URLSchemes
	}
	if s.LinkRel != nil {
		cfg.LinkRel = *s.LinkRel
	}
	if s.AllowComments != nil {
		cfg.AllowComments = *s.AllowComments
	}
	if s.MaxFieldSize != nil {
		cfg.MaxFieldSize = *s.MaxFieldSize
	}
	return cfg, nil
}
