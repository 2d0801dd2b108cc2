package sanitizer

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a Config from a YAML policy document:
//
//	tags: [a, b, code]
//	attributes:
//	  a: [href, title]
//	url_schemes: [https]
//	link_rel: noopener noreferrer
//	skip_content_tags: [script, style]
//	max_field_size: 512
//
// The result still goes through New, so an invalid policy is caught at
// compile time, not here.
func FromYAML(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidPolicy, err)
	}
	return cfg, nil
}

// FromFile loads a YAML policy document from disk.
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read policy file: %w", err)
	}
	return FromYAML(data)
}
