package sheildantic

import (
	"github.com/go-playground/validator/v10"

	"github.com/Hybridhash/Sheildantic/pkg/schema"
)

// Option configures a Validator at construction time.
type Option func(*settings)

type settings struct {
	validate *validator.Validate
	maxDepth int
}

func defaultSettings() settings {
	return settings{maxDepth: schema.DefaultMaxDepth}
}

// WithValidate supplies a caller-owned validator instance so custom rules
// registered on it participate in constraint checking. New installs its
// json tag-name function on the instance; reported field names follow
// json tags either way.
func WithValidate(v *validator.Validate) Option {
	return func(s *settings) {
		if v != nil {
			s.validate = v
		}
	}
}

// WithMaxDepth bounds nested struct classification. Values below one are
// ignored.
func WithMaxDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}
