package coerce_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Hybridhash/Sheildantic/pkg/coerce"
)

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  bool
		ok    bool
	}{
		{"lowercase true", "true", true, true},
		{"uppercase TRUE", "TRUE", true, true},
		{"mixed case Yes", "Yes", true, true},
		{"numeric one", "1", true, true},
		{"lowercase false", "false", false, true},
		{"uppercase NO", "NO", false, true},
		{"numeric zero", "0", false, true},
		{"padded token", "  true ", true, true},
		{"native true", true, true, true},
		{"native false", false, false, true},
		{"nonzero int", 5, true, true},
		{"zero int", 0, false, true},
		{"negative int", -1, true, true},
		{"unsigned int", uint8(2), true, true},
		{"integral json number", json.Number("1"), true, true},
		{"zero json number", json.Number("0"), false, true},
		{"fractional json number", json.Number("0.5"), false, false},
		{"arbitrary string", "not_bool", false, false},
		{"on is not a token", "on", false, false},
		{"empty string", "", false, false},
		{"float value", 1.5, false, false},
		{"nil value", nil, false, false},
		{"slice value", []any{"true"}, false, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := coerce.Bool(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestOpaque(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "not_bool", coerce.Opaque("not_bool"))
	assert.Equal(t, "1.5", coerce.Opaque(1.5))
	assert.Equal(t, "[a b]", coerce.Opaque([]string{"a", "b"}))
}
