package sheildantic_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sheildantic "github.com/Hybridhash/Sheildantic"
)

func TestForm_Get(t *testing.T) {
	t.Parallel()

	f := sheildantic.Form{
		"name": {"alice"},
		"tags": {"go", "web"},
		"zero": {},
	}

	v, ok := f.Get("name")
	require.True(t, ok)
	assert.Equal(t, "alice", v)

	v, ok = f.Get("tags")
	require.True(t, ok, "multi-valued keys return their first value")
	assert.Equal(t, "go", v)

	_, ok = f.Get("zero")
	assert.False(t, ok, "a key with no values behaves as absent")

	_, ok = f.Get("missing")
	assert.False(t, ok)
}

func TestForm_All(t *testing.T) {
	t.Parallel()

	f := sheildantic.Form(url.Values{
		"tags": {"go", "web", "go"},
		"name": {"alice"},
	})

	vs, ok := f.All("tags")
	require.True(t, ok)
	assert.Equal(t, []any{"go", "web", "go"}, vs, "submission order preserved")

	vs, ok = f.All("name")
	require.True(t, ok)
	assert.Equal(t, []any{"alice"}, vs)

	_, ok = f.All("missing")
	assert.False(t, ok)
}

func TestMap_Get(t *testing.T) {
	t.Parallel()

	m := sheildantic.Map{
		"name":  "alice",
		"age":   42,
		"extra": nil,
	}

	v, ok := m.Get("name")
	require.True(t, ok)
	assert.Equal(t, "alice", v)

	v, ok = m.Get("extra")
	require.True(t, ok, "an explicit null is still present")
	assert.Nil(t, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestMap_All(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		expected []any
	}{
		{name: "native sequence", value: []any{"a", 1, true}, expected: []any{"a", 1, true}},
		{name: "string slice", value: []string{"a", "b"}, expected: []any{"a", "b"}},
		{name: "typed slice", value: []int{1, 2, 3}, expected: []any{1, 2, 3}},
		{name: "explicit null", value: nil, expected: []any{}},
		{name: "scalar wraps", value: "solo", expected: []any{"solo"}},
		{name: "bytes stay whole", value: []byte("raw"), expected: []any{[]byte("raw")}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := sheildantic.Map{"field": tt.value}
			vs, ok := m.All("field")
			require.True(t, ok)
			assert.Equal(t, tt.expected, vs)
		})
	}

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		_, ok := sheildantic.Map{}.All("field")
		assert.False(t, ok)
	})

	t.Run("returned sequence is a copy", func(t *testing.T) {
		t.Parallel()

		src := []any{"a", "b"}
		m := sheildantic.Map{"field": src}

		vs, ok := m.All("field")
		require.True(t, ok)
		vs[0] = "mutated"
		assert.Equal(t, "a", src[0])
	})
}
