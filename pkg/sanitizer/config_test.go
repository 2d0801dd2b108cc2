package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hybridhash/Sheildantic/pkg/sanitizer"
)

func TestNew_UnsupportedPrefix(t *testing.T) {
	t.Parallel()

	_, err := sanitizer.New(sanitizer.Config{AttributePrefixes: []string{"x-"}})
	require.ErrorIs(t, err, sanitizer.ErrUnsupportedPrefix)
	assert.Contains(t, err.Error(), `"x-"`)

	_, err = sanitizer.New(sanitizer.Config{AttributePrefixes: []string{"data-"}})
	assert.NoError(t, err)
}

func TestNew_MaxFieldSizeDefaulting(t *testing.T) {
	t.Parallel()

	s, err := sanitizer.New(sanitizer.Config{})
	require.NoError(t, err)
	assert.Equal(t, sanitizer.DefaultMaxFieldSize, s.MaxFieldSize())

	s, err = sanitizer.New(sanitizer.Config{MaxFieldSize: 256})
	require.NoError(t, err)
	assert.Equal(t, 256, s.MaxFieldSize())

	s, err = sanitizer.New(sanitizer.Config{MaxFieldSize: -1})
	require.NoError(t, err)
	assert.Equal(t, -1, s.MaxFieldSize())
}

func TestConfig_CopiedOnCompile(t *testing.T) {
	t.Parallel()

	cfg := sanitizer.Config{
		Tags:       []string{"b"},
		Attributes: map[string][]string{"a": {"href"}},
	}
	s, err := sanitizer.New(cfg)
	require.NoError(t, err)

	// Mutating the original after New must not leak into the sanitizer.
	cfg.Tags[0] = "script"
	cfg.Attributes["a"][0] = "onclick"

	got := s.Config()
	assert.Equal(t, []string{"b"}, got.Tags)
	assert.Equal(t, []string{"href"}, got.Attributes["a"])
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := sanitizer.DefaultConfig()
	assert.Contains(t, cfg.Tags, "b")
	assert.Contains(t, cfg.Tags, "a")
	assert.Equal(t, []string{"href", "title"}, cfg.Attributes["a"])
	assert.Equal(t, "noopener noreferrer", cfg.LinkRel)

	s, err := sanitizer.New(cfg)
	require.NoError(t, err)

	out, err := s.SanitizeString("<b>x</b><script>y</script>", sanitizer.Preserving)
	require.NoError(t, err)
	assert.Equal(t, "<b>x</b>", out)
}

func TestStrictConfig(t *testing.T) {
	t.Parallel()

	s, err := sanitizer.New(sanitizer.StrictConfig())
	require.NoError(t, err)

	out, err := s.SanitizeString("<b>x</b>", sanitizer.Preserving)
	require.NoError(t, err)
	assert.Equal(t, "x", out)
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "preserving", sanitizer.Preserving.String())
	assert.Equal(t, "stripped", sanitizer.Stripped.String())
}
