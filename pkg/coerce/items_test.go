package coerce_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hybridhash/Sheildantic/pkg/coerce"
	"github.com/Hybridhash/Sheildantic/pkg/schema"
)

func TestItems_Int(t *testing.T) {
	t.Parallel()

	t.Run("normalizes textual integers", func(t *testing.T) {
		t.Parallel()

		out, bad := coerce.Items([]any{"2", " 3 ", 4, json.Number("5")}, schema.KindInt)
		require.Empty(t, bad)
		assert.Equal(t, []any{int64(2), int64(3), 4, int64(5)}, out)
	})

	t.Run("collects every offending index", func(t *testing.T) {
		t.Parallel()

		_, bad := coerce.Items([]any{"1", "x", "2", "y", nil}, schema.KindInt)
		require.Len(t, bad, 3)
		assert.Equal(t, 1, bad[0].Index)
		assert.Equal(t, "x", bad[0].Value)
		assert.Equal(t, 3, bad[1].Index)
		assert.Equal(t, 4, bad[2].Index)
		assert.Nil(t, bad[2].Value)
	})

	t.Run("integral floats convert", func(t *testing.T) {
		t.Parallel()

		out, bad := coerce.Items([]any{2.0, float32(3)}, schema.KindInt)
		require.Empty(t, bad)
		assert.Equal(t, int64(2), out[0])
		assert.Equal(t, int64(3), out[1])
	})

	t.Run("fractional values fail", func(t *testing.T) {
		t.Parallel()

		_, bad := coerce.Items([]any{2.5, "2.5", json.Number("2.5")}, schema.KindInt)
		assert.Len(t, bad, 3)
	})

	t.Run("booleans are not integers", func(t *testing.T) {
		t.Parallel()

		_, bad := coerce.Items([]any{true}, schema.KindInt)
		assert.Len(t, bad, 1)
	})
}

func TestItems_Uint(t *testing.T) {
	t.Parallel()

	out, bad := coerce.Items([]any{"2", 3, uint(4)}, schema.KindUint)
	require.Empty(t, bad)
	assert.Equal(t, []any{uint64(2), 3, uint(4)}, out)

	_, bad = coerce.Items([]any{"-2", -3}, schema.KindUint)
	assert.Len(t, bad, 2)
}

func TestItems_Float(t *testing.T) {
	t.Parallel()

	out, bad := coerce.Items([]any{"2.5", 3, 4.25, json.Number("0.5")}, schema.KindFloat)
	require.Empty(t, bad)
	assert.Equal(t, []any{2.5, 3, 4.25, 0.5}, out)

	_, bad = coerce.Items([]any{"abc"}, schema.KindFloat)
	assert.Len(t, bad, 1)
}

func TestItems_NonNumericKindsPassThrough(t *testing.T) {
	t.Parallel()

	values := []any{"<b>x</b>", nil, 42}
	out, bad := coerce.Items(values, schema.KindString)
	assert.Empty(t, bad)
	assert.Equal(t, values, out)
}
