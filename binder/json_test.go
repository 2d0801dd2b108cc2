package binder_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hybridhash/Sheildantic/binder"
)

func TestJSON(t *testing.T) {
	t.Run("valid object", func(t *testing.T) {
		body := `{"name":"John Doe","age":30,"tags":["a","b"]}`
		req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		in, err := binder.JSON(req)
		require.NoError(t, err)

		name, ok := in.Get("name")
		require.True(t, ok)
		assert.Equal(t, "John Doe", name)

		age, ok := in.Get("age")
		require.True(t, ok)
		assert.Equal(t, json.Number("30"), age, "numbers stay textual until coercion")

		tags, ok := in.All("tags")
		require.True(t, ok)
		assert.Equal(t, []any{"a", "b"}, tags)
	})

	t.Run("empty body yields empty input", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(""))

		in, err := binder.JSON(req)
		require.NoError(t, err)
		assert.Empty(t, in)
	})

	t.Run("null body yields empty input", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString("null"))

		in, err := binder.JSON(req)
		require.NoError(t, err)
		assert.Empty(t, in)
	})

	t.Run("top-level array is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`[1,2,3]`))

		_, err := binder.JSON(req)
		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{"name":`))

		_, err := binder.JSON(req)
		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("trailing data is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{"a":1}{"b":2}`))

		_, err := binder.JSON(req)
		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
		assert.Contains(t, err.Error(), "unexpected data after JSON object")
	})
}
