package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sheildantic "github.com/Hybridhash/Sheildantic"
	"github.com/Hybridhash/Sheildantic/binder"
	"github.com/Hybridhash/Sheildantic/handler"
	"github.com/Hybridhash/Sheildantic/pkg/sanitizer"
)

type createUser struct {
	Name string `json:"name" validate:"required"`
	Bio  string `json:"bio"`
	Age  int    `json:"age" validate:"omitempty,gte=18"`
}

type invalidBody struct {
	IsValid       bool                      `json:"is_valid"`
	Errors        []sheildantic.ErrorDetail `json:"errors"`
	SanitizedData map[string]any            `json:"sanitized_data"`
}

func newRouter(t *testing.T, opts ...handler.Option[createUser]) http.Handler {
	t.Helper()

	v, err := sheildantic.New[createUser](sanitizer.DefaultConfig())
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Post("/users", handler.Wrap(v, func(w http.ResponseWriter, r *http.Request, m *createUser) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		assert.NoError(t, json.NewEncoder(w).Encode(m))
	}, opts...))
	return r
}

func TestWrap_ValidJSON(t *testing.T) {
	router := newRouter(t)

	body := `{"name":"Alice","bio":"<b>hi</b><script>x</script>","age":30}`
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var m createUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.Equal(t, "Alice", m.Name)
	assert.Equal(t, "hi", m.Bio, "the handler receives stripped text")
	assert.Equal(t, 30, m.Age)
}

func TestWrap_ValidForm(t *testing.T) {
	router := newRouter(t)

	form := url.Values{"name": {"Bob"}, "age": {"25"}}
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var m createUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.Equal(t, "Bob", m.Name)
	assert.Equal(t, 25, m.Age)
}

func TestWrap_InvalidInput(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"bio":"hello","age":12}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body invalidBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.IsValid)
	assert.Equal(t, "hello", body.SanitizedData["bio"], "sanitized data is returned for redisplay")

	fields := make([]string, 0, len(body.Errors))
	for _, d := range body.Errors {
		fields = append(fields, d.Field)
	}
	assert.Contains(t, fields, "name")
}

func TestWrap_MalformedJSON(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid_json", body.Error.Code)
	assert.NotEmpty(t, body.Error.Message)
}

func TestWrap_LaxUnknownMediaType(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("plain text"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code,
		"unknown media types validate as empty input by default")

	var body invalidBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "name", body.Errors[0].Field)
}

func TestWrap_StrictMediaType(t *testing.T) {
	router := newRouter(t, handler.WithBinderOptions[createUser](binder.Strict()))

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("plain text"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unsupported_media_type", body.Error.Code)
}

func TestWrap_InvalidStatusOverride(t *testing.T) {
	router := newRouter(t, handler.WithInvalidStatus[createUser](http.StatusBadRequest))

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWrap_CustomInvalidRenderer(t *testing.T) {
	router := newRouter(t, handler.WithInvalidRenderer[createUser](
		func(w http.ResponseWriter, r *http.Request, res *sheildantic.Result[createUser]) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			for _, d := range res.Errors {
				_, _ = w.Write([]byte(d.Field + ": " + d.Message + "\n"))
			}
		},
	))

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "name: field is required")
}

func TestWrap_Cancellation(t *testing.T) {
	router := newRouter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Zero(t, rec.Body.Len(), "nothing is written for a gone client")
}

func TestWrap_LogsExtractionFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	router := newRouter(t, handler.WithLogger[createUser](logger))

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, buf.String(), "input extraction failed")
	assert.Contains(t, buf.String(), "component=handler")
}
