package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	sheildantic "github.com/Hybridhash/Sheildantic"
	"github.com/Hybridhash/Sheildantic/binder"
)

// Func is the typed handler called once validation has produced a model.
type Func[T any] func(w http.ResponseWriter, r *http.Request, model *T)

// RenderFunc renders an invalid validation result to the client.
type RenderFunc[T any] func(w http.ResponseWriter, r *http.Request, res *sheildantic.Result[T])

// Option configures Wrap.
type Option[T any] func(*config[T])

type config[T any] struct {
	logger        *slog.Logger
	invalidStatus int
	binderOpts    []binder.Option
	renderInvalid RenderFunc[T]
}

// WithLogger sets the logger used for extraction and pipeline failures.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(c *config[T]) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInvalidStatus overrides the status code rendered for invalid input,
// 422 Unprocessable Entity by default.
func WithInvalidStatus[T any](status int) Option[T] {
	return func(c *config[T]) {
		if status > 0 {
			c.invalidStatus = status
		}
	}
}

// WithBinderOptions passes options through to the input extraction, for
// example binder.Strict().
func WithBinderOptions[T any](opts ...binder.Option) Option[T] {
	return func(c *config[T]) {
		c.binderOpts = append(c.binderOpts, opts...)
	}
}

// WithInvalidRenderer replaces the default JSON rendering of invalid
// results, for example to render an HTML form with inline errors.
func WithInvalidRenderer[T any](fn RenderFunc[T]) Option[T] {
	return func(c *config[T]) {
		if fn != nil {
			c.renderInvalid = fn
		}
	}
}

// Wrap adapts a validator and a typed handler into an http.HandlerFunc.
//
// The request body is extracted, sanitized, and validated; the typed
// handler runs only for valid input. Invalid input renders the full
// validation result as JSON with status 422 so clients can show
// field-level errors. Extraction failures map to 400, content-type
// rejections under binder.Strict() to 415.
//
// Example:
//
//	v, _ := sheildantic.New[CreateUser](sanitizer.DefaultConfig())
//
//	r := chi.NewRouter()
//	r.Post("/users", handler.Wrap(v, func(w http.ResponseWriter, r *http.Request, m *CreateUser) {
//		user := svc.Create(r.Context(), m)
//		writeJSON(w, http.StatusCreated, user)
//	}))
func Wrap[T any](v *sheildantic.Validator[T], h Func[T], opts ...Option[T]) http.HandlerFunc {
	cfg := config[T]{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		invalidStatus: http.StatusUnprocessableEntity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.renderInvalid == nil {
		cfg.renderInvalid = func(w http.ResponseWriter, r *http.Request, res *sheildantic.Result[T]) {
			writeJSON(w, cfg.invalidStatus, res)
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		in, err := binder.FromRequest(r, cfg.binderOpts...)
		if err != nil {
			status, code := extractionStatus(err)
			cfg.logger.DebugContext(r.Context(), "input extraction failed",
				slog.Any("error", err),
				slog.String("component", "handler"),
			)
			writeJSON(w, status, errorBody{Error: errorInfo{Code: code, Message: err.Error()}})
			return
		}

		res, err := v.Validate(r.Context(), in)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			cfg.logger.ErrorContext(r.Context(), "validation pipeline failed",
				slog.Any("error", err),
				slog.String("component", "handler"),
			)
			writeJSON(w, http.StatusInternalServerError, errorBody{
				Error: errorInfo{Code: "internal_error", Message: "internal server error"},
			})
			return
		}

		if !res.IsValid {
			cfg.renderInvalid(w, r, res)
			return
		}

		h(w, r, res.Model)
	}
}

func extractionStatus(err error) (int, string) {
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, "unsupported_media_type"
	case errors.Is(err, binder.ErrMissingContentType):
		return http.StatusUnsupportedMediaType, "missing_content_type"
	case errors.Is(err, binder.ErrInvalidJSON):
		return http.StatusBadRequest, "invalid_json"
	case errors.Is(err, binder.ErrInvalidForm):
		return http.StatusBadRequest, "invalid_form"
	default:
		return http.StatusBadRequest, "invalid_request"
	}
}
