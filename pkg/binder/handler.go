package binder

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/kaleidos/skame/pkg/i18n"
	"github.com/kaleidos/skame/pkg/logger"
	"github.com/kaleidos/skame/pkg/schema"
)

// Translation keys of the response messages.
const (
	KeyInvalidBody      = "binder.invalid_body"
	KeyValidationFailed = "binder.validation_failed"
)

const (
	MsgInvalidBody      = "Invalid request body"
	MsgValidationFailed = "Validation failed"
)

// HandlerFunc receives the cleaned data of an accepted request.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, cleaned any)

// ErrorResponse is the body written for rejected requests.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

type HandlerOption func(*handler)

// WithTranslator translates response messages and validation errors into
// the request language.
func WithTranslator(t *i18n.Translator) HandlerOption {
	return func(h *handler) { h.translator = t }
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithBindOptions passes options to Bind.
func WithBindOptions(opts ...Option) HandlerOption {
	return func(h *handler) { h.bindOpts = append(h.bindOpts, opts...) }
}

// WithDefaultLanguage sets the language used when negotiation finds no
// match. The translator's default is used otherwise.
func WithDefaultLanguage(lang string) HandlerOption {
	return func(h *handler) { h.defaultLang = lang }
}

// WithValidationStatus changes the status of validation failures (422 by default).
func WithValidationStatus(code int) HandlerOption {
	return func(h *handler) {
		if code >= 400 && code < 600 {
			h.validationStatus = code
		}
	}
}

type handler struct {
	validator        schema.Validator
	next             HandlerFunc
	translator       *i18n.Translator
	logger           *slog.Logger
	bindOpts         []Option
	defaultLang      string
	validationStatus int
}

// Handler binds each request with v and calls next with the cleaned data.
// Validation failures get WithValidationStatus (422) and an ErrorResponse
// with the error tree in details; malformed bodies get 400, 413 or 415;
// other errors are logged and answered with 500.
func Handler(v schema.Validator, next HandlerFunc, opts ...HandlerOption) http.Handler {
	h := &handler{
		validator:        v,
		next:             next,
		logger:           logger.Discard(),
		validationStatus: http.StatusUnprocessableEntity,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cleaned, errs, err := Bind(r, h.validator, h.bindOpts...)
	switch {
	case err != nil:
		h.fail(w, r, err)
	case errs != nil:
		h.reject(w, r, errs)
	default:
		h.next(w, r, cleaned)
	}
}

func (h *handler) reject(w http.ResponseWriter, r *http.Request, errs schema.ValidationErrors) {
	ctx := r.Context()
	lang := h.language(r)

	h.logger.InfoContext(ctx, "request rejected",
		logger.Component("binder"),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.Language(lang),
		logger.ValidationErrors(errs),
	)

	if h.translator != nil {
		errs = h.translator.Translate(lang, errs)
	}
	h.write(w, lang, h.validationStatus, ErrorResponse{
		Error:   h.message(lang, KeyValidationFailed, MsgValidationFailed),
		Details: errs.Messages(),
	})
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	lang := h.language(r)

	status, ok := statusFor(err)
	if !ok {
		h.logger.ErrorContext(ctx, "request binding failed",
			logger.Component("binder"),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
		h.write(w, lang, http.StatusInternalServerError, ErrorResponse{
			Error: http.StatusText(http.StatusInternalServerError),
		})
		return
	}

	h.logger.DebugContext(ctx, "malformed request",
		logger.Component("binder"),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.Error(err),
	)
	h.write(w, lang, status, ErrorResponse{
		Error: h.message(lang, KeyInvalidBody, MsgInvalidBody),
	})
}

func statusFor(err error) (int, bool) {
	switch {
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, true
	case errors.Is(err, ErrUnsupportedMediaType), errors.Is(err, ErrMissingContentType):
		return http.StatusUnsupportedMediaType, true
	case errors.Is(err, ErrFailedToParseJSON), errors.Is(err, ErrFailedToParseForm), errors.Is(err, ErrFailedToParsePath):
		return http.StatusBadRequest, true
	default:
		return 0, false
	}
}

// language prefers a locale stored by i18n middleware over Accept-Language.
func (h *handler) language(r *http.Request) string {
	if lang, ok := i18n.LocaleFrom(r.Context()); ok {
		return lang
	}

	fallback := h.defaultLang
	if h.translator == nil {
		if fallback == "" {
			fallback = i18n.DefaultLanguage
		}
		return fallback
	}
	if fallback == "" {
		fallback = h.translator.DefaultLanguage()
	}
	return i18n.ParseAcceptLanguage(r.Header.Get("Accept-Language"), h.translator.SupportedLanguages(), fallback)
}

func (h *handler) message(lang, key, fallback string) string {
	if h.translator == nil {
		return fallback
	}
	return h.translator.Td(lang, key, fallback)
}

func (h *handler) write(w http.ResponseWriter, lang string, status int, body ErrorResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if h.translator != nil {
		w.Header().Set("Content-Language", lang)
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to write response", logger.Component("binder"), logger.Error(err))
	}
}
