package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"github.com/kaleidos/skame/pkg/logger"
	"github.com/kaleidos/skame/pkg/schema"
)

// Translator looks up messages in per-language catalogues. It is safe for
// concurrent use.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	adapter        TranslationAdapter
}

// NewTranslator loads the catalogues from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload reads the catalogues from the adapter again and swaps them in.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := validateTranslations(translations); err != nil {
		return err
	}

	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()

	if len(translations) == 0 {
		t.logger.WarnContext(ctx, "no translations loaded", logger.Component("i18n"))
		return nil
	}
	t.logger.InfoContext(ctx, "translations loaded", logger.Component("i18n"), slog.Any("languages", t.SupportedLanguages()))
	return nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, messages := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if messages == nil {
			return fmt.Errorf("%w: nil catalogue for language %q", ErrInvalidTranslations, lang)
		}
	}
	return nil
}

// DefaultLanguage returns the language used when a request names none.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the sorted language codes that have a catalogue.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.translations))
}

// HasTranslation reports whether key resolves to a string in lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.lookup(lang, key)
	return ok
}

// lookup must be called with t.mu held.
func (t *Translator) lookup(lang, key string) (string, bool) {
	catalogue, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	if val, ok := catalogue[key]; ok {
		s, ok := asString(val)
		return s, ok
	}

	current := catalogue
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := asString(val)
			return s, ok
		}
		if current, ok = asMap(val); !ok {
			return "", false
		}
	}
	return "", false
}

func asString(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

func asMap(val any) (map[string]any, bool) {
	switch v := val.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, item := range v {
			if ks, ok := k.(string); ok {
				m[ks] = item
			}
		}
		return m, true
	default:
		return nil, false
	}
}

// T translates key for lang, substituting %{name} placeholders from args
// given as name, value pairs. A missing translation falls back to the key
// itself, or to "" when WithFallbackToKey(false) is set.
//
//	// "welcome": "Hello, %{name}!"
//	translator.T("en", "welcome", "name", "John") // "Hello, John!"
func (t *Translator) T(lang, key string, args ...string) string {
	fallback := ""
	if t.fallbackToKey {
		fallback = key
	}
	return t.Format(lang, key, fallback, pairs(args))
}

// Td is T with an explicit fallback template.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	return t.Format(lang, key, defaultValue, pairs(args))
}

// Tc translates key using the language stored in ctx by SetLocale.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Format renders the translation of key in lang, or template when there is
// none, with params substituted.
func (t *Translator) Format(lang, key, template string, params map[string]any) string {
	t.mu.RLock()
	msg, ok := t.lookup(lang, key)
	t.mu.RUnlock()

	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", logger.Component("i18n"), logger.Language(lang), slog.String("key", key))
		}
		msg = template
	}
	return schema.Interpolate(msg, params)
}

// Formatter returns a schema.Formatter that renders messages in lang.
func (t *Translator) Formatter(lang string) schema.Formatter {
	return schema.FormatterFunc(func(key, template string, params map[string]any) string {
		return t.Format(lang, key, template, params)
	})
}

// Translate returns a copy of errs with every message rendered in lang.
func (t *Translator) Translate(lang string, errs schema.ValidationErrors) schema.ValidationErrors {
	return errs.Translate(t.Formatter(lang))
}

// ExportJSON returns the catalogue of lang as JSON, for client-side use.
func (t *Translator) ExportJSON(lang string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	catalogue, ok := t.translations[lang]
	if !ok {
		return "", &ErrLanguageNotSupported{Lang: lang}
	}

	data, err := json.Marshal(catalogue)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(data), nil
}

// pairs turns name, value, name, value... into a map. A trailing name
// without a value is ignored.
func pairs(args []string) map[string]any {
	if len(args) < 2 {
		return nil
	}
	params := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}
