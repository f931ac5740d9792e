package i18n

import (
	"net/http"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// RFC 5646 recommends 35 characters at most.
const maxLangCodeLength = 35

type langValidator struct {
	supportedLangs []string
}

func newLangValidator(supportedLangs []string) *langValidator {
	return &langValidator{supportedLangs: normalizeLangs(supportedLangs)}
}

// validate returns the normalized code, its base language when only that is
// supported, or "" for malformed and unsupported codes.
func (v *langValidator) validate(lang string) string {
	if lang == "" || len(lang) > maxLangCodeLength {
		return ""
	}
	if _, err := language.Parse(lang); err != nil {
		return ""
	}

	normalized := strings.ToLower(lang)
	if len(v.supportedLangs) == 0 || slices.Contains(v.supportedLangs, normalized) {
		return normalized
	}
	if base, _, ok := strings.Cut(normalized, "-"); ok && slices.Contains(v.supportedLangs, base) {
		return base
	}
	return ""
}

// ExtractorConfig holds the sources DefaultLangExtractor reads.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

type ExtractorOption func(*ExtractorConfig)

func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages restricts the extractor to langs.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order, the "lang" cookie, the "lang" query
// parameter, the Language header and the Accept-Language header. Values are
// checked against the supported languages when any are configured.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	config := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(config)
	}

	validator := newLangValidator(config.SupportedLangs)

	return func(r *http.Request) string {
		if config.CookieName != "" {
			if cookie, err := r.Cookie(config.CookieName); err == nil {
				if lang := validator.validate(strings.TrimSpace(cookie.Value)); lang != "" {
					return lang
				}
			}
		}

		if config.QueryParamName != "" {
			if lang := validator.validate(strings.TrimSpace(r.URL.Query().Get(config.QueryParamName))); lang != "" {
				return lang
			}
		}

		if lang := validator.validate(strings.TrimSpace(r.Header.Get("Language"))); lang != "" {
			return lang
		}

		acceptLang := r.Header.Get("Accept-Language")
		if acceptLang == "" {
			return ""
		}
		if len(config.SupportedLangs) > 0 {
			return ParseAcceptLanguage(acceptLang, config.SupportedLangs, "")
		}
		if langs := parseAcceptLanguageHeader(acceptLang); len(langs) > 0 {
			return langs[0].lang
		}
		return ""
	}
}
