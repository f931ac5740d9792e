package i18n

import "net/http"

// LangExtractor returns the language requested by r, or "" if none.
type LangExtractor func(r *http.Request) string

// Middleware stores the language found by extr in the request context (see
// GetLocale). A nil extractor means DefaultLangExtractor().
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

// Middleware is Middleware with an extractor restricted to the languages
// the translator has catalogues for. Unmatched requests get the
// translator's default language.
func (t *Translator) Middleware(opts ...ExtractorOption) func(http.Handler) http.Handler {
	opts = append([]ExtractorOption{WithSupportedLanguages(t.SupportedLanguages()...)}, opts...)
	extr := DefaultLangExtractor(opts...)

	return Middleware(func(r *http.Request) string {
		if lang := extr(r); lang != "" {
			return lang
		}
		return t.DefaultLanguage()
	})
}
