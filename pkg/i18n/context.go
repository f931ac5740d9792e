package i18n

import "context"

type localeContextKey struct{}

// SetLocale stores the language in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the language stored by SetLocale, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}

// LocaleFrom returns the language stored by SetLocale and whether one was stored.
func LocaleFrom(ctx context.Context) (string, bool) {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale, locale != ""
}
