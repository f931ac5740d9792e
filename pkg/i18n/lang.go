package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// DefaultLanguage is used when no language could be negotiated.
const DefaultLanguage = "en"

// Longer Accept-Language headers are truncated before parsing.
const maxAcceptLanguageLength = 4096

type langWithQ struct {
	lang string
	q    float64
}

// parseAcceptLanguageHeader returns the languages of an Accept-Language
// header ordered by descending quality. Malformed q values count as 1.
func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ
	for part := range strings.SplitSeq(header, ",") {
		lang, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang == "" {
			continue
		}

		q := 1.0
		if qPart, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if val, err := strconv.ParseFloat(qPart, 64); err == nil && val >= 0 && val <= 1 {
				q = val
			}
		}
		languages = append(languages, langWithQ{lang: lang, q: q})
	}

	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})
	return languages
}

// ParseAcceptLanguage picks the best supported language for header. Exact
// matches win over base language matches (en-US falls back to en); if
// nothing matches, defaultLang is returned.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}

	supported := normalizeLangs(supportedLangs)
	languages := parseAcceptLanguageHeader(header)

	for _, lq := range languages {
		if slices.Contains(supported, lq.lang) {
			return lq.lang
		}
	}
	for _, lq := range languages {
		if base, _, ok := strings.Cut(lq.lang, "-"); ok && slices.Contains(supported, base) {
			return base
		}
	}
	return defaultLang
}

func normalizeLangs(langs []string) []string {
	normalized := make([]string, len(langs))
	for i, lang := range langs {
		normalized[i] = strings.ToLower(lang)
	}
	return normalized
}
