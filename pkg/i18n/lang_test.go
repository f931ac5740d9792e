package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaleidos/skame/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	supported := []string{"en", "es", "pt-BR"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact match", "es", "es"},
		{"case insensitive", "PT-br", "pt-br"},
		{"quality ordering", "fr;q=0.9, es;q=0.8, en;q=0.1", "es"},
		{"base language fallback", "es-MX, fr", "es"},
		{"exact match beats base match", "en-GB, pt-BR;q=0.5", "pt-br"},
		{"malformed quality counts as 1", "fr;q=0.9, es;q=abc", "es"},
		{"out of range quality counts as 1", "en;q=0.5, es;q=7", "es"},
		{"no match", "fr, de", "en"},
		{"blank entries are ignored", " , ,es", "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header, supported, "en"))
		})
	}

	t.Run("no supported languages", func(t *testing.T) {
		assert.Equal(t, "en", i18n.ParseAcceptLanguage("es", nil, "en"))
	})

	t.Run("oversized header is truncated", func(t *testing.T) {
		header := strings.Repeat("xx-yy;q=0.1,", 500) + "es"
		assert.Equal(t, "en", i18n.ParseAcceptLanguage(header, supported, "en"))
	})
}
