package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaleidos/skame/pkg/config"
	"github.com/kaleidos/skame/pkg/i18n"
	"github.com/kaleidos/skame/pkg/logger"
)

func TestConfig(t *testing.T) {
	t.Run("builtin catalogue only", func(t *testing.T) {
		adapter, err := i18n.Config{}.Adapter()
		require.NoError(t, err)

		translations, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Contains(t, translations, "es")
	})

	t.Run("directory overrides builtin messages", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "es.json", `{"es": {"schema": {"required": "Falta %{field}"}}}`)

		adapter, err := i18n.Config{Dir: dir, Format: "json"}.Adapter()
		require.NoError(t, err)

		tr, err := i18n.NewTranslator(context.Background(), adapter)
		require.NoError(t, err)
		assert.Equal(t, "Falta email", tr.T("es", "schema.required", "field", "email"))
		assert.Equal(t, "UUID no válido", tr.T("es", "validation.uuid"))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := i18n.Config{Dir: t.TempDir(), Format: "toml"}.Adapter()
		assert.ErrorIs(t, err, i18n.ErrUnsupportedFormat)
	})
}

func TestNewFromConfig(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	dir := t.TempDir()
	writeFile(t, dir, "fr.yaml", "fr:\n  schema:\n    required: \"Le champ `%{field}` est obligatoire.\"\n")
	t.Setenv("I18N_DIR", dir)
	t.Setenv("I18N_DEFAULT_LANGUAGE", "es")

	tr, err := i18n.NewFromConfig(context.Background(), logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, "es", tr.DefaultLanguage())
	assert.Equal(t, []string{"en", "es", "fr"}, tr.SupportedLanguages())
	assert.Equal(t, "Le champ `name` est obligatoire.", tr.T("fr", "schema.required", "field", "name"))
}
