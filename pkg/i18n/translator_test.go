package i18n_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaleidos/skame/pkg/i18n"
	"github.com/kaleidos/skame/pkg/schema"
	"github.com/kaleidos/skame/pkg/validator"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"welcome": "Hello, %{name}!",
			"user": map[string]any{
				"profile": map[string]any{"title": "Profile of %{name}"},
			},
			"Passwords do not match": "Passwords do not match",
		},
		"es": {
			"welcome": "¡Hola, %{name}!",
			"user": map[string]any{
				"profile": map[string]any{"title": "Perfil de %{name}"},
			},
			"Passwords do not match": "Las contraseñas no coinciden",
			"count":                  42,
		},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Run("rejects nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("rejects empty language codes", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"": {"a": "b"}}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrInvalidTranslations)
	})

	t.Run("rejects nil catalogues", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"en": nil}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrInvalidTranslations)
	})

	t.Run("propagates adapter errors", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), i18n.NewDirectoryAdapter(nil, t.TempDir()))
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("defaults", func(t *testing.T) {
		tr := newTestTranslator(t)
		assert.Equal(t, i18n.DefaultLanguage, tr.DefaultLanguage())
		assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
	})

	t.Run("default language option", func(t *testing.T) {
		tr := newTestTranslator(t, i18n.WithDefaultLanguage("es"), i18n.WithDefaultLanguage(""))
		assert.Equal(t, "es", tr.DefaultLanguage())
	})
}

func TestTranslator_T(t *testing.T) {
	tr := newTestTranslator(t)

	t.Run("substitutes named params", func(t *testing.T) {
		assert.Equal(t, "Hello, John!", tr.T("en", "welcome", "name", "John"))
		assert.Equal(t, "¡Hola, Juan!", tr.T("es", "welcome", "name", "Juan"))
	})

	t.Run("resolves dotted keys", func(t *testing.T) {
		assert.Equal(t, "Perfil de Ana", tr.T("es", "user.profile.title", "name", "Ana"))
	})

	t.Run("resolves literal keys containing dots", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"en": {"Value must be 1.5": "one and a half"}}}
		literal, err := i18n.NewTranslator(context.Background(), adapter)
		require.NoError(t, err)
		assert.Equal(t, "one and a half", literal.T("en", "Value must be 1.5"))
	})

	t.Run("message text keys", func(t *testing.T) {
		assert.Equal(t, "Las contraseñas no coinciden", tr.T("es", "Passwords do not match"))
	})

	t.Run("missing keys fall back to the key", func(t *testing.T) {
		assert.Equal(t, "missing.key", tr.T("es", "missing.key"))
		assert.Equal(t, "welcome", tr.T("fr", "welcome"))
		assert.Equal(t, "user.profile", tr.T("en", "user.profile"))
	})

	t.Run("non-string values are not translations", func(t *testing.T) {
		assert.False(t, tr.HasTranslation("es", "count"))
		assert.True(t, tr.HasTranslation("es", "welcome"))
		assert.False(t, tr.HasTranslation("fr", "welcome"))
	})

	t.Run("fallback to key can be disabled", func(t *testing.T) {
		strict := newTestTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, strict.T("en", "missing.key"))
	})

	t.Run("odd args ignore the trailing name", func(t *testing.T) {
		assert.Equal(t, "Hello, %{name}!", tr.T("en", "welcome", "name"))
	})
}

func TestTranslator_Td(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "Hello, Eve!", tr.Td("en", "welcome", "unused", "name", "Eve"))
	assert.Equal(t, "Default for Eve", tr.Td("en", "missing", "Default for %{name}", "name", "Eve"))
}

func TestTranslator_Tc(t *testing.T) {
	tr := newTestTranslator(t)

	ctx := i18n.SetLocale(context.Background(), "es")
	assert.Equal(t, "¡Hola, Ana!", tr.Tc(ctx, "welcome", "name", "Ana"))
	assert.Equal(t, "Hello, Ana!", tr.Tc(context.Background(), "welcome", "name", "Ana"))
}

func TestTranslator_MissingLogging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	tr := newTestTranslator(t, i18n.WithLogger(log), i18n.WithMissingTranslationsLogging(true))
	buf.Reset()

	tr.T("es", "missing.key")
	assert.Contains(t, buf.String(), "translation not found")
	assert.Contains(t, buf.String(), "missing.key")

	buf.Reset()
	tr.T("es", "welcome", "name", "Ana")
	assert.Empty(t, buf.String())
}

func TestTranslator_Translate(t *testing.T) {
	tr, err := i18n.NewTranslator(context.Background(), i18n.MultiAdapter{
		i18n.Builtin(),
		&i18n.MapAdapter{Data: map[string]map[string]any{
			"es": {"Passwords do not match": "Las contraseñas no coinciden"},
		}},
	})
	require.NoError(t, err)

	signup := schema.Map(schema.Fields{
		schema.Required("name"):  validator.NotEmpty(),
		schema.Required("email"): validator.Email(),
		schema.Required("age"):   schema.Type[int](),
		schema.Required("password"): schema.PredicateOf(func(string) bool { return false },
			schema.WithMessage("Passwords do not match")),
		schema.Optional("nickname"): validator.MinLength(3),
	})

	_, err = signup.Validate(map[string]any{
		"email":    "not-an-email",
		"age":      "20",
		"password": "secret",
		"nickname": "ab",
	})
	errs := schema.ExtractValidationErrors(err)
	require.NotNil(t, errs)

	translated := tr.Translate("es", errs)
	assert.Equal(t, "El campo `name` es obligatorio.", translated.Get("name"))
	assert.Equal(t, "Formato de email no válido", translated.Get("email"))
	assert.Equal(t, "No es de tipo `int`", translated.Get("age"))
	assert.Equal(t, "Las contraseñas no coinciden", translated.Get("password"))
	assert.Equal(t, "La longitud debe ser al menos 3", translated.Get("nickname"))

	t.Run("original errors keep the default language", func(t *testing.T) {
		assert.Equal(t, "Field `name` is required.", errs.Get("name"))
	})

	t.Run("unknown languages keep default messages", func(t *testing.T) {
		assert.Equal(t, errs.Messages(), tr.Translate("fr", errs).Messages())
	})
}

func TestTranslator_TranslateAnyOf(t *testing.T) {
	tr, err := i18n.NewTranslator(context.Background(), i18n.Builtin())
	require.NoError(t, err)

	v := schema.Map(schema.Fields{
		schema.Required("n"): schema.Or(schema.Type[int](), schema.Type[string]()),
	})
	_, err = v.Validate(map[string]any{"n": 1.5})
	errs := schema.ExtractValidationErrors(err)
	require.NotNil(t, errs)

	translated := tr.Translate("es", errs)
	assert.Equal(t, "Todas las condiciones fallaron: No es de tipo `int`, No es de tipo `string`", translated.Get("n"))
	assert.Equal(t, "All conditions failed: Not of type `int`, Not of type `string`", tr.Translate("en", errs).Get("n"))
}

func TestTranslator_Formatter(t *testing.T) {
	tr, err := i18n.NewTranslator(context.Background(), i18n.Builtin())
	require.NoError(t, err)

	v := validator.Between(1, 10, schema.WithFormatter(tr.Formatter("es")))
	_, err = v.Validate(11)
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "El valor debe estar entre 1 y 10", verr.Message)
}

func TestTranslator_ExportJSON(t *testing.T) {
	tr := newTestTranslator(t)

	data, err := tr.ExportJSON("en")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"welcome": "Hello, %{name}!",
		"user": {"profile": {"title": "Profile of %{name}"}},
		"Passwords do not match": "Passwords do not match"
	}`, data)

	_, err = tr.ExportJSON("fr")
	var notSupported *i18n.ErrLanguageNotSupported
	require.ErrorAs(t, err, &notSupported)
	assert.Equal(t, "fr", notSupported.Lang)
}

func TestTranslator_Reload(t *testing.T) {
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"en": {"greeting": "Hello"}}}
	tr, err := i18n.NewTranslator(context.Background(), adapter)
	require.NoError(t, err)
	assert.Equal(t, "Hello", tr.T("en", "greeting"))

	adapter.Data = map[string]map[string]any{"en": {"greeting": "Hi"}, "es": {"greeting": "Hola"}}
	require.NoError(t, tr.Reload(context.Background()))
	assert.Equal(t, "Hi", tr.T("en", "greeting"))
	assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
}
