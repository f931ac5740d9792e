package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaleidos/skame/pkg/logger"
	"github.com/kaleidos/skame/pkg/schema"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, slog.Any("error", err), logger.Error(err))
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
}

func TestValidationErrors(t *testing.T) {
	t.Run("flattens nested fields", func(t *testing.T) {
		errs := schema.ValidationErrors{
			"name": &schema.ValidationError{Message: "Empty value"},
			"amount": schema.ValidationErrors{
				"currency": &schema.ValidationError{Message: "Not of type `string`"},
			},
		}

		attr := logger.ValidationErrors(errs)
		assert.Equal(t, "validation", attr.Key)
		assert.Equal(t, []slog.Attr{
			slog.String("amount.currency", "Not of type `string`"),
			slog.String("name", "Empty value"),
		}, attr.Value.Group())
	})

	t.Run("empty errors yield empty attr", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.ValidationErrors(nil))
	})
}

func TestSimpleAttrs(t *testing.T) {
	assert.Equal(t, slog.String("field", "email"), logger.Field("email"))
	assert.Equal(t, slog.String("lang", "fr"), logger.Language("fr"))
	assert.Equal(t, slog.String("component", "i18n"), logger.Component("i18n"))
	assert.Equal(t, slog.String("method", "POST"), logger.Method("POST"))
	assert.Equal(t, slog.String("path", "/signup"), logger.Path("/signup"))

	group := logger.Group("req", logger.Method("GET"))
	assert.Equal(t, "req", group.Key)
	assert.Len(t, group.Value.Group(), 1)
}
