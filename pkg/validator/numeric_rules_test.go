package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaleidos/skame/pkg/validator"
)

func TestPositive(t *testing.T) {
	t.Parallel()

	_, err := validator.Positive[int]().Validate(1)
	assert.NoError(t, err)

	verr := failure(t, validator.Positive[int](), 0)
	assert.Equal(t, "Value must be a positive number", verr.Message)
	assert.Equal(t, validator.KeyPositive, verr.TranslationKey)

	t.Run("or zero", func(t *testing.T) {
		_, err := validator.PositiveOrZero[float64]().Validate(0.0)
		assert.NoError(t, err)

		verr := failure(t, validator.PositiveOrZero[float64](), -0.5)
		assert.Equal(t, "Value must be a positive number or 0", verr.Message)
	})

	t.Run("rejects other numeric types", func(t *testing.T) {
		failure(t, validator.Positive[int](), int64(5))
		failure(t, validator.Positive[int](), "5")
	})
}

func TestBounds(t *testing.T) {
	t.Parallel()

	t.Run("min value", func(t *testing.T) {
		_, err := validator.MinValue(18).Validate(18)
		assert.NoError(t, err)

		verr := failure(t, validator.MinValue(18), 17)
		assert.Equal(t, "Value must be greater or equal than 18", verr.Message)
		assert.Equal(t, 18, verr.TranslationValues["min"])
	})

	t.Run("max value", func(t *testing.T) {
		_, err := validator.MaxValue(99.5).Validate(99.5)
		assert.NoError(t, err)

		verr := failure(t, validator.MaxValue(99.5), 100.0)
		assert.Equal(t, "Value must be lower or equal than 99.5", verr.Message)
	})

	t.Run("between is inclusive", func(t *testing.T) {
		v := validator.Between(1, 10)
		for _, in := range []int{1, 5, 10} {
			_, err := v.Validate(in)
			assert.NoError(t, err)
		}
		verr := failure(t, v, 11)
		assert.Equal(t, "Value must be between 1 and 10", verr.Message)
		failure(t, v, 0)
	})
}
