package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaleidos/skame/pkg/schema"
	"github.com/kaleidos/skame/pkg/validator"
)

func failure(t *testing.T, v schema.Validator, input any) *schema.ValidationError {
	t.Helper()
	_, err := v.Validate(input)
	require.Error(t, err)
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr
}

func TestTypeShortcuts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rule   schema.Validator
		accept []any
		reject []any
	}{
		{"int", validator.Int(), []any{1, int8(1), uint64(1)}, []any{true, 1.0, "1", nil}},
		{"float", validator.Float(), []any{1.5, float32(1.5)}, []any{1, "1.5", nil}},
		{"number", validator.Number(), []any{1, 1.5, uint(3)}, []any{false, "1", nil}},
		{"string", validator.String(), []any{"", "text"}, []any{1, []byte("x"), nil}},
		{"bool", validator.Bool(), []any{true, false}, []any{0, "true", nil}},
		{"list", validator.List(), []any{[]any{}, []string{"a"}, [2]int{}}, []any{"ab", map[string]any{}, nil}},
		{"dict", validator.Dict(), []any{map[string]any{}, map[string]int{"a": 1}}, []any{map[int]any{}, []any{}, nil}},
		{"time", validator.Time(), []any{time.Now()}, []any{"2024-01-01", nil}},
		{"is nil", validator.IsNil(), []any{nil}, []any{0, ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, in := range tt.accept {
				out, err := tt.rule.Validate(in)
				require.NoError(t, err, "input %#v", in)
				assert.Equal(t, in, out)
			}
			for _, in := range tt.reject {
				_, err := tt.rule.Validate(in)
				assert.True(t, schema.IsValidationError(err), "input %#v", in)
			}
		})
	}
}

func TestInt_Message(t *testing.T) {
	verr := failure(t, validator.Int(), true)
	assert.Equal(t, "Not of strict type `int`", verr.Message)
	assert.Equal(t, schema.KindStrictType, verr.Kind)

	verr = failure(t, validator.Int(schema.WithMessage("Must be an integer")), "1")
	assert.Equal(t, "Must be an integer", verr.Message)
}
