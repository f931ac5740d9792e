package sanitizer_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaleidos/skame/pkg/sanitizer"
	"github.com/kaleidos/skame/pkg/schema"
)

func TestToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected int
	}{
		{"int", 28, 28},
		{"string", "28", 28},
		{"padded string", " 28\n", 28},
		{"negative string", "-7", -7},
		{"int64", int64(28), 28},
		{"uint8", uint8(28), 28},
		{"whole float", 28.0, 28},
		{"json number", json.Number("28"), 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := sanitizer.ToInt(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	t.Run("rejects invalid input as conversion failure", func(t *testing.T) {
		for _, in := range []any{"skame", "", "1.5", 28.5, true, nil, []int{1}, json.Number("1e3")} {
			_, err := sanitizer.ToInt(in)
			require.Error(t, err, "input %#v", in)
			assert.True(t, schema.IsConversionFailure(err), "input %#v", in)
		}
	})

	t.Run("string errors come from strconv", func(t *testing.T) {
		_, err := sanitizer.ToInt("abc")
		var numErr *strconv.NumError
		assert.True(t, errors.As(err, &numErr))
	})
}

func TestToFloat(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		input    any
		expected float64
	}{
		{"1.5", 1.5},
		{" 2 ", 2},
		{3, 3},
		{float32(0.5), 0.5},
		{json.Number("4.25"), 4.25},
	} {
		out, err := sanitizer.ToFloat(tt.input)
		require.NoError(t, err, "input %#v", tt.input)
		assert.Equal(t, tt.expected, out)
	}

	for _, in := range []any{"one", false, nil, map[string]any{}} {
		_, err := sanitizer.ToFloat(in)
		assert.True(t, schema.IsConversionFailure(err), "input %#v", in)
	}
}

func TestToBool(t *testing.T) {
	t.Parallel()

	for in, expected := range map[any]bool{
		true:    true,
		false:   false,
		"true":  true,
		"1":     true,
		"on":    true,
		"ON":    true,
		"false": false,
		"0":     false,
		" f ":   false,
	} {
		out, err := sanitizer.ToBool(in)
		require.NoError(t, err, "input %#v", in)
		assert.Equal(t, expected, out, "input %#v", in)
	}

	for _, in := range []any{"yes", 1, nil} {
		_, err := sanitizer.ToBool(in)
		assert.True(t, schema.IsConversionFailure(err), "input %#v", in)
	}
}

func TestToString(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		input    any
		expected string
	}{
		{"text", "text"},
		{[]byte("bytes"), "bytes"},
		{42, "42"},
		{uint16(7), "7"},
		{1.5, "1.5"},
		{true, "true"},
		{time.Second, "1s"},
	} {
		out, err := sanitizer.ToString(tt.input)
		require.NoError(t, err, "input %#v", tt.input)
		assert.Equal(t, tt.expected, out)
	}

	for _, in := range []any{nil, []int{1}, map[string]any{}} {
		_, err := sanitizer.ToString(in)
		assert.True(t, schema.IsConversionFailure(err), "input %#v", in)
	}
}

func TestToTime(t *testing.T) {
	t.Parallel()

	step := sanitizer.ToTime(time.DateOnly)

	out, err := step("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), out)

	now := time.Now()
	out, err = step(now)
	require.NoError(t, err)
	assert.Equal(t, now, out)

	_, err = step("2023-02-29")
	assert.True(t, schema.IsConversionFailure(err))

	_, err = step(20240229)
	assert.True(t, schema.IsConversionFailure(err))
}

func TestConversionInPipe(t *testing.T) {
	t.Parallel()

	age := schema.PipeWith([]schema.Step{sanitizer.ToInt}, schema.WithMessage("User age must be an integer"))

	out, err := age.Validate("28")
	require.NoError(t, err)
	assert.Equal(t, 28, out)

	_, err = age.Validate("skame")
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "User age must be an integer", verr.Message)
}
