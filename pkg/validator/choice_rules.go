package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kaleidos/skame/pkg/schema"
)

// Choices accepts values equal to one of choices.
func Choices[T comparable](choices []T, opts ...schema.Option) schema.Validator {
	r := rule{name: "choices", template: MsgChoices, key: KeyChoices, params: map[string]any{"choices": joinValues(choices)}}
	return check(r, func(v T) bool { return slices.Contains(choices, v) }, opts)
}

// NotIn rejects values equal to one of forbidden.
func NotIn[T comparable](forbidden []T, opts ...schema.Option) schema.Validator {
	r := rule{name: "not_in", template: MsgNotIn, key: KeyNotIn, params: map[string]any{"choices": joinValues(forbidden)}}
	return check(r, func(v T) bool { return !slices.Contains(forbidden, v) }, opts)
}

func joinValues[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
