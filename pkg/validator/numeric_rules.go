package validator

import "github.com/kaleidos/skame/pkg/schema"

// Positive accepts values greater than zero.
func Positive[T Numeric](opts ...schema.Option) schema.Validator {
	r := rule{name: "positive", template: MsgPositive, key: KeyPositive}
	return check(r, func(v T) bool { return v > 0 }, opts)
}

// PositiveOrZero accepts values greater than or equal to zero.
func PositiveOrZero[T Numeric](opts ...schema.Option) schema.Validator {
	r := rule{name: "positive_or_zero", template: MsgPositiveOrZero, key: KeyPositiveOrZero}
	return check(r, func(v T) bool { return v >= 0 }, opts)
}

func MinValue[T Numeric](min T, opts ...schema.Option) schema.Validator {
	r := rule{name: "min_value", template: MsgMinValue, key: KeyMinValue, params: map[string]any{"min": min}}
	return check(r, func(v T) bool { return v >= min }, opts)
}

func MaxValue[T Numeric](max T, opts ...schema.Option) schema.Validator {
	r := rule{name: "max_value", template: MsgMaxValue, key: KeyMaxValue, params: map[string]any{"max": max}}
	return check(r, func(v T) bool { return v <= max }, opts)
}

// Between accepts values in the closed range [min, max].
func Between[T Numeric](min, max T, opts ...schema.Option) schema.Validator {
	r := rule{name: "between", template: MsgBetween, key: KeyBetween, params: map[string]any{"min": min, "max": max}}
	return check(r, func(v T) bool { return v >= min && v <= max }, opts)
}
