package validator

import "github.com/kaleidos/skame/pkg/schema"

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Default messages.
const (
	MsgNotEmpty       = "Empty value"
	MsgMinLength      = "Length must be at least %{min}"
	MsgMaxLength      = "Length must be at most %{max}"
	MsgLength         = "Length must be exactly %{length}"
	MsgRegex          = "Does not match pattern `%{pattern}`"
	MsgEmail          = "Invalid email format"
	MsgURL            = "Invalid URL"
	MsgUUID           = "Invalid UUID"
	MsgPositive       = "Value must be a positive number"
	MsgPositiveOrZero = "Value must be a positive number or 0"
	MsgMinValue       = "Value must be greater or equal than %{min}"
	MsgMaxValue       = "Value must be lower or equal than %{max}"
	MsgBetween        = "Value must be between %{min} and %{max}"
	MsgChoices        = "Value not in the valid choices (%{choices})"
	MsgNotIn          = "Value must not be one of (%{choices})"
)

// Translation keys.
const (
	KeyNotEmpty       = "validation.not_empty"
	KeyMinLength      = "validation.min_length"
	KeyMaxLength      = "validation.max_length"
	KeyLength         = "validation.exact_length"
	KeyRegex          = "validation.regex_pattern"
	KeyEmail          = "validation.email"
	KeyURL            = "validation.url"
	KeyUUID           = "validation.uuid"
	KeyPositive       = "validation.positive"
	KeyPositiveOrZero = "validation.positive_or_zero"
	KeyMinValue       = "validation.min"
	KeyMaxValue       = "validation.max"
	KeyBetween        = "validation.between"
	KeyChoices        = "validation.in_list"
	KeyNotIn          = "validation.not_in_list"
)

// rule is the common shape of every check in this package: a typed predicate
// with a default message, key and params. Caller options are applied last.
type rule struct {
	name     string
	template string
	key      string
	kind     string
	params   map[string]any
}

func (r rule) options(opts []schema.Option) []schema.Option {
	kind := r.kind
	if kind == "" {
		kind = schema.KindInvalid
	}
	base := []schema.Option{
		schema.WithName(r.name),
		schema.WithMessage(r.template),
		schema.WithTranslationKey(r.key),
		schema.WithKind(kind),
		schema.WithParams(r.params),
	}
	return append(base, opts...)
}

func check[T any](r rule, fn func(T) bool, opts []schema.Option) schema.Validator {
	return schema.PredicateOf(fn, r.options(opts)...)
}
