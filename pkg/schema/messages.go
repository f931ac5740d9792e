package schema

import (
	"fmt"
	"maps"
	"regexp"
)

// Default message templates. Placeholders use the %{name} form.
const (
	MsgType       = "Not of type `%{type}`"
	MsgStrictType = "Not of strict type `%{type}`"
	MsgIs         = "Is not `%{value}`"
	MsgPredicate  = "`%{predicate}(%{data})` should evaluate to true"
	MsgAnyOf      = "All conditions failed: %{messages}"
	MsgRequired   = "Field `%{field}` is required."
)

// Default translation keys.
const (
	KeyType       = "schema.type"
	KeyStrictType = "schema.strict_type"
	KeyIs         = "schema.is"
	KeyPredicate  = "schema.predicate"
	KeyAnyOf      = "schema.any_of"
	KeyRequired   = "schema.required"
	KeyConversion = "schema.conversion"
)

// Formatter renders a message template. Implementations may look the key up
// in a translation catalogue and fall back to template when it is missing.
type Formatter interface {
	Format(key, template string, params map[string]any) string
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(key, template string, params map[string]any) string

func (f FormatterFunc) Format(key, template string, params map[string]any) string {
	return f(key, template, params)
}

// DefaultFormatter substitutes %{name} placeholders in the template and ignores the key.
var DefaultFormatter Formatter = FormatterFunc(func(_, template string, params map[string]any) string {
	return Interpolate(template, params)
})

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Interpolate replaces %{name} placeholders with fmt.Sprint of the matching
// param. Unknown placeholders are kept as they are.
func Interpolate(template string, params map[string]any) string {
	if len(params) == 0 {
		return template
	}
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// Option configures a validator at construction time.
type Option func(*options)

type options struct {
	template    string
	key         string
	kind        string
	formatter   Formatter
	params      map[string]any
	name        string
	separator   string
	requiredMsg string
	requiredKey string
}

func newOptions(template, key, kind string, opts []Option) options {
	o := options{
		template:    template,
		key:         key,
		kind:        kind,
		formatter:   DefaultFormatter,
		separator:   ", ",
		requiredMsg: MsgRequired,
		requiredKey: KeyRequired,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMessage replaces the message template. The template also becomes the
// translation key, so catalogues can be keyed by message text.
func WithMessage(template string) Option {
	return func(o *options) {
		if template == "" {
			return
		}
		o.template = template
		o.key = template
	}
}

// WithTranslationKey sets the key passed to the Formatter.
func WithTranslationKey(key string) Option {
	return func(o *options) { o.key = key }
}

// WithKind overrides the error classification tag.
func WithKind(kind string) Option {
	return func(o *options) {
		if kind != "" {
			o.kind = kind
		}
	}
}

// WithFormatter sets the message formatter. Nil is ignored.
func WithFormatter(f Formatter) Option {
	return func(o *options) {
		if f != nil {
			o.formatter = f
		}
	}
}

// WithParams adds template parameters available to the message.
func WithParams(params map[string]any) Option {
	return func(o *options) {
		if len(params) == 0 {
			return
		}
		if o.params == nil {
			o.params = make(map[string]any, len(params))
		}
		maps.Copy(o.params, params)
	}
}

// WithName sets the display name of a predicate.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithSeparator sets the separator Or uses to join child messages.
func WithSeparator(sep string) Option {
	return func(o *options) { o.separator = sep }
}

// WithRequiredMessage replaces the template a Map uses for missing required fields.
func WithRequiredMessage(template string) Option {
	return func(o *options) {
		if template == "" {
			return
		}
		o.requiredMsg = template
		o.requiredKey = template
	}
}

// fail builds a ValidationError from the configured template. extra params
// are layered over the ones given with WithParams.
func (o options) fail(extra map[string]any) *ValidationError {
	return o.failWith(o.key, o.template, o.kind, extra)
}

func (o options) failWith(key, template, kind string, extra map[string]any) *ValidationError {
	params := make(map[string]any, len(o.params)+len(extra))
	maps.Copy(params, o.params)
	maps.Copy(params, extra)
	return &ValidationError{
		Kind:              kind,
		Message:           o.formatter.Format(key, template, params),
		TranslationKey:    key,
		TranslationValues: params,
		template:          template,
	}
}
