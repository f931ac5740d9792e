package validator

import (
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/kaleidos/skame/pkg/schema"
)

// NotEmpty rejects nil, blank strings, empty collections and zero values.
func NotEmpty(opts ...schema.Option) schema.Validator {
	r := rule{name: "not_empty", template: MsgNotEmpty, key: KeyNotEmpty}
	return check(r, func(data any) bool {
		v := reflect.ValueOf(data)
		switch v.Kind() {
		case reflect.String:
			return strings.TrimSpace(v.String()) != ""
		case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
			return v.Len() > 0
		default:
			return !v.IsZero()
		}
	}, opts)
}

// MinLength checks the length of a string (in characters), slice, array or map.
func MinLength(min int, opts ...schema.Option) schema.Validator {
	r := rule{name: "min_length", template: MsgMinLength, key: KeyMinLength, params: map[string]any{"min": min}}
	return check(r, func(data any) bool {
		n, ok := length(data)
		return ok && n >= min
	}, opts)
}

func MaxLength(max int, opts ...schema.Option) schema.Validator {
	r := rule{name: "max_length", template: MsgMaxLength, key: KeyMaxLength, params: map[string]any{"max": max}}
	return check(r, func(data any) bool {
		n, ok := length(data)
		return ok && n <= max
	}, opts)
}

func Length(exact int, opts ...schema.Option) schema.Validator {
	r := rule{name: "length", template: MsgLength, key: KeyLength, params: map[string]any{"length": exact}}
	return check(r, func(data any) bool {
		n, ok := length(data)
		return ok && n == exact
	}, opts)
}

// Regex accepts strings matching pattern. It panics if pattern does not compile.
func Regex(pattern string, opts ...schema.Option) schema.Validator {
	return RegexOf(regexp.MustCompile(pattern), opts...)
}

func RegexOf(re *regexp.Regexp, opts ...schema.Option) schema.Validator {
	r := rule{name: "regex", template: MsgRegex, key: KeyRegex, params: map[string]any{"pattern": re.String()}}
	return check(r, re.MatchString, opts)
}

// length counts runes of the NFC form for strings, so "e" followed by a
// combining accent counts as one character.
func length(data any) (int, bool) {
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(norm.NFC.String(v.String())), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len(), true
	default:
		return 0, false
	}
}
