package validator

import (
	"reflect"
	"time"

	"github.com/kaleidos/skame/pkg/schema"
)

// Int accepts values of any integer kind. Booleans and floats are rejected.
func Int(opts ...schema.Option) schema.Validator {
	return kindCheck("int", schema.MsgStrictType, schema.KeyStrictType, schema.KindStrictType, isIntKind, opts)
}

// Float accepts float32 and float64 values.
func Float(opts ...schema.Option) schema.Validator {
	return kindCheck("float", schema.MsgType, schema.KeyType, schema.KindType, isFloatKind, opts)
}

// Number accepts any integer or float value.
func Number(opts ...schema.Option) schema.Validator {
	return kindCheck("number", schema.MsgType, schema.KeyType, schema.KindType, func(k reflect.Kind) bool {
		return isIntKind(k) || isFloatKind(k)
	}, opts)
}

func String(opts ...schema.Option) schema.Validator { return schema.Type[string](opts...) }

func Bool(opts ...schema.Option) schema.Validator { return schema.Type[bool](opts...) }

func Time(opts ...schema.Option) schema.Validator { return schema.Type[time.Time](opts...) }

// List accepts slices and arrays of any element type.
func List(opts ...schema.Option) schema.Validator {
	return kindCheck("list", schema.MsgType, schema.KeyType, schema.KindType, func(k reflect.Kind) bool {
		return k == reflect.Slice || k == reflect.Array
	}, opts)
}

// Dict accepts maps with string keys.
func Dict(opts ...schema.Option) schema.Validator {
	r := rule{name: "dict", template: schema.MsgType, key: schema.KeyType, kind: schema.KindType, params: map[string]any{"type": "dict"}}
	return check(r, func(data any) bool {
		t := reflect.TypeOf(data)
		return t != nil && t.Kind() == reflect.Map && t.Key().Kind() == reflect.String
	}, opts)
}

// IsNil accepts only an untyped nil.
func IsNil(opts ...schema.Option) schema.Validator { return schema.Is(nil, opts...) }

func kindCheck(typeName, template, key, kind string, match func(reflect.Kind) bool, opts []schema.Option) schema.Validator {
	r := rule{name: typeName, template: template, key: key, kind: kind, params: map[string]any{"type": typeName}}
	return check(r, func(data any) bool {
		t := reflect.TypeOf(data)
		return t != nil && match(t.Kind())
	}, opts)
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
