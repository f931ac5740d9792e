package schema

import (
	"fmt"
	"reflect"
)

type typeCheck struct {
	target reflect.Type
	strict bool
	opts   options
}

// Type accepts values whose type is T or is assignable to T. Named types are
// accepted for a basic T when their kind matches (type Name string passes
// Type[string]). Booleans never pass a numeric T, and nil only passes an
// interface without methods.
func Type[T any](opts ...Option) Validator {
	return TypeOf(reflect.TypeFor[T](), opts...)
}

// TypeOf is Type for a reflect.Type known only at runtime.
func TypeOf(t reflect.Type, opts ...Option) Validator {
	return &typeCheck{
		target: t,
		opts:   newOptions(MsgType, KeyType, KindType, opts),
	}
}

// StrictType accepts values whose dynamic type is exactly T.
func StrictType[T any](opts ...Option) Validator {
	return StrictTypeOf(reflect.TypeFor[T](), opts...)
}

// StrictTypeOf is StrictType for a reflect.Type known only at runtime.
func StrictTypeOf(t reflect.Type, opts ...Option) Validator {
	return &typeCheck{
		target: t,
		strict: true,
		opts:   newOptions(MsgStrictType, KeyStrictType, KindStrictType, opts),
	}
}

func (c *typeCheck) Validate(data any) (any, error) {
	var ok bool
	if c.strict {
		ok = reflect.TypeOf(data) == c.target
	} else {
		ok = instanceOf(data, c.target)
	}
	if !ok {
		return nil, c.opts.fail(map[string]any{"type": c.target.String()})
	}
	return data, nil
}

func instanceOf(data any, target reflect.Type) bool {
	// nil is an instance of any but of no interface with methods
	if data == nil {
		return target.Kind() == reflect.Interface && target.NumMethod() == 0
	}

	t := reflect.TypeOf(data)
	if t.Kind() == reflect.Bool && isNumericKind(target.Kind()) {
		return false
	}
	if t == target || t.AssignableTo(target) {
		return true
	}
	// named types with the same basic kind, e.g. type Currency string
	return target.PkgPath() == "" && target.Name() != "" && isBasicKind(target.Kind()) && t.Kind() == target.Kind()
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func isBasicKind(k reflect.Kind) bool {
	return k == reflect.Bool || k == reflect.String || isNumericKind(k)
}

type identityCheck struct {
	target any
	opts   options
}

// Is accepts only the target itself: nil matches an untyped nil, reference
// values (pointers, maps, slices, channels, funcs) match the same reference,
// and comparable values match with == on identical types.
func Is(target any, opts ...Option) Validator {
	return &identityCheck{
		target: target,
		opts:   newOptions(MsgIs, KeyIs, KindIdentity, opts),
	}
}

func (c *identityCheck) Validate(data any) (any, error) {
	if !identical(data, c.target) {
		return nil, c.opts.fail(map[string]any{"value": displayValue(c.target)})
	}
	return data, nil
}

func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

func displayValue(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprint(v)
}
