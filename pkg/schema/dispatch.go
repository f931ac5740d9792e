package schema

import (
	"fmt"
	"reflect"
)

// Shape is the kind of raw definition Of knows how to turn into a validator.
type Shape uint8

const (
	ShapeUnknown Shape = iota
	ShapeValidator
	ShapeMapping
	ShapePredicate
	ShapeConversion
)

func (s Shape) String() string {
	switch s {
	case ShapeValidator:
		return "validator"
	case ShapeMapping:
		return "mapping"
	case ShapePredicate:
		return "predicate"
	case ShapeConversion:
		return "conversion"
	default:
		return "unknown"
	}
}

// ShapeOf inspects a raw definition.
func ShapeOf(def any) Shape {
	switch def.(type) {
	case Validator:
		return ShapeValidator
	case Fields, map[string]Validator:
		return ShapeMapping
	case func(any) bool:
		return ShapePredicate
	case Step, func(any) (any, error):
		return ShapeConversion
	default:
		return funcShape(def)
	}
}

var errorType = reflect.TypeFor[error]()

// funcShape classifies any other one-argument function: a single bool result
// is a predicate, a single value or a (value, error) pair is a conversion.
func funcShape(def any) Shape {
	t := reflect.TypeOf(def)
	if t == nil || t.Kind() != reflect.Func || t.NumIn() != 1 || t.IsVariadic() || reflect.ValueOf(def).IsNil() {
		return ShapeUnknown
	}
	switch t.NumOut() {
	case 1:
		if t.Out(0).Kind() == reflect.Bool {
			return ShapePredicate
		}
		return ShapeConversion
	case 2:
		if t.Out(1) == errorType {
			return ShapeConversion
		}
	}
	return ShapeUnknown
}

// FromMapping builds a Map from a definition.
func FromMapping(fields Fields, opts ...Option) (*MapValidator, error) {
	return NewMap(fields, opts...)
}

// FromPredicate builds a Predicate.
func FromPredicate(fn func(any) bool, opts ...Option) Validator {
	return Predicate(fn, opts...)
}

// FromConversion builds a single-step Pipe.
func FromConversion(step Step, opts ...Option) Validator {
	return PipeWith([]Step{step}, opts...)
}

// Of turns a raw definition into a validator by its shape: a Validator is
// returned as is, Fields or map[string]Validator become a Map (plain names
// are required), func(any) bool becomes a Predicate and a Step or
// func(any) (any, error) becomes a one-step Pipe. Any other one-argument
// function is called through reflection: func(T) bool is a Predicate,
// func(T) R and func(T) (R, error) are one-step Pipes. Inputs that are not
// a T fail the predicate or the conversion.
func Of(def any, opts ...Option) (Validator, error) {
	switch d := def.(type) {
	case Validator:
		return d, nil
	case Fields:
		return mapping(d, opts)
	case map[string]Validator:
		fields := make(Fields, len(d))
		for name, v := range d {
			fields[Required(name)] = v
		}
		return mapping(fields, opts)
	case func(any) bool:
		return FromPredicate(d, opts...), nil
	case Step:
		return FromConversion(d, opts...), nil
	case func(any) (any, error):
		return FromConversion(d, opts...), nil
	}

	switch funcShape(def) {
	case ShapePredicate:
		opts = append([]Option{WithName(funcName(def))}, opts...)
		return FromPredicate(func(data any) bool {
			out, err := callFunc(def, data)
			return err == nil && reflect.ValueOf(out).Bool()
		}, opts...), nil
	case ShapeConversion:
		return FromConversion(func(data any) (any, error) {
			return callFunc(def, data)
		}, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownShape, def)
	}
}

// callFunc calls a one-argument function with data, which must be assignable
// to the parameter type. A second error result is returned as the error.
func callFunc(fn any, data any) (any, error) {
	v := reflect.ValueOf(fn)
	in := v.Type().In(0)
	if data == nil {
		return nil, TypeMismatch(data, in.String())
	}
	arg := reflect.ValueOf(data)
	if !arg.Type().AssignableTo(in) {
		return nil, TypeMismatch(data, in.String())
	}

	out := v.Call([]reflect.Value{arg})
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

func mapping(fields Fields, opts []Option) (Validator, error) {
	m, err := FromMapping(fields, opts...)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// MustOf is Of that panics on an unknown shape.
func MustOf(def any, opts ...Option) Validator {
	v, err := Of(def, opts...)
	if err != nil {
		panic(err)
	}
	return v
}
