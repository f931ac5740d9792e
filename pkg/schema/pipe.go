package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Step converts a value. Errors classified as conversion failures become
// validation errors; all others are returned to the caller unchanged.
type Step func(any) (any, error)

// ConversionError describes a value that could not be converted.
type ConversionError struct {
	Value  any
	Target string
	Reason string
}

func (e *ConversionError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("cannot convert %v (%T) to %s", e.Value, e.Value, e.Target)
}

func (e *ConversionError) Unwrap() error {
	return ErrConversion
}

// TypeMismatch reports a value of an unexpected type.
func TypeMismatch(value any, target string) error {
	return &ConversionError{Value: value, Target: target}
}

// Conversionf reports a value that has the right type but cannot be converted.
func Conversionf(value any, target, format string, args ...any) error {
	return &ConversionError{Value: value, Target: target, Reason: fmt.Sprintf(format, args...)}
}

// IsConversionFailure reports whether err is an expected conversion failure.
func IsConversionFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConversion) {
		return true
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return true
	}
	var timeErr *time.ParseError
	return errors.As(err, &timeErr)
}

type pipe struct {
	steps []Step
	opts  options
}

// Pipe applies the steps in the order given, each receiving the previous output.
// A conversion failure is reported with the WithMessage text, or with the
// failure's own text when no message is configured.
func Pipe(step Step, steps ...Step) Validator {
	return PipeWith(append([]Step{step}, steps...))
}

// PipeWith is Pipe with options. An empty step list returns the input unchanged.
func PipeWith(steps []Step, opts ...Option) Validator {
	return &pipe{
		steps: steps,
		opts:  newOptions("", KeyConversion, KindConversion, opts),
	}
}

func (p *pipe) Validate(data any) (any, error) {
	value := data
	for _, step := range p.steps {
		out, err := step(value)
		if err != nil {
			if !IsConversionFailure(err) {
				return nil, err
			}
			return nil, p.conversionFailed(value, err)
		}
		value = out
	}
	return value, nil
}

func (p *pipe) conversionFailed(value any, err error) *ValidationError {
	params := map[string]any{"data": displayValue(value), "error": err.Error()}
	if p.opts.template == "" {
		return p.opts.failWith(p.opts.key, err.Error(), p.opts.kind, params)
	}
	return p.opts.fail(params)
}

// Convert adapts a typed, fallible conversion into a Step.
func Convert[T, R any](fn func(T) (R, error)) Step {
	target := reflect.TypeFor[T]().String()
	return func(data any) (any, error) {
		v, ok := data.(T)
		if !ok {
			return nil, TypeMismatch(data, target)
		}
		out, err := fn(v)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// Transform adapts a typed conversion that cannot fail into a Step.
func Transform[T, R any](fn func(T) R) Step {
	target := reflect.TypeFor[T]().String()
	return func(data any) (any, error) {
		v, ok := data.(T)
		if !ok {
			return nil, TypeMismatch(data, target)
		}
		return fn(v), nil
	}
}
