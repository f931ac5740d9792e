package schema

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ErrDecode is returned by ValidateInto when cleaned data does not fit the destination.
var ErrDecode = errors.New("failed to decode cleaned data")

// Validate runs v and separates the outcome:
//
//   - success: (cleaned, nil, nil)
//   - validation failure: (nil, errs, nil); a single-value failure of a
//     non-map validator is reported under NonFieldKey
//   - internal fault: (nil, nil, err)
func Validate(v Validator, data any) (any, ValidationErrors, error) {
	cleaned, err := v.Validate(data)
	if err == nil {
		return cleaned, nil, nil
	}

	f, ok := asFailure(err)
	if !ok {
		return nil, nil, err
	}
	if errs, ok := f.(ValidationErrors); ok {
		return nil, errs, nil
	}
	return nil, ValidationErrors{NonFieldKey: f}, nil
}

// CleanOption configures Clean.
type CleanOption func(*cleanOptions)

type cleanOptions struct {
	wrap func(ValidationErrors) error
}

// WithErrorWrapper converts the error map into the caller's own error type.
func WithErrorWrapper(wrap func(ValidationErrors) error) CleanOption {
	return func(o *cleanOptions) {
		if wrap != nil {
			o.wrap = wrap
		}
	}
}

// Clean runs v and returns the cleaned value, or the same error map Validate
// would report (optionally wrapped). Internal faults are returned unchanged.
func Clean(v Validator, data any, opts ...CleanOption) (any, error) {
	o := cleanOptions{
		wrap: func(errs ValidationErrors) error { return errs },
	}
	for _, opt := range opts {
		opt(&o)
	}

	cleaned, errs, err := Validate(v, data)
	if err != nil {
		return nil, err
	}
	if errs != nil {
		return nil, o.wrap(errs)
	}
	return cleaned, nil
}

// ValidateInto validates data and decodes the cleaned value into dst, which
// must be a non-nil pointer. Struct fields are matched by their json tag.
func ValidateInto(v Validator, data any, dst any) (ValidationErrors, error) {
	cleaned, errs, err := Validate(v, data)
	if err != nil || errs != nil {
		return errs, err
	}
	if err := Decode(cleaned, dst); err != nil {
		return nil, err
	}
	return nil, nil
}

// Decode copies cleaned data into dst using json struct tags.
func Decode(cleaned any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		TagName:          "json",
		WeaklyTypedInput: false,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return errors.Join(ErrDecode, err)
	}
	if err := dec.Decode(cleaned); err != nil {
		return errors.Join(ErrDecode, fmt.Errorf("decode %T: %w", dst, err))
	}
	return nil
}
