package schema

import "errors"

// Validator checks one value and returns it cleaned.
//
// A failing Validate returns a *ValidationError for a single value or
// ValidationErrors for a mapping, possibly wrapped with %w. Any other error
// is treated as an internal fault and passed through untouched by every
// combinator.
type Validator interface {
	Validate(data any) (any, error)
}

// ValidatorFunc adapts an ordinary function to the Validator interface.
type ValidatorFunc func(data any) (any, error)

func (f ValidatorFunc) Validate(data any) (any, error) {
	return f(data)
}

// asFailure unwraps err to the *ValidationError or ValidationErrors it
// carries. Anything else is a fault.
func asFailure(err error) (error, bool) {
	var multi ValidationErrors
	if errors.As(err, &multi) {
		return multi, true
	}
	var single *ValidationError
	if errors.As(err, &single) {
		return single, true
	}
	return nil, false
}

// failure reports whether err is a validation outcome rather than a fault.
func failure(err error) bool {
	_, ok := asFailure(err)
	return ok
}
