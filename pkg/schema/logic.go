package schema

import "strings"

type and struct {
	validators []Validator
}

// And runs the validators left to right, feeding each the previous output.
// The first failure is returned as is.
func And(v Validator, vs ...Validator) Validator {
	return &and{validators: append([]Validator{v}, vs...)}
}

func (a *and) Validate(data any) (any, error) {
	value := data
	for _, v := range a.validators {
		out, err := v.Validate(value)
		if err != nil {
			return nil, err
		}
		value = out
	}
	return value, nil
}

type or struct {
	validators []Validator
	opts       options
}

// Or returns the output of the first validator that succeeds, trying them
// left to right. When all fail, the error joins every child message in the
// order tried and keeps the child failures as Causes.
func Or(v Validator, vs ...Validator) Validator {
	return OrWith(append([]Validator{v}, vs...))
}

// OrWith is Or with options (WithMessage, WithSeparator, WithFormatter).
func OrWith(validators []Validator, opts ...Option) Validator {
	return &or{
		validators: validators,
		opts:       newOptions(MsgAnyOf, KeyAnyOf, KindAnyOf, opts),
	}
}

func (o *or) Validate(data any) (any, error) {
	causes := make([]error, 0, len(o.validators))
	messages := make([]string, 0, len(o.validators))
	for _, v := range o.validators {
		out, err := v.Validate(data)
		if err == nil {
			return out, nil
		}
		cause, ok := asFailure(err)
		if !ok {
			return nil, err
		}
		causes = append(causes, cause)
		messages = append(messages, cause.Error())
	}

	verr := o.opts.fail(map[string]any{
		"messages": strings.Join(messages, o.opts.separator),
	})
	verr.Causes = causes
	verr.separator = o.opts.separator
	return nil, verr
}
