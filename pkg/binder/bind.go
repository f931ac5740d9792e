package binder

import (
	"net/http"

	"github.com/kaleidos/skame/pkg/schema"
)

// Bind extracts the request input and validates it with v. The results
// follow schema.Validate: cleaned data, a validation error map, or a fault.
// Extraction errors (bad body, wrong media type) are returned as faults and
// match the package's sentinel errors.
func Bind(r *http.Request, v schema.Validator, opts ...Option) (any, schema.ValidationErrors, error) {
	values, err := read(r, opts)
	if err != nil {
		return nil, nil, err
	}
	return schema.Validate(v, values)
}

// BindInto is Bind followed by decoding the cleaned data into dst using the
// json tags of its fields.
func BindInto(r *http.Request, v schema.Validator, dst any, opts ...Option) (schema.ValidationErrors, error) {
	values, err := read(r, opts)
	if err != nil {
		return nil, err
	}
	return schema.ValidateInto(v, values, dst)
}

func read(r *http.Request, opts []Option) (map[string]any, error) {
	if o := newOptions(opts); o.source != nil {
		return o.source(r)
	}
	return Values(r, opts...)
}
