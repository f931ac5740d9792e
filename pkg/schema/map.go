package schema

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// MapValidator validates a mapping of named fields. Unknown input fields are
// dropped from the output.
type MapValidator struct {
	fields    map[string]Validator
	required  []string
	optional  []string
	dependent []string
	opts      options
}

// NewMap builds a MapValidator. A name declared under more than one class
// or bound to a nil validator is rejected.
func NewMap(fields Fields, opts ...Option) (*MapValidator, error) {
	m := &MapValidator{
		fields: make(map[string]Validator, len(fields)),
		opts:   newOptions(MsgType, KeyType, KindType, opts),
	}

	classes := make(map[string]FieldClass, len(fields))
	for key, v := range fields {
		if v == nil {
			return nil, fmt.Errorf("%w: field %q", ErrNilValidator, key.Name)
		}
		if prev, ok := classes[key.Name]; ok && prev != key.Class {
			return nil, fmt.Errorf("%w: %q is both %s and %s", ErrFieldConflict, key.Name, prev, key.Class)
		}
		classes[key.Name] = key.Class
		m.fields[key.Name] = v

		switch key.Class {
		case ClassOptional:
			m.optional = append(m.optional, key.Name)
		case ClassDependent:
			m.dependent = append(m.dependent, key.Name)
		default:
			m.required = append(m.required, key.Name)
		}
	}

	slices.Sort(m.required)
	slices.Sort(m.optional)
	slices.Sort(m.dependent)
	return m, nil
}

// Map is NewMap for schema definitions known at compile time. It panics on
// an invalid definition.
func Map(fields Fields, opts ...Option) *MapValidator {
	m, err := NewMap(fields, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *MapValidator) RequiredFields() []string  { return slices.Clone(m.required) }
func (m *MapValidator) OptionalFields() []string  { return slices.Clone(m.optional) }
func (m *MapValidator) DependentFields() []string { return slices.Clone(m.dependent) }

// Validate checks required and present optional fields against their own
// values, then runs dependent fields against the whole input. Field errors
// from both passes are collected into one ValidationErrors.
func (m *MapValidator) Validate(data any) (any, error) {
	input, ok := asStringMap(data)
	if !ok {
		return nil, m.opts.fail(map[string]any{"type": "map[string]any"})
	}

	result := make(map[string]any, len(m.required)+len(m.optional)+len(m.dependent))
	errs := make(ValidationErrors)

	for _, name := range m.required {
		value, present := input[name]
		if !present {
			errs[name] = m.opts.failWith(m.opts.requiredKey, m.opts.requiredMsg, KindRequired, map[string]any{"field": name})
			continue
		}
		if err := m.validateField(name, value, result, errs); err != nil {
			return nil, err
		}
	}

	for _, name := range m.optional {
		value, present := input[name]
		if !present {
			continue
		}
		if err := m.validateField(name, value, result, errs); err != nil {
			return nil, err
		}
	}

	dependentResult := make(map[string]any, len(m.dependent))
	dependentErrs := make(ValidationErrors)
	for _, name := range m.dependent {
		if err := m.validateField(name, input, dependentResult, dependentErrs); err != nil {
			return nil, err
		}
	}

	maps.Copy(result, dependentResult)
	maps.Copy(errs, dependentErrs)

	if len(errs) > 0 {
		return nil, errs
	}
	return result, nil
}

// validateField stores the cleaned value in result or the failure in errs.
// A non-validation error is returned to abort the whole pass.
func (m *MapValidator) validateField(name string, value any, result map[string]any, errs ValidationErrors) error {
	cleaned, err := m.fields[name].Validate(value)
	if err == nil {
		result[name] = cleaned
		return nil
	}
	f, ok := asFailure(err)
	if !ok {
		return err
	}
	errs[name] = f
	return nil
}

// asStringMap accepts map[string]any directly and converts any other map
// whose keys are strings.
func asStringMap(data any) (map[string]any, bool) {
	if m, ok := data.(map[string]any); ok {
		return m, true
	}
	if data == nil {
		return nil, false
	}

	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	if v.IsNil() {
		return map[string]any{}, true
	}

	out := make(map[string]any, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
