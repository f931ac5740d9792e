package schema

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

var (
	// ErrValidationFailed matches any ValidationErrors with errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldConflict is returned when a field name is declared with more than one class.
	ErrFieldConflict = errors.New("field declared with conflicting classes")

	// ErrNilValidator is returned when a schema definition contains a nil validator.
	ErrNilValidator = errors.New("nil validator in schema definition")

	// ErrUnknownShape is returned by Of when a definition cannot be turned into a validator.
	ErrUnknownShape = errors.New("unknown schema definition shape")

	// ErrConversion marks step errors that should be reported as validation failures.
	ErrConversion = errors.New("conversion failed")
)

// NonFieldKey is the key under which a top-level single-value failure is reported
// by Validate and Clean.
const NonFieldKey = "__all__"

// Error kinds.
const (
	KindInvalid    = "invalid"
	KindType       = "type"
	KindStrictType = "strict_type"
	KindIdentity   = "identity"
	KindPredicate  = "predicate"
	KindConversion = "conversion"
	KindAnyOf      = "any_of"
	KindRequired   = "required"
)

// ValidationError is a failure of a single value.
type ValidationError struct {
	Kind              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any

	// Causes holds the child failures of an Or, in the order tried. Their
	// messages fill the %{messages} parameter.
	Causes []error

	template  string
	separator string
}

// Translate renders the message again through f. Causes are translated first
// and joined back into the %{messages} parameter, so an Or failure comes out
// in a single language.
func (e *ValidationError) Translate(f Formatter) *ValidationError {
	if f == nil {
		return e
	}
	out := *e
	fallback := e.Message
	if len(e.Causes) > 0 {
		out.Causes = make([]error, len(e.Causes))
		messages := make([]string, len(e.Causes))
		for i, cause := range e.Causes {
			out.Causes[i] = translateError(cause, f)
			messages[i] = out.Causes[i].Error()
		}
		out.TranslationValues = maps.Clone(e.TranslationValues)
		if out.TranslationValues == nil {
			out.TranslationValues = make(map[string]any, 1)
		}
		out.TranslationValues["messages"] = strings.Join(messages, e.separator)
		if e.template != "" {
			fallback = e.template
		}
	}
	out.Message = f.Format(e.TranslationKey, fallback, out.TranslationValues)
	return &out
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidationErrors maps field names to failures. Every value is either a
// *ValidationError or, for nested maps, another ValidationErrors.
type ValidationErrors map[string]error

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, field := range ve.Fields() {
		switch e := ve[field].(type) {
		case ValidationErrors:
			parts = append(parts, fmt.Sprintf("%s: {%s}", field, strings.TrimPrefix(e.Error(), "validation failed: ")))
		default:
			parts = append(parts, fmt.Sprintf("%s: %s", field, e.Error()))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports ErrValidationFailed so callers can use errors.Is without a type switch.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve ValidationErrors) Has(field string) bool {
	_, ok := ve[field]
	return ok
}

// Get returns the message stored for field, or an empty string when the field
// has no error or holds a nested error map.
func (ve ValidationErrors) Get(field string) string {
	if e, ok := ve[field].(*ValidationError); ok {
		return e.Message
	}
	return ""
}

// Nested returns the nested error map stored for field, if any.
func (ve ValidationErrors) Nested(field string) ValidationErrors {
	if e, ok := ve[field].(ValidationErrors); ok {
		return e
	}
	return nil
}

// Fields returns the failed field names in sorted order.
func (ve ValidationErrors) Fields() []string {
	return slices.Sorted(maps.Keys(ve))
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Messages returns the error tree with leaves reduced to their message
// strings and nested maps kept as map[string]any.
func (ve ValidationErrors) Messages() map[string]any {
	out := make(map[string]any, len(ve))
	for field, err := range ve {
		switch e := err.(type) {
		case ValidationErrors:
			out[field] = e.Messages()
		default:
			out[field] = e.Error()
		}
	}
	return out
}

// Flatten returns the leaf messages keyed by their dotted path.
func (ve ValidationErrors) Flatten() map[string]string {
	out := make(map[string]string)
	ve.flatten("", out)
	return out
}

func (ve ValidationErrors) flatten(prefix string, out map[string]string) {
	for field, err := range ve {
		path := field
		if prefix != "" {
			path = prefix + "." + field
		}
		if nested, ok := err.(ValidationErrors); ok {
			nested.flatten(path, out)
			continue
		}
		out[path] = err.Error()
	}
}

// Translate returns a copy of the error tree with every leaf message rendered
// again through f. The current message is used as the fallback template, so
// a formatter that has no entry for a key leaves the message unchanged.
func (ve ValidationErrors) Translate(f Formatter) ValidationErrors {
	if f == nil {
		return ve
	}
	out := make(ValidationErrors, len(ve))
	for field, err := range ve {
		out[field] = translateError(err, f)
	}
	return out
}

func translateError(err error, f Formatter) error {
	switch e := err.(type) {
	case ValidationErrors:
		return e.Translate(f)
	case *ValidationError:
		return e.Translate(f)
	default:
		return err
	}
}

// MarshalJSON encodes the message tree, e.g. {"amount": {"currency": "Not of type `string`"}}.
func (ve ValidationErrors) MarshalJSON() ([]byte, error) {
	return json.Marshal(ve.Messages())
}

// ExtractValidationErrors extracts ValidationErrors from an error chain.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

// IsValidationError reports whether err carries a single-value or multi-field
// validation failure.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	return failure(err)
}
