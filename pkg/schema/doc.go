// Package schema is a small combinator algebra for validating and cleaning
// loosely typed data, typically map[string]any decoded from JSON or forms.
//
// A schema is a tree of Validator values. Leaves check or convert a single
// value; combinators compose other validators; Map validates a mapping of
// named fields and aggregates every field failure into one report.
//
// # Building blocks
//
//   - Type / StrictType – the value is (or exactly is) of a Go type
//   - Is                – the value is a specific singleton (e.g. nil)
//   - Predicate         – a boolean function accepts the value
//   - Pipe              – conversion steps applied in order
//   - And / Or          – all must pass in sequence / first success wins
//   - Map               – named fields, marked Required, Optional or Dependent
//
// # Usage
//
//	user := schema.Map(schema.Fields{
//	    schema.Required("name"): schema.Type[string](),
//	    schema.Required("age"): schema.And(
//	        schema.PipeWith([]schema.Step{sanitizer.ToInt}, schema.WithMessage("User age must be an integer")),
//	        schema.PredicateOf(func(age int) bool { return age >= 18 && age < 99 }, schema.WithMessage("User has to be an adult")),
//	    ),
//	    schema.Optional("nickname"): schema.Type[string](),
//	    schema.Dependent("password_confirm"): schema.Predicate(func(data any) bool {
//	        m := data.(map[string]any)
//	        return m["password"] == m["password_confirm"]
//	    }),
//	})
//
//	cleaned, errs, err := schema.Validate(user, input)
//
// # Error Handling
//
// A failing validator returns a *ValidationError (one value) or
// ValidationErrors (a field map whose values are *ValidationError or nested
// ValidationErrors). Map never stops at the first field: every field is
// checked and all failures are reported together. Any other error returned by
// a validator or a Pipe step is an internal fault; it is never converted into
// a field error and reaches the caller unchanged.
//
// Messages are rendered through a Formatter. The default one substitutes
// %{name} placeholders; a translation catalogue can be plugged in with
// WithFormatter, or applied afterwards with ValidationErrors.Translate.
//
// Validators hold no per-call state and are safe for concurrent use.
package schema
