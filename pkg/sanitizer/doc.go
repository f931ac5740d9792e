// Package sanitizer provides conversion steps and string transforms for use
// in schema pipes.
//
// Conversion steps (ToInt, ToFloat, ToBool, ToString, ToTime) turn loosely
// typed input, typically strings from a form or query string, into Go
// values. Their failures are conversion errors, so schema.Pipe reports them
// as validation failures rather than internal faults.
//
// String transforms are plain func(string) string values. Chain them with
// Apply or Compose, or lift them into pipe steps with Steps:
//
//	email := schema.And(
//	    schema.PipeWith(sanitizer.Steps(sanitizer.Trim, sanitizer.NormalizeEmail)),
//	    validator.Email(),
//	)
//
//	age := schema.And(schema.Pipe(sanitizer.ToInt), validator.MinValue(18))
package sanitizer
