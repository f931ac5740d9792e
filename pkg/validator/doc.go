// Package validator provides ready-made rules for common checks on top of the
// schema package.
//
// Every exported function returns a schema.Validator, so rules compose with
// schema.And, schema.Or and schema.Map like any other validator. Rules pass
// the input through unchanged on success and fail with a *schema.ValidationError
// carrying a default message and a "validation.*" translation key. Both can be
// replaced with schema.WithMessage and schema.WithTranslationKey.
//
// # Usage
//
//	signup := schema.Map(schema.Fields{
//	    schema.Required("email"): schema.And(validator.String(), validator.Email()),
//	    schema.Required("age"): schema.And(
//	        schema.Pipe(sanitizer.ToInt),
//	        validator.Between(18, 99, schema.WithMessage("User has to be an adult")),
//	    ),
//	    schema.Optional("plan"): validator.Choices([]string{"free", "pro"}),
//	})
//
// # Families
//
//   - type shortcuts: Int, Float, Number, String, Bool, List, Dict, Time, IsNil
//   - strings and collections: NotEmpty, MinLength, MaxLength, Length, Regex
//   - formats: Email, EmailWhitelist, URL, UUID, ParseUUID
//   - numbers: Positive, PositiveOrZero, MinValue, MaxValue, Between
//   - choices: Choices, NotIn
//
// Numeric rules are generic over the Numeric constraint and only accept
// inputs of exactly that type. Put a conversion in front of them (see the
// sanitizer package) when the input is a string.
package validator
