// Package binder extracts raw input from HTTP requests and runs it through a
// schema validator.
//
// A Source turns a request into a map[string]any: JSON reads an object body,
// Form reads urlencoded and multipart bodies (files included), Query reads
// the URL query and Path or ChiParams read route parameters. Values picks a
// source from the request method and Content-Type; Merge combines several.
//
// Bind and BindInto validate the extracted values:
//
//	signup := schema.Map(schema.Fields{
//	    schema.Required("email"): validator.Email(),
//	    schema.Required("age"):   schema.Pipe(sanitizer.ToInt),
//	})
//
//	var req SignupRequest
//	errs, err := binder.BindInto(r, signup, &req)
//
// Handler wraps the whole cycle. Rejected requests get a 422 response with
// the error tree translated into the language negotiated from the request:
//
//	{"error": "Validation failed", "details": {"email": "Invalid email format"}}
package binder
