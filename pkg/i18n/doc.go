// Package i18n translates validation messages.
//
// A Translator holds catalogues per language loaded through a
// TranslationAdapter (an in-memory map, a single file, a directory or any
// fs.FS) and parsed from YAML or JSON. Catalogues are nested maps addressed
// with dot-separated keys, so "schema.required" resolves
//
//	es:
//	  schema:
//	    required: "El campo `%{field}` es obligatorio."
//
// Keys are looked up literally first, which lets catalogues be keyed by the
// message text itself, the way gettext catalogues are.
//
// Translator.Formatter adapts a translator to schema.Formatter, and
// Translator.Translate re-renders a whole schema.ValidationErrors tree in
// another language using the translation keys and params each error carries.
//
// Builtin returns an adapter for the catalogue shipped with the package
// (English and Spanish messages for the schema and validator packages).
//
// Language negotiation helpers (ParseAcceptLanguage, Middleware and the
// extractors) pick a supported language for an HTTP request.
package i18n
