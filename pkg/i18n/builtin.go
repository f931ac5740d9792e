package i18n

import (
	"embed"
	"io/fs"
)

//go:embed locales/*.yaml
var builtinLocales embed.FS

// Builtin returns an adapter for the English and Spanish messages of the
// schema, validator and binder packages. Combine it with application
// catalogues through MultiAdapter:
//
//	i18n.MultiAdapter{i18n.Builtin(), i18n.NewDirectoryAdapter(nil, "locales")}
func Builtin() TranslationAdapter {
	sub, err := fs.Sub(builtinLocales, "locales")
	if err != nil {
		panic(err)
	}
	return NewFSAdapter(sub, ".", NewYAMLParser())
}
