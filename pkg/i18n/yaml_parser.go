package i18n

import (
	"context"

	"gopkg.in/yaml.v3"
)

// YAMLParser reads catalogues keyed by language at the top level:
//
//	es:
//	  schema:
//	    type: "No es de tipo `%{type}`"
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser { return &YAMLParser{} }

func (*YAMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	return decodeCatalogues(ctx, content, yaml.Unmarshal, ErrYAMLParsingCancelled, ErrFailedToParseYAML)
}

func (*YAMLParser) SupportsFileExtension(ext string) bool {
	return hasExtension(ext, "yaml", "yml")
}
