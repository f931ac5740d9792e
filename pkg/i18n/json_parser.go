package i18n

import (
	"context"

	"github.com/goccy/go-json"
)

// JSONParser reads catalogues shaped like {"es": {"schema": {"type": "..."}}}.
type JSONParser struct{}

func NewJSONParser() *JSONParser { return &JSONParser{} }

func (*JSONParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	return decodeCatalogues(ctx, content, json.Unmarshal, ErrJSONParsingCancelled, ErrFailedToParseJSON)
}

func (*JSONParser) SupportsFileExtension(ext string) bool {
	return hasExtension(ext, "json")
}
