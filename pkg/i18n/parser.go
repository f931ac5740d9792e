package i18n

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Parser decodes a catalogue file into translations keyed by language.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension accepts the extension with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns the parser for the file extension, or nil.
func NewParserForFile(filename string) Parser {
	ext := filepath.Ext(filename)
	for _, p := range []Parser{NewJSONParser(), NewYAMLParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// decodeCatalogues unmarshals content and requires every top-level value to
// be a language mapping. cancelled and invalid are the format's sentinels.
func decodeCatalogues(ctx context.Context, content string, unmarshal func([]byte, any) error, cancelled, invalid error) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(cancelled, err)
	}

	var data map[string]any
	if err := unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(invalid, err)
	}

	result, ok := toCatalogues(data)
	if !ok {
		return nil, fmt.Errorf("%w: every top-level key must be a language mapping", invalid)
	}
	return result, nil
}

func hasExtension(ext string, want ...string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return slices.ContainsFunc(want, func(w string) bool { return strings.EqualFold(ext, w) })
}

// toCatalogues converts decoded content into translations per language.
func toCatalogues(data map[string]any) (map[string]map[string]any, bool) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		catalogue, ok := asMap(val)
		if !ok {
			return nil, false
		}
		result[lang] = catalogue
	}
	return result, true
}
