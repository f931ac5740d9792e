package logger

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/kaleidos/skame/pkg/schema"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ValidationErrors records each failing field under a "validation" group,
// keyed by its dotted path. Empty or nil errors yield an empty Attr.
func ValidationErrors(errs schema.ValidationErrors) slog.Attr {
	if errs.IsEmpty() {
		return slog.Attr{}
	}
	flat := errs.Flatten()
	attrs := make([]slog.Attr, 0, len(flat))
	for _, field := range slices.Sorted(maps.Keys(flat)) {
		attrs = append(attrs, slog.String(field, flat[field]))
	}
	return Group("validation", attrs...)
}

func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Method(method string) slog.Attr {
	return slog.String("method", method)
}

func Path(path string) slog.Attr {
	return slog.String("path", path)
}
