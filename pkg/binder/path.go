package binder

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PathExtractor returns the value of a route parameter, or "" when absent.
type PathExtractor func(r *http.Request, name string) string

// Path reads the named route parameters with extractor. Empty values are
// left out.
//
//	r.Get("/users/{id}", handler) // with binder.Path(chi.URLParam, "id")
func Path(extractor PathExtractor, names ...string) Source {
	return func(r *http.Request) (map[string]any, error) {
		if extractor == nil {
			return nil, fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath)
		}
		values := make(map[string]any, len(names))
		for _, name := range names {
			if v := extractor(r, name); v != "" {
				values[name] = v
			}
		}
		return values, nil
	}
}

// ChiParams reads every URL parameter matched by a chi router.
func ChiParams() Source {
	return func(r *http.Request) (map[string]any, error) {
		values := make(map[string]any)
		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			return values, nil
		}
		for i, key := range rctx.URLParams.Keys {
			if key == "*" || i >= len(rctx.URLParams.Values) || rctx.URLParams.Values[i] == "" {
				continue
			}
			values[key] = rctx.URLParams.Values[i]
		}
		return values, nil
	}
}
