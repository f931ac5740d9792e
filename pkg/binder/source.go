package binder

import (
	"maps"
	"mime"
	"net/http"
	"strings"
)

// Source extracts the raw input of a request.
type Source func(r *http.Request) (map[string]any, error)

// Merge reads every source in order. Later sources override keys of earlier ones.
func Merge(sources ...Source) Source {
	return func(r *http.Request) (map[string]any, error) {
		values := make(map[string]any)
		for _, src := range sources {
			if src == nil {
				continue
			}
			v, err := src(r)
			if err != nil {
				return nil, err
			}
			maps.Copy(values, v)
		}
		return values, nil
	}
}

// Values reads the query string of GET, HEAD and DELETE requests and the
// body of the others, chosen by Content-Type. A body-less request without a
// Content-Type gives an empty map.
func Values(r *http.Request, opts ...Option) (map[string]any, error) {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
		return Query()(r)
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		if r.ContentLength == 0 {
			return make(map[string]any), nil
		}
		return nil, ErrMissingContentType
	}

	switch mediaType(contentType) {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return Form(opts...)(r)
	default:
		return JSON(opts...)(r)
	}
}

func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt, _, _ = strings.Cut(contentType, ";")
	}
	return strings.ToLower(strings.TrimSpace(mt))
}

// flatten keeps single values as strings and repeated values as []string.
func flatten(values map[string][]string) map[string]any {
	out := make(map[string]any, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
		case 1:
			out[key] = vals[0]
		default:
			out[key] = append([]string(nil), vals...)
		}
	}
	return out
}
