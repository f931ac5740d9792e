package binder

import "net/http"

// Query reads the URL query. Repeated parameters become []string.
func Query() Source {
	return func(r *http.Request) (map[string]any, error) {
		return flatten(r.URL.Query()), nil
	}
}
