package binder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// JSON reads a JSON object body. Integral numbers decode to int and the rest
// to float64; nested objects and arrays keep the usual map[string]any and
// []any shapes.
func JSON(opts ...Option) Source {
	o := newOptions(opts)

	return func(r *http.Request) (map[string]any, error) {
		if err := r.Context().Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return nil, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		if mt := mediaType(contentType); mt != "application/json" && !strings.HasSuffix(mt, "+json") {
			return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}

		body, err := readBody(r, o.maxBodySize)
		if err != nil {
			return nil, err
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()

		var values map[string]any
		if err := dec.Decode(&values); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}
		if values == nil {
			return nil, fmt.Errorf("%w: expected a JSON object", ErrFailedToParseJSON)
		}
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return normalizeNumbers(values).(map[string]any), nil
	}
}

func readBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
	}
	return body, nil
}

func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalizeNumbers(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = normalizeNumbers(item)
		}
		return val
	case json.Number:
		if n, err := val.Int64(); err == nil && n >= math.MinInt && n <= math.MaxInt {
			return int(n)
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}
