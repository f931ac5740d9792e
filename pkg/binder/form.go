package binder

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// Form reads application/x-www-form-urlencoded and multipart/form-data
// bodies. Uploaded files become *multipart.FileHeader values, or a slice for
// repeated fields, with their filenames stripped of path components. A
// value field wins over a file field of the same name. Multipart bodies are
// capped by WithMaxMultipartSize; WithMaxMemory only decides how much of them
// stays in memory.
func Form(opts ...Option) Source {
	o := newOptions(opts)

	return func(r *http.Request) (map[string]any, error) {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return nil, fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		switch mt := mediaType(contentType); mt {
		case "application/x-www-form-urlencoded":
			if r.Body != nil {
				r.Body = http.MaxBytesReader(nil, r.Body, o.maxBodySize)
			}
			if err := r.ParseForm(); err != nil {
				return nil, formError(err, o.maxBodySize)
			}
			return flatten(r.PostForm), nil

		case "multipart/form-data":
			if err := checkBoundary(contentType); err != nil {
				return nil, err
			}
			if r.ContentLength > o.maxMultipartSize {
				return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, o.maxMultipartSize)
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(nil, r.Body, o.maxMultipartSize)
			}
			if err := r.ParseMultipartForm(o.maxMemory); err != nil {
				return nil, formError(err, o.maxMultipartSize)
			}
			if r.MultipartForm == nil {
				return make(map[string]any), nil
			}
			values := flatten(r.MultipartForm.Value)
			for name, headers := range r.MultipartForm.File {
				if _, ok := values[name]; ok || len(headers) == 0 {
					continue
				}
				for _, fh := range headers {
					fh.Filename = sanitizeFilename(fh.Filename)
				}
				if len(headers) == 1 {
					values[name] = headers[0]
				} else {
					values[name] = headers
				}
			}
			return values, nil

		default:
			return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mt)
		}
	}
}

func formError(err error, limit int64) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
	}
	return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
}

// checkBoundary rejects boundaries RFC 2046 does not allow.
func checkBoundary(contentType string) error {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: malformed content type", ErrFailedToParseForm)
	}
	boundary := params["boundary"]
	if boundary == "" || len(boundary) > 70 || strings.HasSuffix(boundary, " ") {
		return fmt.Errorf("%w: invalid boundary", ErrFailedToParseForm)
	}
	for _, c := range boundary {
		if !isBoundaryChar(c) {
			return fmt.Errorf("%w: invalid boundary", ErrFailedToParseForm)
		}
	}
	return nil
}

func isBoundaryChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	default:
		return strings.ContainsRune("'()+_,-./:=? ", c)
	}
}

// sanitizeFilename drops directory components and NUL bytes.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		return "unnamed"
	}
	return filename
}
