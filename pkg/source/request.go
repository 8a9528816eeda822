package source

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/formcheck/pkg/field"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// FromRequest builds a form from an HTML form submission. It accepts
// application/x-www-form-urlencoded and multipart/form-data bodies; for the
// latter, the uploaded file's base name becomes the value of field.File.
func FromRequest(r *http.Request) (*Memory, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed content type", ErrInvalidForm)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return FromValues(r.PostForm), nil

	case "multipart/form-data":
		if !validBoundary(params["boundary"]) {
			return nil, fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
		}
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		m := FromValues(r.MultipartForm.Value)
		if fhs := r.MultipartForm.File[field.File.String()]; len(fhs) > 0 && fhs[0].Filename != "" {
			m.Set(field.File, baseName(fhs[0].Filename))
		}
		return m, nil

	default:
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
	}
}

// validBoundary applies the RFC 2046 limits: 1 to 70 characters from a
// restricted set, not ending in a space.
func validBoundary(b string) bool {
	if b == "" || len(b) > 70 || strings.HasSuffix(b, " ") {
		return false
	}
	for _, r := range b {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", r):
		default:
			return false
		}
	}
	return true
}

// baseName strips client-side directories, including Windows-style paths.
func baseName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.ReplaceAll(filepath.Base(name), "\x00", "")
	if name == "." || name == "/" || name == ".." {
		return "unnamed"
	}
	return name
}
