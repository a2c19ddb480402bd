package storage

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidDataURI is returned for data: URIs that cannot be decoded.
var ErrInvalidDataURI = errors.New("invalid data uri")

var imageExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// IsDataURI reports whether s looks like an inline data: URI.
func IsDataURI(s string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "data:")
}

// DecodeImageDataURI decodes a base64 "data:image/...;base64," URI.
func DecodeImageDataURI(s string) (contentType string, data []byte, err error) {
	s = strings.TrimSpace(s)
	header, payload, ok := strings.Cut(s, ",")
	if !ok || !IsDataURI(header) {
		return "", nil, ErrInvalidDataURI
	}
	meta := strings.Split(header[len("data:"):], ";")
	contentType = strings.ToLower(strings.TrimSpace(meta[0]))
	if !strings.HasPrefix(contentType, "image/") {
		return "", nil, ErrInvalidDataURI
	}
	isBase64 := false
	for _, m := range meta[1:] {
		if strings.EqualFold(strings.TrimSpace(m), "base64") {
			isBase64 = true
		}
	}
	if !isBase64 {
		return "", nil, ErrInvalidDataURI
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(payload); err != nil {
			return "", nil, ErrInvalidDataURI
		}
	}
	if len(data) == 0 {
		return "", nil, ErrInvalidDataURI
	}
	return contentType, data, nil
}

// ExtensionFor returns a file extension for an image content type.
func ExtensionFor(contentType string) string {
	if ext, ok := imageExtensions[contentType]; ok {
		return ext
	}
	return ".img"
}
