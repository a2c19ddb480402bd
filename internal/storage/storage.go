package storage

import (
	"context"
	"io"
)

// Object describes a stored object and where clients can fetch it.
type Object struct {
	Key string
	URL string
}

// Options conveys the destination bucket and how object URLs are built.
type Options struct {
	Bucket        string
	KeyPrefix     string
	Region        string
	Endpoint      string
	PublicBaseURL string
}

// ImageStore persists uploaded profile images.
type ImageStore interface {
	Put(ctx context.Context, name, contentType string, body io.Reader) (Object, error)
	Delete(ctx context.Context, key string) error
}
