package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Service stores profile images in Amazon S3 (or compatible APIs).
type S3Service struct {
	client   *s3.Client
	uploader *manager.Uploader
	opts     Options
}

func NewS3Service(client *s3.Client, opts Options) *S3Service {
	return &S3Service{
		client:   client,
		uploader: manager.NewUploader(client),
		opts:     opts,
	}
}

func (s *S3Service) Put(ctx context.Context, name, contentType string, body io.Reader) (Object, error) {
	if s.opts.Bucket == "" {
		return Object{}, fmt.Errorf("storage bucket is required")
	}
	key := s.objectKey(name)

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.opts.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return Object{}, fmt.Errorf("upload %s: %w", key, err)
	}
	return Object{Key: key, URL: s.objectURL(key)}, nil
}

func (s *S3Service) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key is required")
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *S3Service) objectKey(name string) string {
	prefix := strings.Trim(s.opts.KeyPrefix, "/")
	name = strings.TrimLeft(name, "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

func (s *S3Service) objectURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	switch {
	case s.opts.PublicBaseURL != "":
		return strings.TrimRight(s.opts.PublicBaseURL, "/") + "/" + escaped
	case s.opts.Endpoint != "":
		return strings.TrimRight(s.opts.Endpoint, "/") + "/" + s.opts.Bucket + "/" + escaped
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.opts.Bucket, s.opts.Region, escaped)
	}
}

var _ ImageStore = (*S3Service)(nil)
