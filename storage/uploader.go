package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// UploadOptions carries optional object metadata.
type UploadOptions struct {
	CacheControl string
}

// FileUploader stores objects in a bucket that is served publicly.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader, opts UploadOptions) (*UploadResult, error)
	GetPublicURL(key string) string
}
