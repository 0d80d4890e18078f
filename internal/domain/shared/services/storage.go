package services

import (
	"context"
	"io"
)

type UploadInput struct {
	Key         string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type StoredFile struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

// FileStorage is the blob store holding uploaded originals, logos and exports.
type FileStorage interface {
	Upload(ctx context.Context, in UploadInput) (*StoredFile, error)
	Remove(ctx context.Context, key string) error
	URL(ctx context.Context, key string) (string, error)
}
