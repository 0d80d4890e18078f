package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/config"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

const defaultPresignExpiry = time.Hour

// MinioStorage stores uploaded files in an S3 compatible bucket.
type MinioStorage struct {
	client *minio.Client
	config config.StorageConfig
	logger logger.Interface
}

var _ services.FileStorage = (*MinioStorage)(nil)

func NewMinioStorage(cfg config.StorageConfig, log logger.Interface) (*MinioStorage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioStorage{
		client: client,
		config: cfg,
		logger: log,
	}, nil
}

// EnsureBucket creates the bucket if it doesn't exist
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.config.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.config.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	s.logger.Infow("storage bucket created", "bucket", s.config.Bucket)
	return nil
}

func (s *MinioStorage) Upload(ctx context.Context, in services.UploadInput) (*services.StoredFile, error) {
	if in.Key == "" {
		return nil, fmt.Errorf("object key is required")
	}
	info, err := s.client.PutObject(ctx, s.config.Bucket, in.Key, in.Body, in.Size, minio.PutObjectOptions{
		ContentType:        in.ContentType,
		ContentDisposition: fmt.Sprintf("inline; filename=%q", in.FileName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return &services.StoredFile{
		Key:         in.Key,
		URL:         s.PublicURL(in.Key),
		ContentType: in.ContentType,
		Size:        info.Size,
	}, nil
}

func (s *MinioStorage) Remove(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.config.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// URL returns a presigned download URL for key.
func (s *MinioStorage) URL(ctx context.Context, key string) (string, error) {
	expiry := defaultPresignExpiry
	if s.config.PresignMinutes > 0 {
		expiry = time.Duration(s.config.PresignMinutes) * time.Minute
	}
	u, err := s.client.PresignedGetObject(ctx, s.config.Bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return u.String(), nil
}

// PublicURL is the stable address stored on documents. PublicBaseURL wins
// over the endpoint when a CDN or reverse proxy fronts the bucket.
func (s *MinioStorage) PublicURL(key string) string {
	escaped := escapeKey(key)
	if base := strings.TrimRight(s.config.PublicBaseURL, "/"); base != "" {
		return fmt.Sprintf("%s/%s", base, escaped)
	}
	protocol := "http"
	if s.config.UseSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, s.config.Endpoint, s.config.Bucket, escaped)
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
