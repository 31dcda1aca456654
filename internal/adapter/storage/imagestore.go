// Package storage stores place images in S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/heartmarshall/tringgo-backend/internal/config"
)

// NewClient creates a MinIO client and makes sure the bucket exists.
func NewClient(ctx context.Context, cfg config.StorageConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return client, nil
}

// ImageStore writes image objects and builds their public URLs.
type ImageStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
	log     *slog.Logger
}

// NewImageStore creates an ImageStore. Objects are addressed under
// cfg.PublicBaseURL when set, otherwise directly on the storage endpoint.
func NewImageStore(client *minio.Client, cfg config.StorageConfig, logger *slog.Logger) *ImageStore {
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + cfg.Endpoint + "/" + cfg.Bucket
	}

	return &ImageStore{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: base,
		log:     logger.With("adapter", "storage"),
	}
}

// Put uploads body under key and returns its public URL.
func (s *ImageStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	s.log.DebugContext(ctx, "image stored", slog.String("key", key), slog.Int64("size", info.Size))
	return s.URL(key), nil
}

// URL returns the public URL of key.
func (s *ImageStore) URL(key string) string {
	escaped := make([]string, 0, 4)
	for _, part := range strings.Split(path.Clean("/"+key)[1:], "/") {
		escaped = append(escaped, url.PathEscape(part))
	}
	return s.baseURL + "/" + strings.Join(escaped, "/")
}

// Ping reports whether the bucket is reachable.
func (s *ImageStore) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}
