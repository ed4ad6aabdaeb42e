// minio — реализация storage.Images на базе MinIO/S3.
// minio.go — конструктор клиента: нормализует endpoint, выбирает Secure по схеме
// и проверяет наличие бакета. images.go — presigned PUT и подтверждение загрузки.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/go-photo-feed/internal/config"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
)

// ImagesStorage — адаптер MinIO для изображений постов.
type ImagesStorage struct {
	cfg    *config.Config
	client *mclient.Client
	// publicBase — префикс публичных URL: S3.PublicBaseURL или <endpoint>/<bucket>.
	publicBase string
}

var _ storage.Images = (*ImagesStorage)(nil)

// New создаёт клиент MinIO и fail-fast проверяет доступность бакета.
func New(ctx context.Context, cfg *config.Config) (*ImagesStorage, error) {
	const op = "storage/minio/New"

	endpoint := cfg.S3.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")
	scheme := "http"

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
		scheme = u.Scheme
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.S3.RootUser, cfg.S3.RootPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.S3.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.S3.Bucket)
	}

	base := strings.TrimRight(cfg.S3.PublicBaseURL, "/")
	if base == "" {
		base = scheme + "://" + endpoint + "/" + cfg.S3.Bucket
	}

	return &ImagesStorage{cfg: cfg, client: client, publicBase: base}, nil
}

// Ping — readiness: бакет доступен.
func (s *ImagesStorage) Ping(ctx context.Context) error {
	if _, err := s.client.BucketExists(ctx, s.cfg.S3.Bucket); err != nil {
		return fmt.Errorf("storage/minio/Ping: %w", err)
	}

	return nil
}
