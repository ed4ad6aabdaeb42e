package minio

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
)

const imagesPrefix = "images"

// ImageUploadURL валидирует тип и размер и выдаёт presigned PUT
// для ключа images/<userID>/<uuid>.<ext>.
func (s *ImagesStorage) ImageUploadURL(ctx context.Context, userID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "storage/minio/ImageUploadURL"

	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%s: %w: empty user id", op, storage.ErrInvalidArgument)
	}

	if contentLength <= 0 || contentLength > s.cfg.Images.MaxSizeBytes {
		return nil, fmt.Errorf("%s: %w: size %d", op, storage.ErrInvalidArgument, contentLength)
	}

	if !slices.Contains(s.cfg.Images.AllowedContentTypes, contentType) {
		return nil, fmt.Errorf("%s: %w: content type %q", op, storage.ErrInvalidArgument, contentType)
	}

	key := path.Join(imagesPrefix, userID, uuid.NewString()+extFor(contentType))

	u, err := s.client.PresignedPutObject(ctx, s.cfg.S3.Bucket, key, s.cfg.S3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.UploadInfo{
		UploadURL: u.String(),
		Key:       key,
		Expires:   s.cfg.S3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": strconv.FormatInt(contentLength, 10),
		},
	}, nil
}

// ConfirmImage подтверждает загрузку: ключ принадлежит userID, объект есть,
// размер и тип в пределах ограничений. Возвращает публичный URL.
func (s *ImagesStorage) ConfirmImage(ctx context.Context, userID, key string) (string, error) {
	const op = "storage/minio/ConfirmImage"

	if !ownsKey(userID, key) {
		return "", fmt.Errorf("%s: %w: foreign key", op, storage.ErrInvalidArgument)
	}

	info, err := s.client.StatObject(ctx, s.cfg.S3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		resp := mclient.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == 404 {
			return "", fmt.Errorf("%s: %w", op, storage.ErrNotFoundImage)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if info.Size <= 0 || info.Size > s.cfg.Images.MaxSizeBytes {
		return "", fmt.Errorf("%s: %w: size %d", op, storage.ErrInvalidArgument, info.Size)
	}

	if ct := info.ContentType; ct != "" && !slices.Contains(s.cfg.Images.AllowedContentTypes, ct) {
		return "", fmt.Errorf("%s: %w: content type %q", op, storage.ErrInvalidArgument, ct)
	}

	return s.publicBase + "/" + key, nil
}

// ownsKey: ключ лежит строго под images/<userID>/ и не содержит обходов пути.
func ownsKey(userID, key string) bool {
	if strings.TrimSpace(userID) == "" || strings.Contains(key, "..") {
		return false
	}

	prefix := imagesPrefix + "/" + userID + "/"

	return strings.HasPrefix(key, prefix) && len(key) > len(prefix)
}

func extFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}
