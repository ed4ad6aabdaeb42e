package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFoundImage — объект (ключ) отсутствует в бакете.
	ErrNotFoundImage = errors.New("image not found")
	// ErrInvalidArgument — нарушены ограничения запроса (тип/размер/чужой ключ).
	ErrInvalidArgument = errors.New("invalid argument")
)

// UploadInfo — информация для клиента о presigned PUT загрузке.
//   - UploadURL: конечная URL для PUT-запроса.
//   - Key: ключ (путь) будущего объекта в бакете.
//   - Expires: время жизни подписи.
//   - RequiredHeader: заголовки, которые клиент ОБЯЗАН передать при PUT.
type UploadInfo struct {
	UploadURL      string
	Key            string
	Expires        time.Duration
	RequiredHeader map[string]string
}

// Images — контракт объектного хранилища изображений постов:
// upload(path, bytes) выполняет клиент по presigned URL,
// getDownloadUrl(path) — ConfirmImage после проверки факта загрузки.
type Images interface {
	// ImageUploadURL генерирует presigned PUT для ключа images/<userID>/<uuid>.<ext>.
	ImageUploadURL(ctx context.Context, userID, contentType string, contentLength int64) (*UploadInfo, error)
	// ConfirmImage проверяет факт загрузки по key (наличие, тип, размер)
	// и возвращает публичный URL объекта.
	ConfirmImage(ctx context.Context, userID, key string) (publicURL string, err error)
}
