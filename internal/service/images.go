package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"github.com/pribylovaa/go-photo-feed/pkg/log"
	"golang.org/x/sync/errgroup"
)

const maxAltLen = 500

// ImageUploadURL выдаёт presigned PUT для загрузки изображения актором.
// Ограничения типа и размера проверяет объектное хранилище.
func (s *Service) ImageUploadURL(ctx context.Context, actorID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service/images/ImageUploadURL"

	lg := log.From(ctx).With("op", op, "actor_id", actorID, "content_type", contentType)

	if s.images == nil {
		lg.Warn("image uploads disabled")
		return nil, fmt.Errorf("%s: %w: images disabled", op, ErrInvalidArgument)
	}

	if strings.TrimSpace(actorID) == "" {
		lg.Warn("invalid argument: empty actor")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	info, err := s.images.ImageUploadURL(ctx, actorID, contentType, contentLength)
	if err != nil {
		return nil, s.imageErr(lg, op, err)
	}

	return info, nil
}

// ConfirmImage проверяет, что объект key загружен актором, и возвращает его публичный URL.
func (s *Service) ConfirmImage(ctx context.Context, actorID, key string) (string, error) {
	const op = "service/images/ConfirmImage"

	lg := log.From(ctx).With("op", op, "actor_id", actorID, "key", key)

	if s.images == nil {
		lg.Warn("image uploads disabled")
		return "", fmt.Errorf("%s: %w: images disabled", op, ErrInvalidArgument)
	}

	src, err := s.images.ConfirmImage(ctx, actorID, key)
	if err != nil {
		return "", s.imageErr(lg, op, err)
	}

	return src, nil
}

// confirmImages подтверждает все изображения поста параллельно.
// Порядок ImageRef совпадает с порядком входа, id — позиция с единицы.
func (s *Service) confirmImages(ctx context.Context, actorID string, in []ImageInput) ([]models.ImageRef, error) {
	if len(in) == 0 {
		return nil, nil
	}

	for _, img := range in {
		if strings.TrimSpace(img.Key) == "" || utf8.RuneCountInString(img.Alt) > maxAltLen {
			return nil, storage.ErrInvalidArgument
		}
	}

	refs := make([]models.ImageRef, len(in))

	g, gctx := errgroup.WithContext(ctx)
	for i, img := range in {
		key := strings.TrimSpace(img.Key)
		g.Go(func() error {
			src, err := s.images.ConfirmImage(gctx, actorID, key)
			if err != nil {
				return err
			}

			refs[i] = models.ImageRef{ID: i + 1, Src: src, Alt: strings.TrimSpace(img.Alt)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return refs, nil
}

// imageErr переводит ошибку объектного хранилища в сервисный сентинел.
func (s *Service) imageErr(lg *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFoundImage):
		lg.Warn("image not uploaded")
		return fmt.Errorf("%s: %w: image not uploaded", op, ErrInvalidArgument)
	case errors.Is(err, storage.ErrInvalidArgument):
		lg.Warn("invalid image", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		lg.Warn("context done", "err", err)
		return fmt.Errorf("%s: %w", op, err)
	default:
		lg.Error("image storage error", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}
}
