// service содержит бизнес-логику photo-feed:
//   - профиль пользователя, подписки, admin-флаги (users.go, ledger.go);
//   - посты и комментарии со встроенным снапшотом автора (posts.go, comments.go);
//   - лайки, сохранённые посты, Stats — Counter Ledger (ledger.go);
//   - fan-out снапшотов профиля по событию изменения пользователя (propagator.go);
//   - presigned загрузка изображений (images.go).
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/go-photo-feed/internal/config"
	"github.com/pribylovaa/go-photo-feed/internal/metrics"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
)

var (
	// ErrInvalidArgument — неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности (id, username).
	ErrAlreadyExists = errors.New("already exists")
	// ErrPermissionDenied — у актора нет прав на операцию.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidCursor — битый/чужой page_token.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrIncompleteProfile — у автора нет полей, обязательных для снапшота.
	ErrIncompleteProfile = errors.New("incomplete profile")
	// ErrBatchCommit — атомарная пачка записей не применена; состояние не изменено.
	ErrBatchCommit = errors.New("batch commit failed")
	// ErrPartialDeletion — удаление и декремент счётчиков разошлись; счётчик устарел.
	ErrPartialDeletion = errors.New("partial deletion")
	// ErrInternal — внутренняя ошибка (стораж/БД/контекст/и т.д.).
	ErrInternal = errors.New("internal")
)

// Service — бизнес-логика photo-feed.
// images может быть nil: загрузка изображений выключена конфигурацией.
type Service struct {
	cfg     *config.Config
	storage storage.Storage
	images  storage.Images
	metrics *metrics.Collector
}

// New создаёт новый экземпляр Service. m может быть nil.
func New(st storage.Storage, images storage.Images, cfg *config.Config, m *metrics.Collector) *Service {
	return &Service{
		cfg:     cfg,
		storage: st,
		images:  images,
		metrics: m,
	}
}

// mapStorageErr переводит ошибку хранилища в сервисный сентинел и логирует:
// клиентские ошибки — Warn, сбои хранилища — Error.
func mapStorageErr(lg *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		lg.Warn("not found")
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, storage.ErrAlreadyExists):
		lg.Warn("already exists")
		return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	case errors.Is(err, storage.ErrInvalidCursor):
		lg.Warn("invalid cursor")
		return fmt.Errorf("%s: %w", op, ErrInvalidCursor)
	case errors.Is(err, storage.ErrInvalidArgument):
		lg.Warn("invalid argument", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	case errors.Is(err, storage.ErrBatchCommit):
		lg.Error("batch commit failed", "err", err)
		return fmt.Errorf("%s: %w", op, ErrBatchCommit)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		lg.Warn("context done", "err", err)
		return fmt.Errorf("%s: %w", op, err)
	default:
		lg.Error("storage error", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}
}

// authorize пропускает владельца ресурса и администратора.
func (s *Service) authorize(ctx context.Context, actorID string, owners ...string) error {
	for _, o := range owners {
		if o != "" && o == actorID {
			return nil
		}
	}

	actor, err := s.storage.UserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPermissionDenied
		}

		return err
	}

	if !actor.IsAdmin {
		return ErrPermissionDenied
	}

	return nil
}
