package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"github.com/pribylovaa/go-photo-feed/pkg/log"
)

// Follow подписывает актора на targetID. Повторная подписка — no-op.
func (s *Service) Follow(ctx context.Context, actorID, targetID string) error {
	return s.follow(ctx, "service/ledger/Follow", actorID, targetID, storage.OpAdd)
}

// Unfollow отписывает актора от targetID.
func (s *Service) Unfollow(ctx context.Context, actorID, targetID string) error {
	return s.follow(ctx, "service/ledger/Unfollow", actorID, targetID, storage.OpRemove)
}

func (s *Service) follow(ctx context.Context, op, actorID, targetID string, setOp storage.SetOp) error {
	actorID, targetID = strings.TrimSpace(actorID), strings.TrimSpace(targetID)
	lg := log.From(ctx).With("op", op, "actor_id", actorID, "target_id", targetID)

	if actorID == "" || targetID == "" || actorID == targetID {
		lg.Warn("invalid argument")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	err := s.storage.SetFollow(ctx, actorID, targetID, setOp)
	s.metrics.LedgerOp("follow_"+setOp.String(), err)
	if err != nil {
		return mapStorageErr(lg, op, err)
	}

	lg.Debug("follow updated", "set_op", setOp.String())
	return nil
}

// LikePost ставит лайк посту.
func (s *Service) LikePost(ctx context.Context, actorID, postID string) error {
	return s.like(ctx, "service/ledger/LikePost", storage.TargetPost, actorID, postID, storage.OpAdd)
}

// UnlikePost снимает лайк с поста.
func (s *Service) UnlikePost(ctx context.Context, actorID, postID string) error {
	return s.like(ctx, "service/ledger/UnlikePost", storage.TargetPost, actorID, postID, storage.OpRemove)
}

// LikeComment ставит лайк комментарию.
func (s *Service) LikeComment(ctx context.Context, actorID, commentID string) error {
	return s.like(ctx, "service/ledger/LikeComment", storage.TargetComment, actorID, commentID, storage.OpAdd)
}

// UnlikeComment снимает лайк с комментария.
func (s *Service) UnlikeComment(ctx context.Context, actorID, commentID string) error {
	return s.like(ctx, "service/ledger/UnlikeComment", storage.TargetComment, actorID, commentID, storage.OpRemove)
}

// like — userLikes цели и Stats.likes актора одной транзакцией.
func (s *Service) like(ctx context.Context, op string, target storage.LikeTarget, actorID, targetID string, setOp storage.SetOp) error {
	actorID, targetID = strings.TrimSpace(actorID), strings.TrimSpace(targetID)
	lg := log.From(ctx).With("op", op, "actor_id", actorID, "target", target.String(), "target_id", targetID)

	if actorID == "" || targetID == "" {
		lg.Warn("invalid argument")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	err := s.storage.SetLike(ctx, target, targetID, actorID, setOp)
	s.metrics.LedgerOp("like_"+target.String()+"_"+setOp.String(), err)
	if err != nil {
		return mapStorageErr(lg, op, err)
	}

	return nil
}

// SavePost сохраняет пост в коллекцию актора. Пост должен существовать.
func (s *Service) SavePost(ctx context.Context, actorID, postID string) error {
	const op = "service/ledger/SavePost"

	actorID, postID = strings.TrimSpace(actorID), strings.TrimSpace(postID)
	lg := log.From(ctx).With("op", op, "actor_id", actorID, "post_id", postID)

	if actorID == "" || postID == "" {
		lg.Warn("invalid argument")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.storage.PostByID(ctx, postID); err != nil {
		return mapStorageErr(lg, op, err)
	}

	err := s.storage.SetSaved(ctx, actorID, postID, storage.OpAdd)
	s.metrics.LedgerOp("saved_add", err)
	if err != nil {
		return mapStorageErr(lg, op, err)
	}

	return nil
}

// UnsavePost удаляет пост из сохранённых. Отсутствие записи — no-op.
func (s *Service) UnsavePost(ctx context.Context, actorID, postID string) error {
	const op = "service/ledger/UnsavePost"

	actorID, postID = strings.TrimSpace(actorID), strings.TrimSpace(postID)
	lg := log.From(ctx).With("op", op, "actor_id", actorID, "post_id", postID)

	if actorID == "" || postID == "" {
		lg.Warn("invalid argument")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	err := s.storage.SetSaved(ctx, actorID, postID, storage.OpRemove)
	s.metrics.LedgerOp("saved_remove", err)
	if err != nil {
		return mapStorageErr(lg, op, err)
	}

	return nil
}

// ListSaved — сохранённые посты пользователя, сначала новые. Видны только ему и админу.
func (s *Service) ListSaved(ctx context.Context, actorID, userID string, p models.ListParams) (*models.SavedPage, error) {
	const op = "service/ledger/ListSaved"

	userID = strings.TrimSpace(userID)
	lg := log.From(ctx).With("op", op, "actor_id", actorID, "user_id", userID)

	if userID == "" || p.PageSize < 0 {
		lg.Warn("invalid argument")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.authorize(ctx, actorID, userID); err != nil {
		return nil, authErr(lg, op, err)
	}

	page, err := s.storage.SavedByUser(ctx, userID, p)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return page, nil
}

// StatsByUser возвращает Stats пользователя.
func (s *Service) StatsByUser(ctx context.Context, userID string) (*models.Stats, error) {
	const op = "service/ledger/StatsByUser"

	userID = strings.TrimSpace(userID)
	lg := log.From(ctx).With("op", op, "user_id", userID)

	if userID == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	st, err := s.storage.StatsByUser(ctx, userID)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return st, nil
}
