package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/snapshot"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"github.com/pribylovaa/go-photo-feed/pkg/log"
)

const maxCaptionLen = 2200

// ImageInput — подтверждаемая загрузка: ключ объекта из ImageUploadURL и alt-текст.
type ImageInput struct {
	Key string
	Alt string
}

// CreatePostInput — создание поста: подпись и/или изображения.
type CreatePostInput struct {
	Caption string
	Images  []ImageInput
}

// CreatePost создаёт пост от имени actorID.
//
// Порядок:
//  1. все изображения подтверждаются (объект загружен, тип/размер в пределах);
//  2. в пост встраивается снапшот автора в текущем состоянии (до инкремента счётчиков);
//  3. конкурентно: вставка поста, totalPosts+1, totalPhotos+1 (если есть изображения),
//     Stats.posts += id; ожидаются все шаги.
//
// Встроенный user.totalPosts поэтому на единицу меньше, чем у пользователя после
// создания, до следующего fan-out. Сбой инкремента не откатывает пост: пост
// возвращается, расхождение счётчика логируется.
//
// Ошибки: ErrInvalidArgument, ErrNotFound (автор), ErrIncompleteProfile, ErrAlreadyExists, ErrInternal.
func (s *Service) CreatePost(ctx context.Context, actorID string, in CreatePostInput) (*models.Post, error) {
	const op = "service/posts/CreatePost"

	lg := log.From(ctx).With("op", op, "actor_id", actorID)

	if strings.TrimSpace(actorID) == "" {
		lg.Warn("invalid argument: empty actor")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	caption := strings.TrimSpace(in.Caption)
	if caption == "" && len(in.Images) == 0 {
		lg.Warn("invalid argument: empty post")
		return nil, fmt.Errorf("%s: %w: caption or images required", op, ErrInvalidArgument)
	}

	if utf8.RuneCountInString(caption) > maxCaptionLen {
		lg.Warn("invalid argument: caption too long")
		return nil, fmt.Errorf("%s: %w: caption", op, ErrInvalidArgument)
	}

	if len(in.Images) > 0 && s.images == nil {
		lg.Warn("invalid argument: image uploads disabled")
		return nil, fmt.Errorf("%s: %w: images disabled", op, ErrInvalidArgument)
	}

	if s.cfg != nil && len(in.Images) > s.cfg.Images.MaxPerPost {
		lg.Warn("invalid argument: too many images", "count", len(in.Images))
		return nil, fmt.Errorf("%s: %w: too many images", op, ErrInvalidArgument)
	}

	author, err := s.storage.UserByID(ctx, actorID)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	refs, err := s.confirmImages(ctx, actorID, in.Images)
	if err != nil {
		return nil, s.imageErr(lg, op, err)
	}

	snap, err := snapshot.Embed(*author)
	if err != nil {
		lg.Warn("incomplete profile", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrIncompleteProfile)
	}

	post := models.Post{
		ID:        uuid.NewString(),
		Caption:   caption,
		Images:    refs,
		CreatedBy: actorID,
		User:      snap,
	}

	wctx, cancel := s.detached(ctx)
	defer cancel()

	var created *models.Post
	steps := []func() error{
		func() (err error) {
			created, err = s.storage.CreatePost(wctx, post)
			return err
		},
		func() error { return s.storage.AdjustPostCount(wctx, actorID, 1) },
		func() error { return s.storage.SetStat(wctx, actorID, storage.StatPosts, post.ID, storage.OpAdd) },
	}
	if post.HasImages() {
		steps = append(steps, func() error { return s.storage.AdjustPhotoCount(wctx, actorID, 1) })
	}

	errs := awaitAll(steps...)
	for i, e := range errs[1:] {
		s.metrics.LedgerOp("create_post_counters", e)
		if e != nil {
			lg.Error("counter drift: increment failed", "step", i+1, "post_id", post.ID, "err", e)
		}
	}

	if errs[0] != nil {
		return nil, mapStorageErr(lg, op, errs[0])
	}

	lg.Info("post created", "post_id", created.ID, "images", len(refs))
	return created, nil
}

// PostByID возвращает пост.
func (s *Service) PostByID(ctx context.Context, id string) (*models.Post, error) {
	const op = "service/posts/PostByID"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "post_id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	p, err := s.storage.PostByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return p, nil
}

// ListUserPosts — посты пользователя, сначала новые.
func (s *Service) ListUserPosts(ctx context.Context, userID string, p models.ListParams) (*models.PostPage, error) {
	const op = "service/posts/ListUserPosts"

	userID = strings.TrimSpace(userID)
	lg := log.From(ctx).With("op", op, "user_id", userID)

	if userID == "" || p.PageSize < 0 {
		lg.Warn("invalid argument")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	page, err := s.storage.ListPostsByUser(ctx, userID, p)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return page, nil
}

// DeletePost удаляет пост (владелец или администратор).
// Удаление и декременты (totalPosts, totalPhotos, Stats.posts) идут конкурентно,
// ожидаются все. Часть шагов упала — ErrPartialDeletion: счётчик остаётся
// устаревшим и не лечится.
func (s *Service) DeletePost(ctx context.Context, actorID, postID string) error {
	const op = "service/posts/DeletePost"

	postID = strings.TrimSpace(postID)
	lg := log.From(ctx).With("op", op, "post_id", postID, "actor_id", actorID)

	if postID == "" {
		lg.Warn("invalid argument: empty id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	post, err := s.storage.PostByID(ctx, postID)
	if err != nil {
		return mapStorageErr(lg, op, err)
	}

	if err := s.authorize(ctx, actorID, post.CreatedBy); err != nil {
		return authErr(lg, op, err)
	}

	wctx, cancel := s.detached(ctx)
	defer cancel()

	owner := post.CreatedBy
	steps := []func() error{
		func() error { return s.storage.DeletePost(wctx, postID) },
		func() error { return s.storage.AdjustPostCount(wctx, owner, -1) },
		func() error { return s.storage.SetStat(wctx, owner, storage.StatPosts, postID, storage.OpRemove) },
	}
	if post.HasImages() {
		steps = append(steps, func() error { return s.storage.AdjustPhotoCount(wctx, owner, -1) })
	}

	errs := awaitAll(steps...)
	for _, e := range errs[1:] {
		s.metrics.LedgerOp("delete_post_counters", e)
	}

	switch failed := countFailed(errs); {
	case failed == 0:
		lg.Info("post deleted")
		return nil
	case failed == len(errs):
		return mapStorageErr(lg, op, errs[0])
	default:
		lg.Error("partial deletion", "errs", errors.Join(errs...))
		return fmt.Errorf("%s: %w", op, ErrPartialDeletion)
	}
}
