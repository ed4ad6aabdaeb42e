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

const maxCommentLen = 1000

// CreateCommentInput — новый комментарий.
// Ровно одно из PostID (корневой комментарий) и ReplyTo (ответ на комментарий).
type CreateCommentInput struct {
	PostID  string
	ReplyTo string
	Text    string
}

// CreateComment создаёт комментарий или ответ.
//
// Треды плоские: ответ на любой комментарий X треда с корнем R получает
// parent = {R, X.createdBy, R}; если X не корень, mention = X.user.username.
// Конкурентно: вставка, userComments поста +1, для ответа userComments корня +1.
// Родитель счётчика уже удалён — это не ошибка.
func (s *Service) CreateComment(ctx context.Context, actorID string, in CreateCommentInput) (*models.Comment, error) {
	const op = "service/comments/CreateComment"

	postID := strings.TrimSpace(in.PostID)
	replyTo := strings.TrimSpace(in.ReplyTo)
	text := strings.TrimSpace(in.Text)

	lg := log.From(ctx).With("op", op, "actor_id", actorID, "post_id", postID, "reply_to", replyTo)

	if strings.TrimSpace(actorID) == "" || (postID == "") == (replyTo == "") {
		lg.Warn("invalid argument: exactly one of post_id, reply_to required")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if text == "" || utf8.RuneCountInString(text) > maxCommentLen {
		lg.Warn("invalid argument: comment text")
		return nil, fmt.Errorf("%s: %w: comment text", op, ErrInvalidArgument)
	}

	author, err := s.storage.UserByID(ctx, actorID)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	snap, err := snapshot.Embed(*author)
	if err != nil {
		lg.Warn("incomplete profile", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrIncompleteProfile)
	}

	c := models.Comment{
		ID:        uuid.NewString(),
		Comment:   text,
		CreatedBy: actorID,
		User:      snap,
	}

	if replyTo == "" {
		post, err := s.storage.PostByID(ctx, postID)
		if err != nil {
			return nil, mapStorageErr(lg, op, err)
		}

		c.PostID = post.ID
		c.Parent = models.CommentParent{ID: post.ID, ParentID: post.CreatedBy}
	} else {
		target, err := s.storage.CommentByID(ctx, replyTo)
		if err != nil {
			return nil, mapStorageErr(lg, op, err)
		}

		root := target.ThreadRoot()
		c.PostID = target.PostID
		c.Parent = models.CommentParent{ID: root, ParentID: target.CreatedBy, ReplyParent: &root}

		if target.ID != root {
			mention := target.User.Username
			c.Mention = &mention
		}
	}

	wctx, cancel := s.detached(ctx)
	defer cancel()

	var created *models.Comment
	steps := []func() error{
		func() (err error) {
			created, err = s.storage.CreateComment(wctx, c)
			return err
		},
		func() error { return s.storage.AdjustCommentCount(wctx, c.PostID, 1) },
	}
	if c.IsReply() {
		steps = append(steps, func() error { return s.storage.AdjustReplyCount(wctx, c.Parent.ID, 1) })
	}

	errs := awaitAll(steps...)
	for _, e := range errs[1:] {
		s.metrics.LedgerOp("create_comment_counters", e)
		switch {
		case e == nil:
		case errors.Is(e, storage.ErrParentNotFound):
			lg.Warn("counter parent already deleted", "err", e)
		default:
			lg.Error("counter drift: increment failed", "comment_id", c.ID, "err", e)
		}
	}

	if errs[0] != nil {
		return nil, mapStorageErr(lg, op, errs[0])
	}

	lg.Info("comment created", "comment_id", created.ID, "reply", c.IsReply())
	return created, nil
}

// CommentByID возвращает комментарий.
func (s *Service) CommentByID(ctx context.Context, id string) (*models.Comment, error) {
	const op = "service/comments/CommentByID"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "comment_id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	c, err := s.storage.CommentByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return c, nil
}

// ListPostComments — корневые комментарии поста, сначала новые.
func (s *Service) ListPostComments(ctx context.Context, postID string, p models.ListParams) (*models.CommentPage, error) {
	const op = "service/comments/ListPostComments"

	postID = strings.TrimSpace(postID)
	lg := log.From(ctx).With("op", op, "post_id", postID)

	if postID == "" || p.PageSize < 0 {
		lg.Warn("invalid argument")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	page, err := s.storage.ListComments(ctx, postID, p)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return page, nil
}

// ListReplies — ответы треда, сначала старые.
func (s *Service) ListReplies(ctx context.Context, rootID string, p models.ListParams) (*models.CommentPage, error) {
	const op = "service/comments/ListReplies"

	rootID = strings.TrimSpace(rootID)
	lg := log.From(ctx).With("op", op, "comment_id", rootID)

	if rootID == "" || p.PageSize < 0 {
		lg.Warn("invalid argument")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	page, err := s.storage.ListReplies(ctx, rootID, p)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return page, nil
}

// DeleteComment удаляет комментарий (автор, владелец поста или администратор).
// Ответы удалённого корня не трогаются; их счётчики корня при дальнейшем
// удалении просто не находят родителя.
func (s *Service) DeleteComment(ctx context.Context, actorID, commentID string) error {
	const op = "service/comments/DeleteComment"

	commentID = strings.TrimSpace(commentID)
	lg := log.From(ctx).With("op", op, "comment_id", commentID, "actor_id", actorID)

	if commentID == "" {
		lg.Warn("invalid argument: empty id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	c, err := s.storage.CommentByID(ctx, commentID)
	if err != nil {
		return mapStorageErr(lg, op, err)
	}

	owners := []string{c.CreatedBy}
	if post, err := s.storage.PostByID(ctx, c.PostID); err == nil {
		owners = append(owners, post.CreatedBy)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return mapStorageErr(lg, op, err)
	}

	if err := s.authorize(ctx, actorID, owners...); err != nil {
		return authErr(lg, op, err)
	}

	wctx, cancel := s.detached(ctx)
	defer cancel()

	steps := []func() error{
		func() error { return s.storage.DeleteComment(wctx, commentID) },
		func() error { return s.storage.AdjustCommentCount(wctx, c.PostID, -1) },
	}
	if c.IsReply() {
		steps = append(steps, func() error { return s.storage.AdjustReplyCount(wctx, c.Parent.ID, -1) })
	}

	errs := awaitAll(steps...)

	// Счётчик без родителя ничего не изменил: ни успех, ни сбой.
	noop := 0
	for i, e := range errs[1:] {
		if errors.Is(e, storage.ErrParentNotFound) {
			lg.Warn("counter parent already deleted", "err", e)
			errs[i+1] = nil
			noop++
		}
		s.metrics.LedgerOp("delete_comment_counters", errs[i+1])
	}

	switch failed := countFailed(errs); {
	case failed == 0:
		lg.Info("comment deleted")
		return nil
	case errs[0] != nil && failed+noop == len(errs):
		return mapStorageErr(lg, op, errs[0])
	default:
		lg.Error("partial deletion", "errs", errors.Join(errs...))
		return fmt.Errorf("%s: %w", op, ErrPartialDeletion)
	}
}
