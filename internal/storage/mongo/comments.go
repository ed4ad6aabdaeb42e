package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateComment вставляет комментарий. Parent, Mention и снапшот
// заполняет сервис; счётчики родителей — отдельные вызовы Ledger.
func (m *Mongo) CreateComment(ctx context.Context, comm models.Comment) (*models.Comment, error) {
	const op = "storage/mongo/CreateComment"

	ts := now()
	if strings.TrimSpace(comm.ID) == "" {
		comm.ID = uuid.NewString()
	}
	comm.CreatedAt = ts
	comm.UpdatedAt = ts
	comm.UserLikes = nonNil(comm.UserLikes)
	normalizeSnapshot(&comm.User)

	if _, err := m.comments.InsertOne(ctx, comm); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	return &comm, nil
}

// CommentByID возвращает комментарий. Нет записи — storage.ErrNotFound.
func (m *Mongo) CommentByID(ctx context.Context, id string) (*models.Comment, error) {
	const op = "storage/mongo/CommentByID"

	var out models.Comment
	if err := m.comments.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	normalizeComment(&out)
	return &out, nil
}

// DeleteComment удаляет комментарий (жёстко). Ответы треда остаются,
// их replyParent продолжает указывать на удалённый корень.
func (m *Mongo) DeleteComment(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteComment"

	res, err := m.comments.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListComments — корневые комментарии поста (replyParent == null).
// Сортировка: createdAt DESC, _id DESC.
func (m *Mongo) ListComments(ctx context.Context, postID string, p models.ListParams) (*models.CommentPage, error) {
	const op = "storage/mongo/ListComments"

	filter := bson.D{
		{Key: "postId", Value: postID},
		{Key: "parent.replyParent", Value: nil},
	}

	page, err := m.listComments(ctx, filter, p, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// ListReplies — ответы треда. Сортировка: createdAt ASC, _id ASC.
func (m *Mongo) ListReplies(ctx context.Context, rootID string, p models.ListParams) (*models.CommentPage, error) {
	const op = "storage/mongo/ListReplies"

	page, err := m.listComments(ctx, bson.D{{Key: "parent.replyParent", Value: rootID}}, p, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

func (m *Mongo) listComments(ctx context.Context, filter bson.D, p models.ListParams, desc bool) (*models.CommentPage, error) {
	limit := limitOrDefault(m.cfg, p.PageSize)

	filter, err := afterCursor(filter, p.PageToken, "createdAt", "_id", desc)
	if err != nil {
		return nil, storage.ErrInvalidCursor
	}

	dir := 1
	if desc {
		dir = -1
	}

	cur, err := m.comments.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: dir}, {Key: "_id", Value: dir}}).
		SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}

	items, next, err := decodeAll(ctx, cur, limit, func(c *models.Comment) (time.Time, string) {
		return c.CreatedAt, c.ID
	})
	if err != nil {
		return nil, err
	}

	for i := range items {
		normalizeComment(&items[i])
	}

	return &models.CommentPage{Items: items, NextPageToken: next}, nil
}

func normalizeComment(c *models.Comment) {
	c.UserLikes = nonNil(c.UserLikes)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	normalizeSnapshot(&c.User)
}
