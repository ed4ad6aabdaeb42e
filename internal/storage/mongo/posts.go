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

// CreatePost вставляет пост. Счётчики автора здесь не трогаются:
// это отдельные вызовы Counter Ledger.
func (m *Mongo) CreatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	const op = "storage/mongo/CreatePost"

	ts := now()
	if strings.TrimSpace(post.ID) == "" {
		post.ID = uuid.NewString()
	}
	post.CreatedAt = ts
	post.UpdatedAt = ts
	post.UserLikes = nonNil(post.UserLikes)
	post.UserShares = nonNil(post.UserShares)
	normalizeSnapshot(&post.User)

	if _, err := m.posts.InsertOne(ctx, post); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	return &post, nil
}

// PostByID возвращает пост. Нет записи — storage.ErrNotFound.
func (m *Mongo) PostByID(ctx context.Context, id string) (*models.Post, error) {
	const op = "storage/mongo/PostByID"

	var out models.Post
	if err := m.posts.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	normalizePost(&out)
	return &out, nil
}

// DeletePost удаляет пост. Комментарии и записи saved остаются:
// каскадная очистка не выполняется.
func (m *Mongo) DeletePost(ctx context.Context, id string) error {
	const op = "storage/mongo/DeletePost"

	res, err := m.posts.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListPostsByUser — посты автора. Сортировка: createdAt DESC, _id DESC.
func (m *Mongo) ListPostsByUser(ctx context.Context, userID string, p models.ListParams) (*models.PostPage, error) {
	const op = "storage/mongo/ListPostsByUser"

	limit := limitOrDefault(m.cfg, p.PageSize)

	filter, err := afterCursor(bson.D{{Key: "createdBy", Value: userID}}, p.PageToken, "createdAt", "_id", true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
	}

	cur, err := m.posts.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	items, next, err := decodeAll(ctx, cur, limit, func(p *models.Post) (time.Time, string) {
		return p.CreatedAt, p.ID
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range items {
		normalizePost(&items[i])
	}

	return &models.PostPage{Items: items, NextPageToken: next}, nil
}

func normalizePost(p *models.Post) {
	p.UserLikes = nonNil(p.UserLikes)
	p.UserShares = nonNil(p.UserShares)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	normalizeSnapshot(&p.User)
}
