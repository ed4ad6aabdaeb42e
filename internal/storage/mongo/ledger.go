package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setOperator — серверный оператор множества для op.
func setOperator(op storage.SetOp) (string, error) {
	switch op {
	case storage.OpAdd:
		return "$addToSet", nil
	case storage.OpRemove:
		return "$pull", nil
	default:
		return "", storage.ErrInvalidArgument
	}
}

// AdjustPostCount — $inc totalPosts у пользователя.
func (m *Mongo) AdjustPostCount(ctx context.Context, userID string, delta int64) error {
	return m.incUser(ctx, "storage/mongo/AdjustPostCount", userID, "totalPosts", delta)
}

// AdjustPhotoCount — $inc totalPhotos у пользователя.
func (m *Mongo) AdjustPhotoCount(ctx context.Context, userID string, delta int64) error {
	return m.incUser(ctx, "storage/mongo/AdjustPhotoCount", userID, "totalPhotos", delta)
}

func (m *Mongo) incUser(ctx context.Context, op, userID, field string, delta int64) error {
	res, err := m.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: userID}},
		bson.D{
			{Key: "$inc", Value: bson.D{
				{Key: field, Value: delta},
				{Key: "version", Value: 1},
			}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now()}}},
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// AdjustCommentCount — $inc userComments поста.
// Пост уже удалён — storage.ErrParentNotFound.
func (m *Mongo) AdjustCommentCount(ctx context.Context, postID string, delta int64) error {
	return incComments(ctx, "storage/mongo/AdjustCommentCount", m.posts, postID, delta)
}

// AdjustReplyCount — $inc userComments корня треда.
// Корень уже удалён — storage.ErrParentNotFound.
func (m *Mongo) AdjustReplyCount(ctx context.Context, commentID string, delta int64) error {
	return incComments(ctx, "storage/mongo/AdjustReplyCount", m.comments, commentID, delta)
}

func incComments(ctx context.Context, op string, coll *mongodriver.Collection, id string, delta int64) error {
	res, err := coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "userComments", Value: delta}}}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrParentNotFound)
	}

	return nil
}

// SetLike одной транзакцией меняет userLikes цели и likes в Stats пользователя.
// Цели нет — storage.ErrNotFound, ничего не применено.
func (m *Mongo) SetLike(ctx context.Context, target storage.LikeTarget, targetID, userID string, op storage.SetOp) error {
	const opName = "storage/mongo/SetLike"

	oper, err := setOperator(op)
	if err != nil {
		return fmt.Errorf("%s: %w", opName, err)
	}

	var coll *mongodriver.Collection
	switch target {
	case storage.TargetPost:
		coll = m.posts
	case storage.TargetComment:
		coll = m.comments
	default:
		return fmt.Errorf("%s: %w: target %d", opName, storage.ErrInvalidArgument, target)
	}

	err = m.withTx(ctx, func(sc mongodriver.SessionContext) error {
		res, err := coll.UpdateOne(sc,
			bson.D{{Key: "_id", Value: targetID}},
			bson.D{{Key: oper, Value: bson.D{{Key: "userLikes", Value: userID}}}},
		)
		if err != nil {
			return err
		}

		if res.MatchedCount == 0 {
			return storage.ErrNotFound
		}

		return m.updateStat(sc, userID, storage.StatLikes, targetID, oper)
	})
	if err != nil {
		return txError(opName, err)
	}

	return nil
}

// SetFollow одной транзакцией меняет following актора и followers цели.
// Любой из пользователей отсутствует — storage.ErrNotFound, ничего не применено.
func (m *Mongo) SetFollow(ctx context.Context, userID, targetUserID string, op storage.SetOp) error {
	const opName = "storage/mongo/SetFollow"

	if userID == targetUserID {
		return fmt.Errorf("%s: %w: self-follow", opName, storage.ErrInvalidArgument)
	}

	oper, err := setOperator(op)
	if err != nil {
		return fmt.Errorf("%s: %w", opName, err)
	}

	err = m.withTx(ctx, func(sc mongodriver.SessionContext) error {
		ts := now()

		sides := []struct {
			id, field, value string
		}{
			{userID, "following", targetUserID},
			{targetUserID, "followers", userID},
		}

		for _, s := range sides {
			res, err := m.users.UpdateOne(sc,
				bson.D{{Key: "_id", Value: s.id}},
				bson.D{
					{Key: oper, Value: bson.D{{Key: s.field, Value: s.value}}},
					{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: ts}}},
					{Key: "$inc", Value: bson.D{{Key: "version", Value: 1}}},
				},
			)
			if err != nil {
				return err
			}

			if res.MatchedCount == 0 {
				return storage.ErrNotFound
			}
		}

		return nil
	})
	if err != nil {
		return txError(opName, err)
	}

	return nil
}

// SetSaved создаёт или удаляет join-запись (userId, postId). Идемпотентно.
func (m *Mongo) SetSaved(ctx context.Context, userID, postID string, op storage.SetOp) error {
	const opName = "storage/mongo/SetSaved"

	filter := bson.D{{Key: "userId", Value: userID}, {Key: "postId", Value: postID}}

	switch op {
	case storage.OpAdd:
		_, err := m.saved.UpdateOne(ctx, filter,
			bson.D{{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: now()}}}},
			options.Update().SetUpsert(true),
		)
		// Гонка двух upsert'ов даёт duplicate key: запись уже есть.
		if err != nil && !mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", opName, err)
		}
	case storage.OpRemove:
		if _, err := m.saved.DeleteOne(ctx, filter); err != nil {
			return fmt.Errorf("%s: %w", opName, err)
		}
	default:
		return fmt.Errorf("%s: %w", opName, storage.ErrInvalidArgument)
	}

	return nil
}

// SetStat — $addToSet/$pull в массиве Stats пользователя (upsert документа).
func (m *Mongo) SetStat(ctx context.Context, userID string, field storage.StatField, targetID string, op storage.SetOp) error {
	const opName = "storage/mongo/SetStat"

	oper, err := setOperator(op)
	if err != nil {
		return fmt.Errorf("%s: %w", opName, err)
	}

	if err := m.updateStat(ctx, userID, field, targetID, oper); err != nil {
		return fmt.Errorf("%s: %w", opName, err)
	}

	return nil
}

func (m *Mongo) updateStat(ctx context.Context, userID string, field storage.StatField, targetID, oper string) error {
	var other storage.StatField
	switch field {
	case storage.StatLikes:
		other = storage.StatPosts
	case storage.StatPosts:
		other = storage.StatLikes
	default:
		return fmt.Errorf("%w: stat field %q", storage.ErrInvalidArgument, field)
	}

	// Второй массив инициализируется при upsert; первый — сам оператор.
	_, err := m.stats.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: userID}},
		bson.D{
			{Key: oper, Value: bson.D{{Key: string(field), Value: targetID}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now()}}},
			{Key: "$setOnInsert", Value: bson.D{{Key: string(other), Value: bson.A{}}}},
		},
		options.Update().SetUpsert(true),
	)

	return err
}

// SavedByUser — сохранённые посты. Сортировка: createdAt DESC, postId DESC.
func (m *Mongo) SavedByUser(ctx context.Context, userID string, p models.ListParams) (*models.SavedPage, error) {
	const op = "storage/mongo/SavedByUser"

	limit := limitOrDefault(m.cfg, p.PageSize)

	filter, err := afterCursor(bson.D{{Key: "userId", Value: userID}}, p.PageToken, "createdAt", "postId", true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
	}

	cur, err := m.saved.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "postId", Value: -1}}).
		SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	items, next, err := decodeAll(ctx, cur, limit, func(s *models.Saved) (time.Time, string) {
		return s.CreatedAt, s.ID
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range items {
		items[i].CreatedAt = items[i].CreatedAt.UTC()
	}

	return &models.SavedPage{Items: items, NextPageToken: next}, nil
}

// StatsByUser возвращает Stats пользователя. Нет записи — storage.ErrNotFound.
func (m *Mongo) StatsByUser(ctx context.Context, userID string) (*models.Stats, error) {
	const op = "storage/mongo/StatsByUser"

	var out models.Stats
	if err := m.stats.FindOne(ctx, bson.D{{Key: "_id", Value: userID}}).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out.Likes = nonNil(out.Likes)
	out.Posts = nonNil(out.Posts)
	out.UpdatedAt = out.UpdatedAt.UTC()

	return &out, nil
}
