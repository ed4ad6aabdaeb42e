package mongo

import (
	"context"
	"fmt"

	"github.com/pribylovaa/go-photo-feed/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RewritePostSnapshots переписывает встроенный снапшот автора во всех его постах.
func (m *Mongo) RewritePostSnapshots(ctx context.Context, userID string, snap models.ProfileSnapshot, batchSize int) (int64, error) {
	return m.rewriteSnapshots(ctx, "storage/mongo/RewritePostSnapshots", m.posts, userID, snap, batchSize)
}

// RewriteCommentSnapshots переписывает встроенный снапшот автора во всех его комментариях.
func (m *Mongo) RewriteCommentSnapshots(ctx context.Context, userID string, snap models.ProfileSnapshot, batchSize int) (int64, error) {
	return m.rewriteSnapshots(ctx, "storage/mongo/RewriteCommentSnapshots", m.comments, userID, snap, batchSize)
}

// rewriteSnapshots заменяет поле user целиком ($set), не трогая остальные поля документа.
//   - batchSize <= 0: все документы автора одной транзакцией (UpdateMany);
//   - batchSize > 0: id сканируются по возрастанию _id страницами по batchSize,
//     каждая страница — своя транзакция. Ошибка страницы прерывает скан;
//     уже применённые страницы остаются (повтор события их не испортит).
//
// Документ переписывается, только если его user.version строго меньше snap.Version:
// запоздавшая пропагация не затирает более свежий снапшот, повтор события ничего не меняет.
// Версия выдаётся $inc на primary, поэтому порядок не зависит от часов процессов.
func (m *Mongo) rewriteSnapshots(ctx context.Context, op string, coll *mongodriver.Collection, userID string, snap models.ProfileSnapshot, batchSize int) (int64, error) {
	normalizeSnapshot(&snap)
	snap.UpdatedAt = toMS(snap.UpdatedAt)
	snap.CreatedAt = toMS(snap.CreatedAt)

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "user", Value: snap}}}}

	guard := bson.E{Key: "$or", Value: bson.A{
		bson.D{{Key: "user.version", Value: bson.D{{Key: "$lt", Value: snap.Version}}}},
		bson.D{{Key: "user.version", Value: bson.D{{Key: "$exists", Value: false}}}},
	}}

	if batchSize <= 0 {
		var modified int64

		err := m.withTx(ctx, func(sc mongodriver.SessionContext) error {
			res, err := coll.UpdateMany(sc, bson.D{{Key: "createdBy", Value: userID}, guard}, update)
			if err != nil {
				return err
			}

			modified = res.ModifiedCount
			return nil
		})
		if err != nil {
			return 0, txError(op, err)
		}

		return modified, nil
	}

	var (
		total  int64
		lastID string
	)

	for {
		ids, err := m.authorPage(ctx, coll, userID, lastID, batchSize)
		if err != nil {
			return total, fmt.Errorf("%s: scan: %w", op, err)
		}

		if len(ids) == 0 {
			return total, nil
		}

		var modified int64

		err = m.withTx(ctx, func(sc mongodriver.SessionContext) error {
			res, err := coll.UpdateMany(sc, bson.D{
				{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}},
				{Key: "createdBy", Value: userID},
				guard,
			}, update)
			if err != nil {
				return err
			}

			modified = res.ModifiedCount
			return nil
		})
		if err != nil {
			return total, txError(op, err)
		}

		total += modified

		if len(ids) < batchSize {
			return total, nil
		}

		lastID = ids[len(ids)-1]
	}
}

// authorPage возвращает до limit id документов автора с _id > afterID.
func (m *Mongo) authorPage(ctx context.Context, coll *mongodriver.Collection, userID, afterID string, limit int) ([]string, error) {
	filter := bson.D{{Key: "createdBy", Value: userID}}
	if afterID != "" {
		filter = append(filter, bson.E{Key: "_id", Value: bson.D{{Key: "$gt", Value: afterID}}})
	}

	cur, err := coll.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	ids := make([]string, 0, limit)
	for cur.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}

		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}

		ids = append(ids, doc.ID)
	}

	return ids, cur.Err()
}
