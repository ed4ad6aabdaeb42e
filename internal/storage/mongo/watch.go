package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// errStreamClosed — сервер закрыл поток (invalidate/drop), его нужно открыть заново.
var errStreamClosed = errors.New("change stream closed")

// changeEvent — нужные поля события change stream.
type changeEvent struct {
	OperationType string `bson:"operationType"`
	DocumentKey   struct {
		ID string `bson:"_id"`
	} `bson:"documentKey"`
	ClusterTime              primitive.Timestamp `bson:"clusterTime"`
	FullDocument             *models.User        `bson:"fullDocument"`
	FullDocumentBeforeChange *models.User        `bson:"fullDocumentBeforeChange"`
}

// WatchUsers открывает change stream по update/replace в users
// c post- и pre-image (whenAvailable). Непустой resumeToken — продолжение
// строго после сохранённого события.
func (m *Mongo) WatchUsers(ctx context.Context, resumeToken string) (storage.UserChangeStream, error) {
	const op = "storage/mongo/WatchUsers"

	pipeline := mongodriver.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "operationType", Value: bson.D{{Key: "$in", Value: bson.A{"update", "replace"}}}},
		}}},
	}

	opts := options.ChangeStream().
		SetFullDocument(options.WhenAvailable).
		SetFullDocumentBeforeChange(options.WhenAvailable)

	if resumeToken != "" {
		opts.SetStartAfter(bson.D{{Key: "_data", Value: resumeToken}})
	}

	cs, err := m.users.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &userStream{cs: cs}, nil
}

type userStream struct {
	cs *mongodriver.ChangeStream
}

// Next блокируется до следующего события.
func (s *userStream) Next(ctx context.Context) (*storage.UserChange, error) {
	if !s.cs.Next(ctx) {
		if err := s.cs.Err(); err != nil {
			return nil, err
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		return nil, errStreamClosed
	}

	var ev changeEvent
	if err := s.cs.Decode(&ev); err != nil {
		return nil, fmt.Errorf("decode change event: %w", err)
	}

	token, ok := s.cs.ResumeToken().Lookup("_data").StringValueOK()
	if !ok {
		return nil, fmt.Errorf("change event without resume token")
	}

	ch := &storage.UserChange{
		Token:  token,
		UserID: ev.DocumentKey.ID,
		At:     time.Unix(int64(ev.ClusterTime.T), 0).UTC(),
	}

	if ev.FullDocument != nil {
		normalizeUser(ev.FullDocument)
		ch.After = *ev.FullDocument
	}

	if ev.FullDocumentBeforeChange != nil {
		normalizeUser(ev.FullDocumentBeforeChange)
		ch.Before = *ev.FullDocumentBeforeChange
		ch.HasPrior = true
	}

	return ch, nil
}

func (s *userStream) Close(ctx context.Context) error {
	return s.cs.Close(ctx)
}

// LoadCheckpoint возвращает сохранённый resume token или "".
func (m *Mongo) LoadCheckpoint(ctx context.Context, name string) (string, error) {
	const op = "storage/mongo/LoadCheckpoint"

	var doc struct {
		Token string `bson:"token"`
	}

	if err := m.checkpoints.FindOne(ctx, bson.D{{Key: "_id", Value: name}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return "", nil
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return doc.Token, nil
}

// SaveCheckpoint фиксирует resume token последнего обработанного события.
func (m *Mongo) SaveCheckpoint(ctx context.Context, name, token string) error {
	const op = "storage/mongo/SaveCheckpoint"

	_, err := m.checkpoints.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: name}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "token", Value: token},
			{Key: "updatedAt", Value: now()},
		}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
