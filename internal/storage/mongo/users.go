package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateUser создаёт пользователя и пустой документ Stats одной транзакцией.
// Повтор id или занятый username — storage.ErrAlreadyExists.
func (m *Mongo) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage/mongo/CreateUser"

	ts := now()
	if strings.TrimSpace(user.ID) == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = ts
	user.UpdatedAt = ts
	user.Version = 1
	user.Following = nonNil(user.Following)
	user.Followers = nonNil(user.Followers)

	err := m.withTx(ctx, func(sc mongodriver.SessionContext) error {
		if _, err := m.users.InsertOne(sc, user); err != nil {
			return err
		}

		_, err := m.stats.UpdateOne(sc,
			bson.D{{Key: "_id", Value: user.ID}},
			bson.D{{Key: "$setOnInsert", Value: bson.D{
				{Key: "likes", Value: bson.A{}},
				{Key: "posts", Value: bson.A{}},
				{Key: "updatedAt", Value: ts},
			}}},
			options.Update().SetUpsert(true),
		)

		return err
	})
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, txError(op, err)
	}

	return &user, nil
}

// UserByID возвращает пользователя. Нет записи — storage.ErrNotFound.
func (m *Mongo) UserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage/mongo/UserByID"

	var out models.User
	if err := m.users.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	normalizeUser(&out)
	return &out, nil
}

// UsernameExists проверяет, занят ли username.
func (m *Mongo) UsernameExists(ctx context.Context, username string) (bool, error) {
	const op = "storage/mongo/UsernameExists"

	n, err := m.users.CountDocuments(ctx,
		bson.D{{Key: "username", Value: username}},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return n > 0, nil
}

// UpdateUser применяет частичный апдейт ($set только заданных полей + updatedAt)
// и возвращает документ после изменения.
func (m *Mongo) UpdateUser(ctx context.Context, id string, upd storage.UserUpdate) (*models.User, error) {
	const op = "storage/mongo/UpdateUser"

	set := bson.D{{Key: "updatedAt", Value: now()}}

	appendStr := func(key string, v *string) {
		if v != nil {
			set = append(set, bson.E{Key: key, Value: *v})
		}
	}

	appendBool := func(key string, v *bool) {
		if v != nil {
			set = append(set, bson.E{Key: key, Value: *v})
		}
	}

	appendStr("username", upd.Username)
	appendStr("name", upd.Name)
	appendStr("photoURL", upd.PhotoURL)
	appendStr("bio", upd.Bio)
	appendStr("website", upd.Website)
	appendStr("location", upd.Location)
	appendBool("verified", upd.Verified)
	appendBool("isAdmin", upd.IsAdmin)
	appendBool("private", upd.Private)

	var out models.User
	err := m.users.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{
			{Key: "$set", Value: set},
			{Key: "$inc", Value: bson.D{{Key: "version", Value: 1}}},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		switch {
		case errors.Is(err, mongodriver.ErrNoDocuments):
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		case mongodriver.IsDuplicateKeyError(err):
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		default:
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	normalizeUser(&out)
	return &out, nil
}

func normalizeUser(u *models.User) {
	u.Following = nonNil(u.Following)
	u.Followers = nonNil(u.Followers)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
}

func normalizeSnapshot(s *models.ProfileSnapshot) {
	s.Following = nonNil(s.Following)
	s.Followers = nonNil(s.Followers)
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
}
