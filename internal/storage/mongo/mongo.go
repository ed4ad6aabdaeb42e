package mongo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pribylovaa/go-photo-feed/internal/config"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection       = "users"
	postsCollection       = "posts"
	commentsCollection    = "comments"
	savedCollection       = "saved"
	statsCollection       = "stats"
	checkpointsCollection = "trigger_checkpoints"
	defaultDBName         = "photofeed"

	// codeNamespaceExists — коллекция уже создана.
	codeNamespaceExists = 48
)

var (
	_ storage.Storage     = (*Mongo)(nil)
	_ storage.UserWatcher = (*Mongo)(nil)
)

// Mongo — адаптер документного хранилища photo-feed поверх MongoDB.
// Требует replica set: атомарные пачки записей выполняются транзакциями,
// изменения пользователей читаются change stream'ом.
type Mongo struct {
	cfg         *config.Config
	client      *mongodriver.Client
	db          *mongodriver.Database
	users       *mongodriver.Collection
	posts       *mongodriver.Collection
	comments    *mongodriver.Collection
	saved       *mongodriver.Collection
	stats       *mongodriver.Collection
	checkpoints *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение, создаёт коллекции и индексы
// и включает pre-images для change stream по users.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(databaseFromURI(cfg.DB.URL))

	m := &Mongo{
		cfg:         cfg,
		client:      cli,
		db:          db,
		users:       db.Collection(usersCollection),
		posts:       db.Collection(postsCollection),
		comments:    db.Collection(commentsCollection),
		saved:       db.Collection(savedCollection),
		stats:       db.Collection(statsCollection),
		checkpoints: db.Collection(checkpointsCollection),
	}

	if err := m.ensureCollections(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	if err := m.enablePreImages(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping проверяет доступность primary (readiness).
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// ensureCollections создаёт коллекции заранее: внутри транзакций
// неявное создание коллекций доступно не во всех версиях сервера.
func (m *Mongo) ensureCollections(ctx context.Context) error {
	names := []string{
		usersCollection, postsCollection, commentsCollection,
		savedCollection, statsCollection, checkpointsCollection,
	}

	for _, name := range names {
		err := m.db.CreateCollection(ctx, name)

		var ce mongodriver.CommandError
		if err != nil && !(errors.As(err, &ce) && ce.Code == codeNamespaceExists) {
			return fmt.Errorf("mongo create collection %s: %w", name, err)
		}
	}

	return nil
}

// ensureIndexes создаёт индексы:
//   - users: уникальный username;
//   - posts/comments: лента автора (createdBy + createdAt desc) и скан fan-out (createdBy + _id);
//   - comments: корневые по посту (desc) и ответы треда (asc);
//   - saved: уникальная пара (userId, postId) и выдача по времени.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	plan := map[*mongodriver.Collection][]mongodriver.IndexModel{
		m.users: {
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetName("username_unique").SetUnique(true),
			},
		},
		m.posts: {
			{
				Keys:    bson.D{{Key: "createdBy", Value: 1}, {Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
				Options: options.Index().SetName("author_created_desc"),
			},
			{
				Keys:    bson.D{{Key: "createdBy", Value: 1}, {Key: "_id", Value: 1}},
				Options: options.Index().SetName("author_id_asc"),
			},
		},
		m.comments: {
			{
				Keys:    bson.D{{Key: "postId", Value: 1}, {Key: "parent.replyParent", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("post_root_created_desc"),
			},
			{
				Keys:    bson.D{{Key: "parent.replyParent", Value: 1}, {Key: "createdAt", Value: 1}},
				Options: options.Index().SetName("thread_created_asc"),
			},
			{
				Keys:    bson.D{{Key: "createdBy", Value: 1}, {Key: "_id", Value: 1}},
				Options: options.Index().SetName("author_id_asc"),
			},
		},
		m.saved: {
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "postId", Value: 1}},
				Options: options.Index().SetName("user_post_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}, {Key: "postId", Value: -1}},
				Options: options.Index().SetName("user_created_desc"),
			},
		},
	}

	for coll, models := range plan {
		if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo ensure indexes %s: %w", coll.Name(), err)
		}
	}

	return nil
}

// enablePreImages включает changeStreamPreAndPostImages на users (MongoDB 6.0+),
// иначе событие update не несёт состояние «до».
func (m *Mongo) enablePreImages(ctx context.Context) error {
	cmd := bson.D{
		{Key: "collMod", Value: usersCollection},
		{Key: "changeStreamPreAndPostImages", Value: bson.D{{Key: "enabled", Value: true}}},
	}

	if err := m.db.RunCommand(ctx, cmd).Err(); err != nil {
		return fmt.Errorf("mongo enable pre-images: %w", err)
	}

	return nil
}

// withTx выполняет fn в транзакции. Ошибки fn возвращаются как есть,
// commit повторяется драйвером при TransientTransactionError.
func (m *Mongo) withTx(ctx context.Context, fn func(sc mongodriver.SessionContext) error) error {
	sess, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongodriver.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})

	return err
}

// txError приводит ошибку транзакции к контракту хранилища:
// доменные сентинелы проходят насквозь, остальное — ErrBatchCommit.
func txError(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, storage.ErrInvalidArgument):
		return fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %v", op, storage.ErrBatchCommit, err)
	}
}

// now — текущее время в точности хранения MongoDB (миллисекунды, UTC).
func now() time.Time {
	return toMS(time.Now())
}

func toMS(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// nonNil — пустой массив вместо null: $addToSet/$pull не работают с null-полем.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

// databaseFromURI извлекает имя базы из пути mongodb URI.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}

	return defaultDBName
}
