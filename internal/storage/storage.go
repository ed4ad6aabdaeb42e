// storage содержит контракты слоя хранилищ photo-feed.
//
// storage.go — документы (пользователи, посты, комментарии), счётчики и множества
// (Counter Ledger), перезапись снапшотов профиля и поток изменений пользователей.
// images.go — контракт объектного хранилища изображений.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/go-photo-feed/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности (id или username).
	ErrAlreadyExists = errors.New("already exists")
	// ErrParentNotFound — родительский пост/комментарий счётчика уже удалён.
	ErrParentNotFound = errors.New("parent not found")
	// ErrInvalidCursor — битый/чужой page_token.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrBatchCommit — атомарная многодокументная запись не применена (целиком).
	ErrBatchCommit = errors.New("batch commit failed")
)

// SetOp — операция над множеством: добавить или удалить элемент.
type SetOp int8

const (
	OpAdd SetOp = iota + 1
	OpRemove
)

func (o SetOp) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// LikeTarget — сущность, которую лайкают.
type LikeTarget int8

const (
	TargetPost LikeTarget = iota + 1
	TargetComment
)

func (t LikeTarget) String() string {
	switch t {
	case TargetPost:
		return "post"
	case TargetComment:
		return "comment"
	default:
		return "unknown"
	}
}

// StatField — массив в документе Stats.
type StatField string

const (
	StatLikes StatField = "likes"
	StatPosts StatField = "posts"
)

// UserUpdate — частичный апдейт профиля.
// Параметры задаются pointer-полями: только непустые указатели обновляются в БД.
type UserUpdate struct {
	Username *string
	Name     *string
	PhotoURL *string
	Bio      *string
	Website  *string
	Location *string
	Verified *bool
	IsAdmin  *bool
	Private  *bool
}

// Users — контракт репозитория пользователей.
type Users interface {
	// CreateUser создаёт пользователя вместе с пустым документом Stats.
	// Возможные ошибки: ErrAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// UserByID возвращает пользователя по id. Ошибки: ErrNotFound.
	UserByID(ctx context.Context, id string) (*models.User, error)
	// UsernameExists проверяет занятость username.
	UsernameExists(ctx context.Context, username string) (bool, error)
	// UpdateUser выполняет частичное обновление и выставляет updatedAt.
	// Ошибки: ErrNotFound, ErrAlreadyExists (username занят).
	UpdateUser(ctx context.Context, id string, update UserUpdate) (*models.User, error)
}

// Posts — контракт репозитория постов.
type Posts interface {
	// CreatePost вставляет пост. Снапшот автора должен быть уже встроен.
	CreatePost(ctx context.Context, post models.Post) (*models.Post, error)
	// PostByID возвращает пост. Ошибки: ErrNotFound.
	PostByID(ctx context.Context, id string) (*models.Post, error)
	// DeletePost удаляет пост. Ошибки: ErrNotFound.
	DeletePost(ctx context.Context, id string) error
	// ListPostsByUser — посты автора, сначала новые. Ошибки: ErrInvalidCursor.
	ListPostsByUser(ctx context.Context, userID string, p models.ListParams) (*models.PostPage, error)
}

// Comments — контракт репозитория комментариев.
type Comments interface {
	// CreateComment вставляет комментарий с уже заполненным Parent и снапшотом.
	CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error)
	// CommentByID возвращает комментарий. Ошибки: ErrNotFound.
	CommentByID(ctx context.Context, id string) (*models.Comment, error)
	// DeleteComment удаляет комментарий. Ошибки: ErrNotFound.
	DeleteComment(ctx context.Context, id string) error
	// ListComments — корневые комментарии поста, сначала новые.
	ListComments(ctx context.Context, postID string, p models.ListParams) (*models.CommentPage, error)
	// ListReplies — ответы треда (replyParent == rootID), сначала старые.
	ListReplies(ctx context.Context, rootID string, p models.ListParams) (*models.CommentPage, error)
}

// Ledger — атомарные счётчики и множества. Каждая операция выражена серверным
// примитивом ($inc, $addToSet, $pull) без read-modify-write на клиенте.
type Ledger interface {
	// AdjustPostCount/AdjustPhotoCount — $inc totalPosts/totalPhotos у пользователя.
	// Ошибки: ErrNotFound.
	AdjustPostCount(ctx context.Context, userID string, delta int64) error
	AdjustPhotoCount(ctx context.Context, userID string, delta int64) error
	// AdjustCommentCount — $inc userComments поста. Ошибки: ErrParentNotFound.
	AdjustCommentCount(ctx context.Context, postID string, delta int64) error
	// AdjustReplyCount — $inc userComments комментария. Ошибки: ErrParentNotFound.
	AdjustReplyCount(ctx context.Context, commentID string, delta int64) error
	// SetLike — одной транзакцией userLikes цели и likes в Stats пользователя.
	// Ошибки: ErrNotFound (цели нет, ничего не применено), ErrBatchCommit.
	SetLike(ctx context.Context, target LikeTarget, targetID, userID string, op SetOp) error
	// SetFollow — одной транзакцией following актора и followers цели.
	// Ошибки: ErrNotFound (любой из пользователей), ErrBatchCommit.
	SetFollow(ctx context.Context, userID, targetUserID string, op SetOp) error
	// SetSaved — создание/удаление join-записи Saved (идемпотентно).
	SetSaved(ctx context.Context, userID, postID string, op SetOp) error
	// SetStat — $addToSet/$pull в массиве Stats пользователя (upsert).
	SetStat(ctx context.Context, userID string, field StatField, targetID string, op SetOp) error
	// SavedByUser — сохранённые посты, сначала новые. Ошибки: ErrInvalidCursor.
	SavedByUser(ctx context.Context, userID string, p models.ListParams) (*models.SavedPage, error)
	// StatsByUser возвращает Stats. Ошибки: ErrNotFound.
	StatsByUser(ctx context.Context, userID string) (*models.Stats, error)
}

// Snapshots — перезапись встроенных снапшотов профиля (fan-out).
type Snapshots interface {
	// RewritePostSnapshots переписывает поле user во всех постах автора.
	// batchSize <= 0 — одной транзакцией; иначе постранично, транзакция на страницу.
	// Посты со снапшотом новее snap.UpdatedAt не трогаются.
	// Возвращает число переписанных документов. Ошибки: ErrBatchCommit.
	RewritePostSnapshots(ctx context.Context, userID string, snap models.ProfileSnapshot, batchSize int) (int64, error)
	// RewriteCommentSnapshots — то же для комментариев автора.
	RewriteCommentSnapshots(ctx context.Context, userID string, snap models.ProfileSnapshot, batchSize int) (int64, error)
}

// Storage — верхнеуровневый интерфейс документного хранилища.
type Storage interface {
	Users
	Posts
	Comments
	Ledger
	Snapshots
}

// UserChange — событие обновления документа пользователя.
// Before пуст, если pre-image недоступен.
type UserChange struct {
	Token    string
	UserID   string
	Before   models.User
	After    models.User
	HasPrior bool
	At       time.Time
}

// UserChangeStream — поток изменений пользователей.
type UserChangeStream interface {
	// Next блокируется до следующего события; ошибка — поток нужно переоткрыть.
	Next(ctx context.Context) (*UserChange, error)
	Close(ctx context.Context) error
}

// UserWatcher — источник событий для диспетчера триггеров.
type UserWatcher interface {
	// WatchUsers открывает поток изменений; пустой resumeToken — с текущего момента.
	WatchUsers(ctx context.Context, resumeToken string) (UserChangeStream, error)
	// LoadCheckpoint возвращает сохранённый resume token ("" — нет чекпойнта).
	LoadCheckpoint(ctx context.Context, name string) (string, error)
	// SaveCheckpoint фиксирует resume token последнего обработанного события.
	SaveCheckpoint(ctx context.Context, name, token string) error
}
