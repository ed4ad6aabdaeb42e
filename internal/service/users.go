package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"github.com/pribylovaa/go-photo-feed/pkg/log"
)

var usernameRe = regexp.MustCompile(`^[a-z0-9._]{3,30}$`)

const (
	maxNameLen     = 64
	maxBioLen      = 300
	maxLocationLen = 64
	maxURLLen      = 2048
)

// CreateUserInput — первый вход пользователя (id выдаёт identity-провайдер).
type CreateUserInput struct {
	ID       string
	Username string
	Name     string
	PhotoURL string
}

// UpdateProfileInput — частичный апдейт профиля; nil — поле не меняется.
type UpdateProfileInput struct {
	Name     *string
	Username *string
	Bio      *string
	Website  *string
	Location *string
	PhotoURL *string
}

// normalizeUsername приводит username к нижнему регистру и проверяет формат.
func normalizeUsername(raw string) (string, bool) {
	u := strings.ToLower(strings.TrimSpace(raw))
	return u, usernameRe.MatchString(u)
}

// CreateUser создаёт пользователя и его Stats.
//
// Валидация:
//   - ID обязателен;
//   - Username: [a-z0-9._]{3,30} после приведения к нижнему регистру;
//   - PhotoURL обязателен: абсолютный http(s) URL.
//
// Ошибки: ErrInvalidArgument, ErrAlreadyExists, ErrInternal.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	const op = "service/users/CreateUser"

	in.ID = strings.TrimSpace(in.ID)
	lg := log.From(ctx).With("op", op, "user_id", in.ID)

	if in.ID == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	username, ok := normalizeUsername(in.Username)
	if !ok {
		lg.Warn("invalid argument: bad username", "username", in.Username)
		return nil, fmt.Errorf("%s: %w: username", op, ErrInvalidArgument)
	}

	name := strings.TrimSpace(in.Name)
	if len(name) > maxNameLen {
		lg.Warn("invalid argument: name too long")
		return nil, fmt.Errorf("%s: %w: name", op, ErrInvalidArgument)
	}

	// photoURL обязателен: без него снапшот для постов и комментариев не собрать.
	photo := strings.TrimSpace(in.PhotoURL)
	if !validURL(photo) {
		lg.Warn("invalid argument: bad photo url")
		return nil, fmt.Errorf("%s: %w: photoURL", op, ErrInvalidArgument)
	}

	u, err := s.storage.CreateUser(ctx, models.User{
		ID:       in.ID,
		Username: username,
		Name:     name,
		PhotoURL: photo,
	})
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	lg.Info("user created")
	return u, nil
}

// UserByID возвращает пользователя. Ошибки: ErrInvalidArgument, ErrNotFound, ErrInternal.
func (s *Service) UserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "service/users/UserByID"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "user_id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	u, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return u, nil
}

// CheckUsernameAvailability сообщает, свободен ли username.
// Некорректный по формату username — ErrInvalidArgument.
func (s *Service) CheckUsernameAvailability(ctx context.Context, username string) (bool, error) {
	const op = "service/users/CheckUsernameAvailability"

	lg := log.From(ctx).With("op", op, "username", username)

	normalized, ok := normalizeUsername(username)
	if !ok {
		lg.Warn("invalid argument: bad username")
		return false, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	exists, err := s.storage.UsernameExists(ctx, normalized)
	if err != nil {
		return false, mapStorageErr(lg, op, err)
	}

	return !exists, nil
}

// UpdateProfile меняет редактируемые поля профиля.
// Менять профиль может владелец или администратор.
// Изменение полей из allow-list'а снапшота вызовет fan-out через change stream.
//
// Ошибки: ErrInvalidArgument, ErrPermissionDenied, ErrNotFound, ErrAlreadyExists, ErrInternal.
func (s *Service) UpdateProfile(ctx context.Context, actorID, userID string, in UpdateProfileInput) (*models.User, error) {
	const op = "service/users/UpdateProfile"

	userID = strings.TrimSpace(userID)
	lg := log.From(ctx).With("op", op, "user_id", userID, "actor_id", actorID)

	if userID == "" {
		lg.Warn("invalid argument: empty user id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	upd, err := buildProfileUpdate(in)
	if err != nil {
		lg.Warn("invalid argument", "err", err)
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidArgument, err)
	}

	if err := s.authorize(ctx, actorID, userID); err != nil {
		return nil, authErr(lg, op, err)
	}

	u, err := s.storage.UpdateUser(ctx, userID, upd)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return u, nil
}

func buildProfileUpdate(in UpdateProfileInput) (storage.UserUpdate, error) {
	var upd storage.UserUpdate

	if in.Username != nil {
		u, ok := normalizeUsername(*in.Username)
		if !ok {
			return upd, errors.New("username")
		}
		upd.Username = &u
	}

	trimmed := func(p *string, max int, field string) (*string, error) {
		if p == nil {
			return nil, nil
		}

		v := strings.TrimSpace(*p)
		if len(v) > max {
			return nil, errors.New(field)
		}

		return &v, nil
	}

	var err error
	if upd.Name, err = trimmed(in.Name, maxNameLen, "name"); err != nil {
		return upd, err
	}

	if upd.Bio, err = trimmed(in.Bio, maxBioLen, "bio"); err != nil {
		return upd, err
	}

	if upd.Location, err = trimmed(in.Location, maxLocationLen, "location"); err != nil {
		return upd, err
	}

	if upd.Website, err = trimmed(in.Website, maxURLLen, "website"); err != nil {
		return upd, err
	}
	if upd.Website != nil && *upd.Website != "" && !validURL(*upd.Website) {
		return upd, errors.New("website")
	}

	if upd.PhotoURL, err = trimmed(in.PhotoURL, maxURLLen, "photoURL"); err != nil {
		return upd, err
	}
	// photoURL обязателен для снапшота: очистить его нельзя.
	if upd.PhotoURL != nil && !validURL(*upd.PhotoURL) {
		return upd, errors.New("photoURL")
	}

	if upd == (storage.UserUpdate{}) {
		return upd, errors.New("empty update")
	}

	return upd, nil
}

// SetVerified выставляет флаг verified. Только администратор.
func (s *Service) SetVerified(ctx context.Context, actorID, userID string, verified bool) (*models.User, error) {
	return s.setFlag(ctx, "service/users/SetVerified", actorID, userID, storage.UserUpdate{Verified: &verified})
}

// SetAdmin выставляет флаг isAdmin. Только администратор.
func (s *Service) SetAdmin(ctx context.Context, actorID, userID string, admin bool) (*models.User, error) {
	return s.setFlag(ctx, "service/users/SetAdmin", actorID, userID, storage.UserUpdate{IsAdmin: &admin})
}

func (s *Service) setFlag(ctx context.Context, op, actorID, userID string, upd storage.UserUpdate) (*models.User, error) {
	userID = strings.TrimSpace(userID)
	lg := log.From(ctx).With("op", op, "user_id", userID, "actor_id", actorID)

	if userID == "" {
		lg.Warn("invalid argument: empty user id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	// Владелец не может выдать флаг сам себе: проверяем только admin.
	if err := s.authorize(ctx, actorID); err != nil {
		return nil, authErr(lg, op, err)
	}

	u, err := s.storage.UpdateUser(ctx, userID, upd)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	lg.Info("user flag updated")
	return u, nil
}

// authErr — ошибка authorize: отказ в доступе или сбой чтения актора.
func authErr(lg *slog.Logger, op string, err error) error {
	if errors.Is(err, ErrPermissionDenied) {
		lg.Warn("permission denied")
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	lg.Error("load actor failed", "err", err)
	return fmt.Errorf("%s: %w", op, ErrInternal)
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
