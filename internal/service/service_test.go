package service

// Тесты сервисного слоя photo-feed (internal/service).
//
//  Проверяем:
//  - валидацию входов и маппинг ошибок storage -> service;
//  - снапшот автора в постах/комментариях и указатели тредов;
//  - конкурентные шаги создания/удаления и ErrPartialDeletion;
//  - пропуск fan-out при неизменном allow-list'е.
//
// Подготовка окружения:
//   # 1) Сгенерировать моки интерфейсов хранилищ:
//   mockgen -source=./internal/storage/storage.go -destination=./mocks/storage.go -package=mocks
//   mockgen -source=./internal/storage/images.go -destination=./mocks/images.go -package=mocks
//
//   # 2) Запустить тесты:
//   go test ./internal/service -v -race -count=1

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-photo-feed/internal/config"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"github.com/pribylovaa/go-photo-feed/mocks"
	"github.com/stretchr/testify/require"
)

var errDB = errors.New("db down")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Images:      config.ImagesConfig{MaxPerPost: 2},
		Limits:      config.LimitsConfig{Default: 20, Max: 100},
		Propagation: config.PropagationConfig{BatchSize: 500},
		Timeouts:    config.TimeoutConfig{Service: time.Second},
	}
}

// newServiceWithMocks — сервис с моками документного и объектного хранилищ.
func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockStorage, *mocks.MockImages, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)
	mi := mocks.NewMockImages(ctrl)
	s := New(ms, mi, testConfig(), nil)
	return s, ms, mi, ctrl
}

// amy — пользователь с полным профилем.
func amy() *models.User {
	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return &models.User{
		ID:         "u-amy",
		Username:   "amy",
		Name:       "Amy",
		PhotoURL:   "https://cdn.local/amy.png",
		Followers:  []string{},
		Following:  []string{},
		TotalPosts: 3,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
}

func TestMapStorageErr(t *testing.T) {
	tcs := []struct {
		in   error
		want error
	}{
		{storage.ErrNotFound, ErrNotFound},
		{storage.ErrAlreadyExists, ErrAlreadyExists},
		{storage.ErrInvalidCursor, ErrInvalidCursor},
		{storage.ErrInvalidArgument, ErrInvalidArgument},
		{storage.ErrBatchCommit, ErrBatchCommit},
		{context.DeadlineExceeded, context.DeadlineExceeded},
		{errDB, ErrInternal},
	}

	lg := discardLogger()
	for _, tc := range tcs {
		require.ErrorIs(t, mapStorageErr(lg, "op", tc.in), tc.want)
	}
}

func TestAwaitAll_RunsEveryStep(t *testing.T) {
	ran := make([]bool, 3)
	errs := awaitAll(
		func() error { ran[0] = true; return nil },
		func() error { ran[1] = true; return errDB },
		func() error { ran[2] = true; return nil },
	)

	require.Equal(t, []bool{true, true, true}, ran)
	require.NoError(t, errs[0])
	require.ErrorIs(t, errs[1], errDB)
	require.NoError(t, errs[2])
	require.Equal(t, 1, countFailed(errs))
}

// Шаги удаления доживают до конца даже после отмены запроса.
func TestDetached_IgnoresParentCancel(t *testing.T) {
	s := New(nil, nil, testConfig(), nil)

	parent, cancelParent := context.WithCancel(context.Background())
	cancelParent()

	ctx, cancel := s.detached(parent)
	defer cancel()

	require.NoError(t, ctx.Err())
	_, ok := ctx.Deadline()
	require.True(t, ok)
}

func TestAuthorize(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()

	// владелец — без обращения к хранилищу.
	require.NoError(t, s.authorize(ctx, "u-1", "u-1"))

	admin := amy()
	admin.ID, admin.IsAdmin = "u-admin", true
	ms.EXPECT().UserByID(gomock.Any(), "u-admin").Return(admin, nil)
	require.NoError(t, s.authorize(ctx, "u-admin", "u-1"))

	ms.EXPECT().UserByID(gomock.Any(), "u-2").Return(amy(), nil)
	require.ErrorIs(t, s.authorize(ctx, "u-2", "u-1"), ErrPermissionDenied)

	ms.EXPECT().UserByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
	require.ErrorIs(t, s.authorize(ctx, "ghost", "u-1"), ErrPermissionDenied)

	ms.EXPECT().UserByID(gomock.Any(), "u-3").Return(nil, errDB)
	require.ErrorIs(t, s.authorize(ctx, "u-3", "u-1"), errDB)
}
