package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/snapshot"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"github.com/stretchr/testify/require"
)

// Изменения вне allow-list'а не приводят ни к одной записи:
// мок без ожиданий упадёт на любом вызове.
func TestService_PropagateProfile_SkipsUnrelatedChange(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	before := *amy()
	after := before
	after.Bio = "new bio"
	after.TotalPhotos = 7

	res, err := s.PropagateProfile(context.Background(), before, after)
	require.NoError(t, err)
	require.True(t, res.Skipped)
	require.Zero(t, res.Posts)
}

// amy -> amy2: переписываются снапшоты всех постов автора полной проекцией after.
func TestService_PropagateProfile_Username(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	before := *amy()
	after := before
	after.Username = "amy2"

	ms.EXPECT().
		RewritePostSnapshots(gomock.Any(), "u-amy", snapshot.Project(after), 500).
		Return(int64(2), nil)

	res, err := s.PropagateProfile(context.Background(), before, after)
	require.NoError(t, err)
	require.False(t, res.Skipped)
	require.Equal(t, []string{snapshot.FieldUsername}, res.Fields)
	require.EqualValues(t, 2, res.Posts)
	require.Zero(t, res.Comments)
}

func TestService_PropagateProfile_IncludeComments(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()
	s.cfg.Propagation.IncludeComments = true
	s.cfg.Propagation.BatchSize = 0

	before := *amy()
	after := before
	after.PhotoURL = "https://cdn.local/amy-2.png"

	ms.EXPECT().RewritePostSnapshots(gomock.Any(), "u-amy", gomock.Any(), 0).Return(int64(1), nil)
	ms.EXPECT().RewriteCommentSnapshots(gomock.Any(), "u-amy", snapshot.Project(after), 0).Return(int64(4), nil)

	res, err := s.PropagateProfile(context.Background(), before, after)
	require.NoError(t, err)
	require.EqualValues(t, 1, res.Posts)
	require.EqualValues(t, 4, res.Comments)
}

// Нет pre-image: before пуст, считаем, что изменилось всё.
func TestService_PropagateProfile_NoPriorImage(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().RewritePostSnapshots(gomock.Any(), "u-amy", gomock.Any(), 500).Return(int64(0), nil)

	res, err := s.PropagateProfile(context.Background(), models.User{}, *amy())
	require.NoError(t, err)
	require.False(t, res.Skipped)
}

// Ошибка хранилища возвращается диспетчеру без ретраев.
func TestService_HandleUserUpdate_Error(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	before := *amy()
	after := before
	after.Verified = true

	ms.EXPECT().RewritePostSnapshots(gomock.Any(), "u-amy", gomock.Any(), 500).Return(int64(0), storage.ErrBatchCommit)

	err := s.HandleUserUpdate(context.Background(), before, after)
	require.ErrorIs(t, err, ErrBatchCommit)
}

func TestService_PropagateProfile_EmptyUser(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.PropagateProfile(context.Background(), models.User{}, models.User{})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
