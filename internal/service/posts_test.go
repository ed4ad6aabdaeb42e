package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"github.com/stretchr/testify/require"
)

func echoPost(_ context.Context, p models.Post) (*models.Post, error) { return &p, nil }

// Встроенный снапшот фиксирует состояние автора до инкремента:
// у автора было 3 поста, в посте остаётся 3, хотя totalPosts станет 4.
func TestService_CreatePost_EmbedsPreIncrementSnapshot(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	author := amy()
	ms.EXPECT().UserByID(gomock.Any(), "u-amy").Return(author, nil)
	ms.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(echoPost)
	ms.EXPECT().AdjustPostCount(gomock.Any(), "u-amy", int64(1)).Return(nil)
	ms.EXPECT().SetStat(gomock.Any(), "u-amy", storage.StatPosts, gomock.Any(), storage.OpAdd).Return(nil)

	p, err := s.CreatePost(context.Background(), "u-amy", CreatePostInput{Caption: "  hello  "})
	require.NoError(t, err)

	require.NotEmpty(t, p.ID)
	require.Equal(t, "hello", p.Caption)
	require.Equal(t, "u-amy", p.CreatedBy)
	require.EqualValues(t, 3, p.User.TotalPosts)
	require.Equal(t, "amy", p.User.Username)
	require.Equal(t, author.PhotoURL, p.User.PhotoURL)
	require.False(t, p.HasImages())
}

func TestService_CreatePost_WithImages(t *testing.T) {
	s, ms, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().UserByID(gomock.Any(), "u-amy").Return(amy(), nil)
	mi.EXPECT().ConfirmImage(gomock.Any(), "u-amy", "images/u-amy/a.png").Return("https://cdn.local/a.png", nil)
	mi.EXPECT().ConfirmImage(gomock.Any(), "u-amy", "images/u-amy/b.png").Return("https://cdn.local/b.png", nil)
	ms.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(echoPost)
	ms.EXPECT().AdjustPostCount(gomock.Any(), "u-amy", int64(1)).Return(nil)
	ms.EXPECT().AdjustPhotoCount(gomock.Any(), "u-amy", int64(1)).Return(nil)
	ms.EXPECT().SetStat(gomock.Any(), "u-amy", storage.StatPosts, gomock.Any(), storage.OpAdd).Return(nil)

	p, err := s.CreatePost(context.Background(), "u-amy", CreatePostInput{
		Images: []ImageInput{
			{Key: "images/u-amy/a.png", Alt: "first"},
			{Key: "images/u-amy/b.png"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []models.ImageRef{
		{ID: 1, Src: "https://cdn.local/a.png", Alt: "first"},
		{ID: 2, Src: "https://cdn.local/b.png"},
	}, p.Images)
}

func TestService_CreatePost_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	tcs := []struct {
		name  string
		actor string
		in    CreatePostInput
	}{
		{"no_actor", "", CreatePostInput{Caption: "x"}},
		{"empty_post", "u-amy", CreatePostInput{Caption: "   "}},
		{"too_many_images", "u-amy", CreatePostInput{Images: []ImageInput{{Key: "a"}, {Key: "b"}, {Key: "c"}}}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreatePost(context.Background(), tc.actor, tc.in)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestService_CreatePost_ImagesDisabled(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()
	s.images = nil

	_, err := s.CreatePost(context.Background(), "u-amy", CreatePostInput{Images: []ImageInput{{Key: "k"}}})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Незагруженное изображение — пост не пишется.
func TestService_CreatePost_ImageNotUploaded(t *testing.T) {
	s, ms, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().UserByID(gomock.Any(), "u-amy").Return(amy(), nil)
	mi.EXPECT().ConfirmImage(gomock.Any(), "u-amy", "k").Return("", storage.ErrNotFoundImage)

	_, err := s.CreatePost(context.Background(), "u-amy", CreatePostInput{Images: []ImageInput{{Key: "k"}}})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_CreatePost_IncompleteProfile(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	author := amy()
	author.PhotoURL = ""
	ms.EXPECT().UserByID(gomock.Any(), "u-amy").Return(author, nil)

	_, err := s.CreatePost(context.Background(), "u-amy", CreatePostInput{Caption: "x"})
	require.ErrorIs(t, err, ErrIncompleteProfile)
}

func TestService_CreatePost_AuthorNotFound(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().UserByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	_, err := s.CreatePost(context.Background(), "ghost", CreatePostInput{Caption: "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

// Сбой инкремента не откатывает пост.
func TestService_CreatePost_CounterFailureKeepsPost(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().UserByID(gomock.Any(), "u-amy").Return(amy(), nil)
	ms.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(echoPost)
	ms.EXPECT().AdjustPostCount(gomock.Any(), "u-amy", int64(1)).Return(errDB)
	ms.EXPECT().SetStat(gomock.Any(), "u-amy", storage.StatPosts, gomock.Any(), storage.OpAdd).Return(nil)

	p, err := s.CreatePost(context.Background(), "u-amy", CreatePostInput{Caption: "x"})
	require.NoError(t, err)
	require.NotNil(t, p)
}

// Инкременты идут конкурентно со вставкой и выполняются даже при её сбое.
func TestService_CreatePost_InsertFailure(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().UserByID(gomock.Any(), "u-amy").Return(amy(), nil)
	ms.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(nil, errDB)
	ms.EXPECT().AdjustPostCount(gomock.Any(), "u-amy", int64(1)).Return(nil)
	ms.EXPECT().SetStat(gomock.Any(), "u-amy", storage.StatPosts, gomock.Any(), storage.OpAdd).Return(nil)

	_, err := s.CreatePost(context.Background(), "u-amy", CreatePostInput{Caption: "x"})
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_PostByID(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.PostByID(context.Background(), " ")
	require.ErrorIs(t, err, ErrInvalidArgument)

	ms.EXPECT().PostByID(gomock.Any(), "p-1").Return(nil, storage.ErrNotFound)
	_, err = s.PostByID(context.Background(), "p-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListUserPosts(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	p := models.ListParams{PageSize: 2, PageToken: "tok"}
	ms.EXPECT().ListPostsByUser(gomock.Any(), "u-amy", p).Return(&models.PostPage{NextPageToken: "next"}, nil)

	page, err := s.ListUserPosts(context.Background(), "u-amy", p)
	require.NoError(t, err)
	require.Equal(t, "next", page.NextPageToken)

	ms.EXPECT().ListPostsByUser(gomock.Any(), "u-amy", gomock.Any()).Return(nil, storage.ErrInvalidCursor)
	_, err = s.ListUserPosts(context.Background(), "u-amy", models.ListParams{PageToken: "bad"})
	require.ErrorIs(t, err, ErrInvalidCursor)

	_, err = s.ListUserPosts(context.Background(), "u-amy", models.ListParams{PageSize: -1})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func photoPost() *models.Post {
	return &models.Post{
		ID:        "p-1",
		CreatedBy: "u-amy",
		Images:    []models.ImageRef{{ID: 1, Src: "https://cdn.local/a.png"}},
	}
}

func TestService_DeletePost_OK(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().PostByID(gomock.Any(), "p-1").Return(photoPost(), nil)
	ms.EXPECT().DeletePost(gomock.Any(), "p-1").Return(nil)
	ms.EXPECT().AdjustPostCount(gomock.Any(), "u-amy", int64(-1)).Return(nil)
	ms.EXPECT().AdjustPhotoCount(gomock.Any(), "u-amy", int64(-1)).Return(nil)
	ms.EXPECT().SetStat(gomock.Any(), "u-amy", storage.StatPosts, "p-1", storage.OpRemove).Return(nil)

	require.NoError(t, s.DeletePost(context.Background(), "u-amy", "p-1"))
}

func TestService_DeletePost_PermissionDenied(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	bob := amy()
	bob.ID = "u-bob"
	ms.EXPECT().PostByID(gomock.Any(), "p-1").Return(photoPost(), nil)
	ms.EXPECT().UserByID(gomock.Any(), "u-bob").Return(bob, nil)

	require.ErrorIs(t, s.DeletePost(context.Background(), "u-bob", "p-1"), ErrPermissionDenied)
}

// Пост удалён, декремент не прошёл — ErrPartialDeletion.
func TestService_DeletePost_Partial(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().PostByID(gomock.Any(), "p-1").Return(photoPost(), nil)
	ms.EXPECT().DeletePost(gomock.Any(), "p-1").Return(nil)
	ms.EXPECT().AdjustPostCount(gomock.Any(), "u-amy", int64(-1)).Return(errDB)
	ms.EXPECT().AdjustPhotoCount(gomock.Any(), "u-amy", int64(-1)).Return(nil)
	ms.EXPECT().SetStat(gomock.Any(), "u-amy", storage.StatPosts, "p-1", storage.OpRemove).Return(nil)

	require.ErrorIs(t, s.DeletePost(context.Background(), "u-amy", "p-1"), ErrPartialDeletion)
}

func TestService_DeletePost_AllFailed(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	post := photoPost()
	post.Images = nil
	ms.EXPECT().PostByID(gomock.Any(), "p-1").Return(post, nil)
	ms.EXPECT().DeletePost(gomock.Any(), "p-1").Return(errDB)
	ms.EXPECT().AdjustPostCount(gomock.Any(), "u-amy", int64(-1)).Return(errDB)
	ms.EXPECT().SetStat(gomock.Any(), "u-amy", storage.StatPosts, "p-1", storage.OpRemove).Return(errDB)

	require.ErrorIs(t, s.DeletePost(context.Background(), "u-amy", "p-1"), ErrInternal)
}
