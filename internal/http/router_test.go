package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-photo-feed/internal/config"
	apierrors "github.com/pribylovaa/go-photo-feed/internal/http/errors"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/service"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"github.com/pribylovaa/go-photo-feed/mocks"
	"github.com/stretchr/testify/require"
)

const secret = "router-secret"

type fixture struct {
	handler http.Handler
	storage *mocks.MockStorage
	images  *mocks.MockImages
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)
	mi := mocks.NewMockImages(ctrl)

	cfg := &config.Config{
		Images:   config.ImagesConfig{MaxPerPost: 4},
		Auth:     config.AuthConfig{JWTSecret: secret, Issuer: "auth", Audience: []string{"photo-feed"}},
		Timeouts: config.TimeoutConfig{Service: time.Second},
	}

	svc := service.New(ms, mi, cfg, nil)
	h := NewRouter(svc, Options{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Timeout:  time.Second,
		BasePath: "/api",
		Auth:     cfg.Auth,
	})

	return &fixture{handler: h, storage: ms, images: mi}
}

func bearer(t *testing.T, sub string) string {
	t.Helper()
	now := time.Now()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		Issuer:    "auth",
		Audience:  jwt.ClaimStrings{"photo-feed"},
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return "Bearer " + tok
}

func (f *fixture) do(method, target, auth, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, rd)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func errCode(t *testing.T, rr *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()
	var env apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env.Error
}

func amy() *models.User {
	return &models.User{ID: "u-amy", Username: "amy", PhotoURL: "https://cdn.local/amy.png", TotalPosts: 3}
}

func TestRouter_GetUser(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().UserByID(gomock.Any(), "u-amy").Return(amy(), nil)

	rr := f.do(http.MethodGet, "/api/users/u-amy", "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var u models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &u))
	require.Equal(t, "amy", u.Username)
}

func TestRouter_NotFound_CarriesRequestID(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().PostByID(gomock.Any(), "p-x").Return(nil, storage.ErrNotFound)

	rr := f.do(http.MethodGet, "/api/posts/p-x", "", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	e := errCode(t, rr)
	require.Equal(t, "not_found", e.Code)
	require.NotEmpty(t, e.RequestID)
	require.Equal(t, rr.Header().Get("X-Request-Id"), e.RequestID)
}

func TestRouter_CreatePost_RequiresAuth(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodPost, "/api/posts", "", `{"caption":"hi"}`)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "unauthenticated", errCode(t, rr).Code)
}

func TestRouter_CreatePost(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().UserByID(gomock.Any(), "u-amy").Return(amy(), nil)
	f.storage.EXPECT().CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Post) (*models.Post, error) { return &p, nil })
	f.storage.EXPECT().AdjustPostCount(gomock.Any(), "u-amy", int64(1)).Return(nil)
	f.storage.EXPECT().SetStat(gomock.Any(), "u-amy", storage.StatPosts, gomock.Any(), storage.OpAdd).Return(nil)

	rr := f.do(http.MethodPost, "/api/posts", bearer(t, "u-amy"), `{"caption":"hi"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var p models.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	require.Equal(t, "hi", p.Caption)
	require.Equal(t, "u-amy", p.CreatedBy)
	require.EqualValues(t, 3, p.User.TotalPosts)
}

func TestRouter_CreateComment_UnknownField(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodPost, "/api/comments", bearer(t, "u-amy"), `{"postId":"p-1","text":"x"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_argument", errCode(t, rr).Code)
}

func TestRouter_DeletePost_Partial(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().PostByID(gomock.Any(), "p-1").Return(&models.Post{ID: "p-1", CreatedBy: "u-amy"}, nil)
	f.storage.EXPECT().DeletePost(gomock.Any(), "p-1").Return(nil)
	f.storage.EXPECT().AdjustPostCount(gomock.Any(), "u-amy", int64(-1)).Return(storage.ErrNotFound)
	f.storage.EXPECT().SetStat(gomock.Any(), "u-amy", storage.StatPosts, "p-1", storage.OpRemove).Return(nil)

	rr := f.do(http.MethodDelete, "/api/posts/p-1", bearer(t, "u-amy"), "")
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "partial_failure", errCode(t, rr).Code)
}

func TestRouter_Follow(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().SetFollow(gomock.Any(), "u-amy", "u-bob", storage.OpAdd).Return(nil)

	rr := f.do(http.MethodPost, "/api/users/u-bob/follow", bearer(t, "u-amy"), "")
	require.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRouter_UsernameAvailable(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().UsernameExists(gomock.Any(), "amy").Return(true, nil)

	rr := f.do(http.MethodGet, "/api/usernames/AMY/available", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"username":"AMY","available":false}`, rr.Body.String())
}

func TestRouter_ListUserPosts(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodGet, "/api/users/u-amy/posts?page_size=abc", "", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	f.storage.EXPECT().ListPostsByUser(gomock.Any(), "u-amy", models.ListParams{PageSize: 2, PageToken: "t"}).
		Return(&models.PostPage{NextPageToken: "n"}, nil)

	rr = f.do(http.MethodGet, "/api/users/u-amy/posts?page_size=2&page_token=t", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"items":[],"nextPageToken":"n"}`, rr.Body.String())
}

func TestRouter_PresignImage(t *testing.T) {
	f := newFixture(t)
	f.images.EXPECT().ImageUploadURL(gomock.Any(), "u-amy", "image/png", int64(10)).
		Return(&storage.UploadInfo{UploadURL: "http://minio/put", Key: "images/u-amy/x.png", Expires: time.Minute}, nil)

	rr := f.do(http.MethodPost, "/api/images/presign", bearer(t, "u-amy"), `{"contentType":"image/png","contentLength":10}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(t, "images/u-amy/x.png", out["key"])
	require.EqualValues(t, 60, out["expiresSeconds"])
}
