package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	apierrors "github.com/pribylovaa/go-photo-feed/internal/http/errors"
	"github.com/pribylovaa/go-photo-feed/internal/http/middleware"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/service"
)

// Handlers — REST-обработчики поверх сервисного слоя.
type Handlers struct {
	svc *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{svc: svc}
}

// page — JSON-представление страницы выдачи.
type page[T any] struct {
	Items         []T    `json:"items"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}

func newPage[T any](items []T, next string) page[T] {
	if items == nil {
		items = []T{}
	}

	return page[T]{Items: items, NextPageToken: next}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// listParams читает page_size/page_token из query.
func listParams(r *http.Request) (models.ListParams, error) {
	var p models.ListParams

	if v := r.URL.Query().Get("page_size"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			return p, apierrors.ErrBadRequest
		}
		p.PageSize = int32(n)
	}

	p.PageToken = r.URL.Query().Get("page_token")
	return p, nil
}

// actor возвращает id аутентифицированного пользователя или пишет 401.
func actor(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := middleware.ActorID(r.Context())
	if id == "" {
		apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
		return "", false
	}

	return id, true
}
