package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-photo-feed/internal/http/errors"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/service"
)

type createUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Bio      *string `json:"bio"`
	Website  *string `json:"website"`
	Location *string `json:"location"`
	PhotoURL *string `json:"photoURL"`
}

type availabilityResponse struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
}

// CreateUser — первый вход: профиль создаётся для subject токена.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	var in createUserRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	u, err := h.svc.CreateUser(r.Context(), service.CreateUserInput{
		ID:       actorID,
		Username: in.Username,
		Name:     in.Name,
		PhotoURL: in.PhotoURL,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, u)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.UserByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	var in updateProfileRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), actorID, chi.URLParam(r, "id"), service.UpdateProfileInput(in))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}

func (h *Handlers) UsernameAvailable(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	ok, err := h.svc.CheckUsernameAvailability(r.Context(), username)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, availabilityResponse{Username: username, Available: ok})
}

func (h *Handlers) ListUserPosts(w http.ResponseWriter, r *http.Request) {
	p, err := listParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.ListUserPosts(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newPage(res.Items, res.NextPageToken))
}

func (h *Handlers) ListSaved(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	p, err := listParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.ListSaved(r.Context(), actorID, chi.URLParam(r, "id"), p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newPage[models.Saved](res.Items, res.NextPageToken))
}

func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.StatsByUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, st)
}

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	h.actorAction(w, r, h.svc.Follow)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.actorAction(w, r, h.svc.Unfollow)
}

func (h *Handlers) Verify(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, h.svc.SetVerified, true)
}

func (h *Handlers) Unverify(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, h.svc.SetVerified, false)
}

func (h *Handlers) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, h.svc.SetAdmin, true)
}

func (h *Handlers) RevokeAdmin(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, h.svc.SetAdmin, false)
}

type flagFunc func(ctx context.Context, actorID, userID string, v bool) (*models.User, error)

func (h *Handlers) setFlag(w http.ResponseWriter, r *http.Request, fn flagFunc, v bool) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	u, err := fn(r.Context(), actorID, chi.URLParam(r, "id"), v)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}

// actorAction — действие актора над ресурсом {id} без тела ответа.
func (h *Handlers) actorAction(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, actorID, id string) error) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	if err := fn(r.Context(), actorID, chi.URLParam(r, "id")); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
