package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-photo-feed/internal/http/errors"
	"github.com/pribylovaa/go-photo-feed/internal/service"
)

type imageRequest struct {
	Key string `json:"key"`
	Alt string `json:"alt"`
}

type createPostRequest struct {
	Caption string         `json:"caption"`
	Images  []imageRequest `json:"images"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	var in createPostRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	images := make([]service.ImageInput, 0, len(in.Images))
	for _, img := range in.Images {
		images = append(images, service.ImageInput(img))
	}

	p, err := h.svc.CreatePost(r.Context(), actorID, service.CreatePostInput{
		Caption: in.Caption,
		Images:  images,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.PostByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	h.actorAction(w, r, h.svc.DeletePost)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	h.actorAction(w, r, h.svc.LikePost)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	h.actorAction(w, r, h.svc.UnlikePost)
}

func (h *Handlers) SavePost(w http.ResponseWriter, r *http.Request) {
	h.actorAction(w, r, h.svc.SavePost)
}

func (h *Handlers) UnsavePost(w http.ResponseWriter, r *http.Request) {
	h.actorAction(w, r, h.svc.UnsavePost)
}

func (h *Handlers) ListPostComments(w http.ResponseWriter, r *http.Request) {
	p, err := listParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.ListPostComments(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newPage(res.Items, res.NextPageToken))
}
