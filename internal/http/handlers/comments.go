package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-photo-feed/internal/http/errors"
	"github.com/pribylovaa/go-photo-feed/internal/service"
)

type createCommentRequest struct {
	PostID  string `json:"postId"`
	ReplyTo string `json:"replyTo"`
	Comment string `json:"comment"`
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	var in createCommentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	c, err := h.svc.CreateComment(r.Context(), actorID, service.CreateCommentInput{
		PostID:  in.PostID,
		ReplyTo: in.ReplyTo,
		Text:    in.Comment,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (h *Handlers) GetComment(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.CommentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	h.actorAction(w, r, h.svc.DeleteComment)
}

func (h *Handlers) ListReplies(w http.ResponseWriter, r *http.Request) {
	p, err := listParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.ListReplies(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newPage(res.Items, res.NextPageToken))
}

func (h *Handlers) LikeComment(w http.ResponseWriter, r *http.Request) {
	h.actorAction(w, r, h.svc.LikeComment)
}

func (h *Handlers) UnlikeComment(w http.ResponseWriter, r *http.Request) {
	h.actorAction(w, r, h.svc.UnlikeComment)
}
