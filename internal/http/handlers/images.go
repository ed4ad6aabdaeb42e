package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-photo-feed/internal/http/errors"
)

type presignRequest struct {
	ContentType   string `json:"contentType"`
	ContentLength int64  `json:"contentLength"`
}

type presignResponse struct {
	UploadURL      string            `json:"uploadUrl"`
	Key            string            `json:"key"`
	ExpiresSeconds int64             `json:"expiresSeconds"`
	RequiredHeader map[string]string `json:"requiredHeaders"`
}

type confirmRequest struct {
	Key string `json:"key"`
}

type confirmResponse struct {
	Key string `json:"key"`
	Src string `json:"src"`
}

// PresignImage выдаёт presigned PUT. Клиент загружает файл напрямую в хранилище,
// затем передаёт key в /images/confirm или сразу в POST /posts.
func (h *Handlers) PresignImage(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	var in presignRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	info, err := h.svc.ImageUploadURL(r.Context(), actorID, in.ContentType, in.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, presignResponse{
		UploadURL:      info.UploadURL,
		Key:            info.Key,
		ExpiresSeconds: int64(info.Expires.Seconds()),
		RequiredHeader: info.RequiredHeader,
	})
}

func (h *Handlers) ConfirmImage(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}

	var in confirmRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	src, err := h.svc.ConfirmImage(r.Context(), actorID, in.Key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, confirmResponse{Key: in.Key, Src: src})
}
