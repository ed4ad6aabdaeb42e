// Package snapshot строит денормализованную проекцию профиля (ProfileSnapshot),
// встраиваемую в посты и комментарии, и определяет, требует ли изменение
// пользователя её перераспространения.
package snapshot

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pribylovaa/go-photo-feed/internal/models"
)

// ErrIncompleteProfile — у пользователя нет обязательных для снапшота полей.
var ErrIncompleteProfile = errors.New("incomplete profile")

// Имена полей allow-list'а в терминах документа users.
const (
	FieldPhotoURL   = "photoURL"
	FieldUsername   = "username"
	FieldName       = "name"
	FieldTotalPosts = "totalPosts"
	FieldFollowers  = "followers"
	FieldFollowing  = "following"
	FieldIsAdmin    = "isAdmin"
	FieldVerified   = "verified"
	FieldPrivate    = "private"
)

// Embed возвращает снапшот профиля для нового поста или комментария.
// Обязательны id, username и photoURL; при их отсутствии — ErrIncompleteProfile,
// запись в таком случае выполняться не должна.
func Embed(u models.User) (models.ProfileSnapshot, error) {
	var missing []string

	if strings.TrimSpace(u.ID) == "" {
		missing = append(missing, "id")
	}

	if strings.TrimSpace(u.Username) == "" {
		missing = append(missing, FieldUsername)
	}

	if strings.TrimSpace(u.PhotoURL) == "" {
		missing = append(missing, FieldPhotoURL)
	}

	if len(missing) > 0 {
		return models.ProfileSnapshot{}, fmt.Errorf("%w: missing %s", ErrIncompleteProfile, strings.Join(missing, ", "))
	}

	return Project(u), nil
}

// Project — та же проекция без валидации. Срезы копируются:
// снапшот не делит память с исходным User.
func Project(u models.User) models.ProfileSnapshot {
	return models.ProfileSnapshot{
		UserID:      u.ID,
		Name:        u.Name,
		Username:    u.Username,
		PhotoURL:    u.PhotoURL,
		IsAdmin:     u.IsAdmin,
		Verified:    u.Verified,
		Following:   cloneIDs(u.Following),
		Followers:   cloneIDs(u.Followers),
		TotalPosts:  u.TotalPosts,
		TotalPhotos: u.TotalPhotos,
		Private:     u.Private,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		Version:     u.Version,
	}
}

// Changed сообщает, отличается ли хотя бы одно поле allow-list'а.
// Сравнение по значению; срезы сравниваются поэлементно с учётом порядка.
func Changed(before, after models.User) bool {
	return len(ChangedFields(before, after)) > 0
}

// ChangedFields возвращает имена отличающихся полей allow-list'а.
func ChangedFields(before, after models.User) []string {
	var out []string

	if before.PhotoURL != after.PhotoURL {
		out = append(out, FieldPhotoURL)
	}

	if before.Username != after.Username {
		out = append(out, FieldUsername)
	}

	if before.Name != after.Name {
		out = append(out, FieldName)
	}

	if before.TotalPosts != after.TotalPosts {
		out = append(out, FieldTotalPosts)
	}

	if !slices.Equal(before.Followers, after.Followers) {
		out = append(out, FieldFollowers)
	}

	if !slices.Equal(before.Following, after.Following) {
		out = append(out, FieldFollowing)
	}

	if before.IsAdmin != after.IsAdmin {
		out = append(out, FieldIsAdmin)
	}

	if before.Verified != after.Verified {
		out = append(out, FieldVerified)
	}

	if before.Private != after.Private {
		out = append(out, FieldPrivate)
	}

	return out
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return slices.Clone(ids)
}
