package models

import "time"

// ImageRef — изображение поста: порядковый id, публичный URL и alt-текст.
type ImageRef struct {
	ID  int    `bson:"id" json:"id"`
	Src string `bson:"src" json:"src"`
	Alt string `bson:"alt" json:"alt"`
}

// Post — пост (коллекция posts).
//   - User — снапшот автора на момент создания; переписывается propagator'ом.
//   - UserComments — число комментариев (включая ответы), ведётся $inc.
//   - UserLikes/UserShares — множества user id, ведутся $addToSet/$pull.
type Post struct {
	ID           string          `bson:"_id" json:"id"`
	Caption      string          `bson:"caption,omitempty" json:"caption,omitempty"`
	Images       []ImageRef      `bson:"images,omitempty" json:"images,omitempty"`
	UserLikes    []string        `bson:"userLikes" json:"userLikes"`
	CreatedBy    string          `bson:"createdBy" json:"createdBy"`
	User         ProfileSnapshot `bson:"user" json:"user"`
	UserComments int64           `bson:"userComments" json:"userComments"`
	UserShares   []string        `bson:"userShares" json:"userShares"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// HasImages сообщает, учитывается ли пост в totalPhotos автора.
func (p *Post) HasImages() bool {
	return len(p.Images) > 0
}

// ListParams — базовые параметры постраничной выдачи.
type ListParams struct {
	PageSize  int32
	PageToken string
}

// PostPage — страница постов.
type PostPage struct {
	Items         []Post
	NextPageToken string
}
