package models

import "time"

// Saved — join-запись «пост сохранён пользователем» (/users/{userId}/saved/{postId}).
// Существование записи и есть факт сохранения.
type Saved struct {
	ID        string    `bson:"postId" json:"id"`
	UserID    string    `bson:"userId" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// SavedPage — страница сохранённых постов.
type SavedPage struct {
	Items         []Saved
	NextPageToken string
}

// Stats — зеркало активности пользователя (/users/{userId}/stats/stats).
type Stats struct {
	UserID    string    `bson:"_id" json:"-"`
	Likes     []string  `bson:"likes" json:"likes"`
	Posts     []string  `bson:"posts" json:"posts"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
