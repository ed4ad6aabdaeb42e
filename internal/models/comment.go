package models

import "time"

// CommentParent — указатель треда.
//   - ID — непосредственный родитель: пост для корневого комментария,
//     корень треда для ответа (треды плоские);
//   - ParentID — автор комментария/поста, на который отвечают;
//   - ReplyParent — id корня треда для ответа, nil для корневого комментария.
type CommentParent struct {
	ID          string  `bson:"id" json:"id"`
	ParentID    string  `bson:"parentId" json:"parentId"`
	ReplyParent *string `bson:"replyParent" json:"replyParent"`
}

// Comment — комментарий или ответ (коллекция comments).
// PostID — пост, к которому относится весь тред; нужен для декремента
// счётчика поста при удалении ответа.
type Comment struct {
	ID           string          `bson:"_id" json:"id"`
	PostID       string          `bson:"postId" json:"postId"`
	Comment      string          `bson:"comment" json:"comment"`
	Parent       CommentParent   `bson:"parent" json:"parent"`
	Mention      *string         `bson:"mention" json:"mention"`
	UserLikes    []string        `bson:"userLikes" json:"userLikes"`
	CreatedBy    string          `bson:"createdBy" json:"createdBy"`
	User         ProfileSnapshot `bson:"user" json:"user"`
	UserComments int64           `bson:"userComments" json:"userComments"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// IsReply сообщает, является ли комментарий ответом в треде.
func (c *Comment) IsReply() bool {
	return c.Parent.ReplyParent != nil
}

// ThreadRoot возвращает id корня треда: свой id для корня, ReplyParent для ответа.
func (c *Comment) ThreadRoot() string {
	if c.Parent.ReplyParent != nil {
		return *c.Parent.ReplyParent
	}

	return c.ID
}

// CommentPage — страница комментариев.
type CommentPage struct {
	Items         []Comment
	NextPageToken string
}
