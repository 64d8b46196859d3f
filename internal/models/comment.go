package models

import "time"

// Comment is a user comment on a post.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"type:uuid;index"`
	AuthorID  string    `json:"author_id" gorm:"type:uuid;index"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}
