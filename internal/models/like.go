package models

import "time"

// Like marks that a user liked a post, unique per (post, user).
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"type:uuid;index;uniqueIndex:idx_post_user_like"`
	UserID    string    `json:"user_id" gorm:"type:uuid;uniqueIndex:idx_post_user_like"`
	CreatedAt time.Time `json:"created_at"`
}
