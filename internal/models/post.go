package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a privacy-scoped piece of content owned by one account.
type Post struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID   string    `json:"owner_id" gorm:"type:uuid;index"`
	Content   string    `json:"content"`
	Privacy   Privacy   `json:"privacy" gorm:"size:20;default:'PUBLIC'"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PostView is a post as returned to a requester, annotated with ownership.
type PostView struct {
	Post
	TotalLikes           int64 `json:"totalLikes"`
	TotalComments        int64 `json:"totalComments"`
	IsOwnedByCurrentUser bool  `json:"isOwnedByCurrentUser"`
}
