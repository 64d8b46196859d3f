package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collection is a privacy-scoped grouping of media owned by one account.
type Collection struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID     string    `json:"owner_id" gorm:"type:uuid;index"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Privacy     Privacy   `json:"privacy" gorm:"size:20;default:'PUBLIC'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CollectionView is a collection as returned to a requester, annotated with
// ownership.
type CollectionView struct {
	Collection
	IsOwnedByCurrentUser bool `json:"isOwnedByCurrentUser"`
}
