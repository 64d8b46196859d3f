package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is a registered user identity. Email and handle are unique across
// all accounts.
type Account struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Username  string    `json:"username"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Handle    string    `json:"handle" gorm:"uniqueIndex"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Avatar    string    `json:"avatar,omitempty"`
	Banner    string    `json:"banner,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// AccountBasicInfo is the slice of an account safe to return on auth
// responses.
type AccountBasicInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Handle   string `json:"handle"`
	Avatar   string `json:"avatar,omitempty"`
}

func (a *Account) BasicInfo() AccountBasicInfo {
	return AccountBasicInfo{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Handle:   a.Handle,
		Avatar:   a.Avatar,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Handle   string `json:"handle" validate:"required,min=2,max=30"`
	Password string `json:"password" validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}
