package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session represents one authenticated device/browser instance. The token is
// the opaque secret delivered via cookie; it is unique across all sessions.
type Session struct {
	ID        string    `json:"session_id" gorm:"type:uuid;primaryKey"`
	AccountID string    `json:"user_id" gorm:"type:uuid;index"`
	Token     string    `json:"-" gorm:"uniqueIndex;size:128"`
	Browser   string    `json:"browser"`
	OS        string    `json:"os"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// IsExpired reports whether the session is past its expiry at the given time.
func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// DeviceInfo is the client metadata captured at login.
type DeviceInfo struct {
	Browser  string `json:"browser"`
	OS       string `json:"os"`
	Platform string `json:"platform"`
}

// SessionInfo is a session as shown on the sessions list, with the current
// one marked.
type SessionInfo struct {
	SessionID        string    `json:"session_id"`
	AccountID        string    `json:"user_id"`
	Browser          string    `json:"browser"`
	OS               string    `json:"os"`
	Platform         string    `json:"platform"`
	CreatedAt        time.Time `json:"created_at"`
	ExpiresAt        time.Time `json:"expires_at"`
	IsCurrentSession bool      `json:"isCurrentSession"`
}
