package models

import "time"

// OTC is a one-time verification code sent by email, stored hashed. At most
// one live code per email; a resend replaces the previous one.
type OTC struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"index"`
	Code      string    `json:"-"` // bcrypt hash of the 6-digit code
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type SendOTCRequest struct {
	Email string `json:"email" validate:"required,email"`
}
