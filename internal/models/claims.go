package models

import "github.com/golang-jwt/jwt/v4"

// AccessTokenClaims are the claims embedded in a short-lived access token.
type AccessTokenClaims struct {
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
	Email     string `json:"email"`
	Handle    string `json:"handle"`
	jwt.RegisteredClaims
}

// Principal is the authenticated identity attached to a request once the
// session cookie or access token has been verified.
type Principal struct {
	UserID    string
	SessionID string
	Email     string
	Handle    string
}
