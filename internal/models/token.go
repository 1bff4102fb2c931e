package models

import (
	"time"
)

// AuthToken is a bearer token issued at login. Only the SHA-256 hash of the
// token is stored; the plaintext value exists solely in the login response.
type AuthToken struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	TokenHash string    `json:"-" db:"token_hash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LoginRequest is the POST /v1/login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the authenticated user and the plaintext bearer token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
