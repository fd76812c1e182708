package auth

import (
	"errors"
	"time"
)

type RegisterDTO struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type adminResponse struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLoginTime *time.Time `json:"last_login_time,omitempty"`
}

// tokenResponse is the envelope returned by login and register.
type tokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	Admin       adminResponse `json:"admin"`
}

var (
	errInvalidCredentials = errors.New("invalid credentials")
	errEmailTaken         = errors.New("email already registered")
)
