package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SignupRequest struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"notblank,email"`
	Password string `json:"password" validate:"notblank,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken string    `json:"token"`
	ExpiresIn   int64     `json:"expiresIn"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// LoginResponse carries Token only when token issuing is enabled.
type LoginResponse struct {
	User  *UserResponse
	Token *TokenResponse
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
