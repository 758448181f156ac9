package dto

import (
	"time"

	"github.com/staffdesk/staffdesk/internal/domain/profile"
	"github.com/staffdesk/staffdesk/internal/validator"
)

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *SignInRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,max=255"`
}

func (r *SignUpRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// AuthUser is an identity joined with its profile row. Profile is nil when
// no row exists yet.
type AuthUser struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	CreatedAt time.Time        `json:"created_at"`
	Profile   *profile.Profile `json:"profile,omitempty"`
}

type Session struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         *AuthUser `json:"user"`
}
