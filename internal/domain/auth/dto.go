package auth

import (
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/user"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

func (r *LoginRequest) Validate() error {
	return validator.Struct(r)
}

// RefreshTokenRequest carries the token when the client cannot send the cookie.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required,notblank,max=2048"`
}

func (r *RefreshTokenRequest) Validate() error {
	return validator.Struct(r)
}

type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}

type TokenResponse struct {
	AccessToken           string            `json:"access_token"`
	AccessTokenExpiresIn  int64             `json:"access_token_expires_in"`
	RefreshToken          string            `json:"refresh_token"`
	RefreshTokenExpiresIn int64             `json:"refresh_token_expires_in"`
	User                  user.UserResponse `json:"user"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}
