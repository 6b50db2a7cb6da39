package auth

import (
	"context"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Me(ctx context.Context) (user.UserResponse, error)
	// PurgeRefreshTokens deletes refresh tokens that expired or were revoked.
	PurgeRefreshTokens(ctx context.Context) (int64, error)
}
