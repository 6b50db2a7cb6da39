package postgresql

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/auth"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// JWTRepository stores refresh tokens by digest; raw tokens never reach the database.
type JWTRepository interface {
	CreateRefreshToken(ctx context.Context, userID int64, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error
	// IsRefreshTokenRevoked reports the token owner and whether the token is
	// revoked or expired. Unknown tokens yield auth.ErrInvalidToken.
	IsRefreshTokenRevoked(ctx context.Context, token string) (userID int64, revoked bool, err error)
	RevokeRefreshToken(ctx context.Context, token string) error
	// PurgeRefreshTokens deletes tokens that expired or were revoked before olderThan.
	PurgeRefreshTokens(ctx context.Context, olderThan time.Time) (int64, error)
}

type jwtRepositoryImpl struct {
	db *database.DB
}

func NewJWTRepository(db *database.DB) JWTRepository {
	return &jwtRepositoryImpl{db: db}
}

func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (j *jwtRepositoryImpl) CreateRefreshToken(ctx context.Context, userID int64, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	_, err := GetQuerier(ctx, j.db).Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at, user_agent, ip_address)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
	`, userID, tokenDigest(token), time.Unix(expiresAt, 0).UTC(), sessionReq.UserAgent, sessionReq.IPAddress)
	if err != nil {
		return fmt.Errorf("failed to store refresh token for user %d: %w", userID, err)
	}
	return nil
}

func (j *jwtRepositoryImpl) IsRefreshTokenRevoked(ctx context.Context, token string) (int64, bool, error) {
	var (
		userID  int64
		revoked bool
	)
	err := GetQuerier(ctx, j.db).QueryRow(ctx, `
		SELECT user_id, (revoked_at IS NOT NULL OR expires_at <= NOW())
		FROM refresh_tokens
		WHERE token_hash = $1
		ORDER BY expires_at DESC
		LIMIT 1
	`, tokenDigest(token)).Scan(&userID, &revoked)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, auth.ErrInvalidToken
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	return userID, revoked, nil
}

func (j *jwtRepositoryImpl) RevokeRefreshToken(ctx context.Context, token string) error {
	_, err := GetQuerier(ctx, j.db).Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = NOW() WHERE token_hash = $1 AND revoked_at IS NULL`,
		tokenDigest(token))
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (j *jwtRepositoryImpl) PurgeRefreshTokens(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := GetQuerier(ctx, j.db).Exec(ctx, `
		DELETE FROM refresh_tokens
		WHERE expires_at < $1 OR revoked_at < $1
	`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to purge refresh tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
