package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/auth"
)

const purgeInterval = time.Hour

// TokenJobs keeps the refresh token table from growing without bound.
type TokenJobs struct {
	authService auth.AuthService
}

func NewTokenJobs(authService auth.AuthService) *TokenJobs {
	return &TokenJobs{authService: authService}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_refresh_tokens", purgeInterval, j.PurgeRefreshTokens)
}

func (j *TokenJobs) PurgeRefreshTokens(ctx context.Context) error {
	n, err := j.authService.PurgeRefreshTokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge refresh tokens: %w", err)
	}
	if n > 0 {
		slog.Info("Cron: refresh tokens purged", "count", n)
	}
	return nil
}
