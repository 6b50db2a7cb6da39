package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/auth"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/user"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/clock"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	user.UserRepository
	users map[int64]user.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

type storedToken struct {
	userID    int64
	expiresAt time.Time
	revoked   bool
}

type fakeJWTRepo struct {
	mu     sync.Mutex
	tokens map[string]*storedToken
	purged time.Time
}

func newFakeJWTRepo() *fakeJWTRepo {
	return &fakeJWTRepo{tokens: map[string]*storedToken{}}
}

func (f *fakeJWTRepo) CreateRefreshToken(_ context.Context, userID int64, token string, expiresAt int64, _ auth.SessionTrackingRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token] = &storedToken{userID: userID, expiresAt: time.Unix(expiresAt, 0)}
	return nil
}

func (f *fakeJWTRepo) IsRefreshTokenRevoked(_ context.Context, token string) (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tokens[token]
	if !ok {
		return 0, false, auth.ErrInvalidToken
	}
	return t.userID, t.revoked || !t.expiresAt.After(time.Now()), nil
}

func (f *fakeJWTRepo) RevokeRefreshToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.tokens[token]; ok {
		t.revoked = true
	}
	return nil
}

func (f *fakeJWTRepo) PurgeRefreshTokens(_ context.Context, olderThan time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purged = olderThan
	var n int64
	for k, t := range f.tokens {
		if t.revoked || t.expiresAt.Before(olderThan) {
			delete(f.tokens, k)
			n++
		}
	}
	return n, nil
}

func newTestService(t *testing.T) (auth.AuthService, *fakeJWTRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[int64]user.User{
		1: {
			ID:           1,
			Username:     "supervisor",
			FirstName:    "Ana",
			LastName:     "López",
			PasswordHash: string(hash),
			Roles:        []user.RoleInfo{{ID: 2, Code: user.RoleSupervisor, Name: "Supervisor"}},
		},
	}}
	jwtRepo := newFakeJWTRepo()
	svc := NewAuthService(passthroughTx{}, clock.Fixed{At: time.Now()}, users, jwt.NewJWTService("test-secret", "1h", "24h", false), jwtRepo)
	return svc, jwtRepo
}

func TestAuthService_Login(t *testing.T) {
	svc, jwtRepo := newTestService(t)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginRequest{Username: "supervisor", Password: "secreto123"}, auth.SessionTrackingRequest{})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "supervisor", resp.User.Username)
		assert.Contains(t, jwtRepo.tokens, resp.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Username: "supervisor", Password: "otra"}, auth.SessionTrackingRequest{})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Username: "nadie", Password: "secreto123"}, auth.SessionTrackingRequest{})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Username: "supervisor", Password: "secreto123"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// An access token is not accepted as a refresh token.
	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))
	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	// Logging out twice, or with an unknown token, is harmless.
	assert.NoError(t, svc.Logout(ctx, login.RefreshToken))
	assert.NoError(t, svc.Logout(ctx, "unknown"))
}

func TestAuthService_Me(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Me(context.Background())
	assert.ErrorIs(t, err, user.ErrUnauthenticated)

	ctx := user.WithPrincipal(context.Background(), user.Principal{UserID: 1})
	me, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", me.FirstName)
	require.Len(t, me.Roles, 1)
	assert.Equal(t, "supervisor", me.Roles[0].Code)

	ctx = user.WithPrincipal(context.Background(), user.Principal{UserID: 99})
	_, err = svc.Me(ctx)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestAuthService_PurgeRefreshTokens(t *testing.T) {
	svc, jwtRepo := newTestService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Username: "supervisor", Password: "secreto123"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	n, err := svc.PurgeRefreshTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Empty(t, jwtRepo.tokens)
	assert.False(t, jwtRepo.purged.IsZero())
}
