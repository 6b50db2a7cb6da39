package jwt

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	RefreshCookieName = "refresh_token"
	refreshCookiePath = "/api/auth"
)

type Service interface {
	GenerateAccessToken(userID int64, username string, roles []user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID int64) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	ClearedRefreshTokenCookie() *http.Cookie
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	secureCookies              bool
	tokenAuth                  *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string, secureCookies bool) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		secureCookies:              secureCookies,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(userID int64, username string, roles []user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	roleCodes := make([]string, 0, len(roles))
	for _, r := range roles {
		roleCodes = append(roleCodes, string(r))
	}

	claims := map[string]interface{}{
		"user_id":  strconv.FormatInt(userID, 10),
		"username": username,
		"roles":    roleCodes,
		"type":     TokenTypeAccess,
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// GenerateRefreshToken issues a refresh token. The jti claim keeps tokens
// issued within the same second distinct.
func (j *JWTService) GenerateRefreshToken(userID int64) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": strconv.FormatInt(userID, 10),
		"jti":     uuid.NewString(),
		"exp":     expiresAt,
		"type":    TokenTypeRefresh,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     refreshCookiePath,
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   j.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) ClearedRefreshTokenCookie() *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   j.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}

// PrincipalFromClaims rebuilds the caller identity from access token claims.
func PrincipalFromClaims(claims map[string]interface{}) (user.Principal, error) {
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return user.Principal{}, fmt.Errorf("user_id claim missing")
	}
	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return user.Principal{}, fmt.Errorf("user_id claim malformed: %w", err)
	}

	p := user.Principal{UserID: userID}
	p.Username, _ = claims["username"].(string)

	switch roles := claims["roles"].(type) {
	case []interface{}:
		for _, r := range roles {
			if code, ok := r.(string); ok {
				p.Roles = append(p.Roles, user.Role(code))
			}
		}
	case []string:
		for _, code := range roles {
			p.Roles = append(p.Roles, user.Role(code))
		}
	}
	return p, nil
}

// UserIDFromClaims extracts the numeric user id of any token type.
func UserIDFromClaims(claims map[string]interface{}) (int64, error) {
	p, err := PrincipalFromClaims(claims)
	return p.UserID, err
}
