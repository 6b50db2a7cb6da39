package middleware

import (
	"log/slog"
	"net/http"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/auth"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/user"
	"github.com/asistencia-sv/asistencia-backend-go/internal/handler/http/response"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired accepts only verified access tokens and stores the caller as
// a user.Principal in the request context. It must run after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if tokenType, _ := claims["type"].(string); tokenType != jwt.TokenTypeAccess {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		principal, err := jwt.PrincipalFromClaims(claims)
		if err != nil {
			slog.Warn("Access token without usable identity", "error", err)
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(user.WithPrincipal(r.Context(), principal)))
	})
}
