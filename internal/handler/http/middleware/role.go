package middleware

import (
	"net/http"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/user"
	"github.com/asistencia-sv/asistencia-backend-go/internal/handler/http/response"
)

// RequirePermission checks if the caller holds a role granting permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := user.PrincipalFromContext(r.Context())
			if !ok {
				response.HandleError(w, user.ErrUnauthenticated)
				return
			}
			if !user.Can(principal, permission) {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
