package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/absence"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/auth"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/consultation"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/dailyreport"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/employee"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/report"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/user"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
)

// InvalidDateMessage is shown when a date query parameter cannot be parsed.
const InvalidDateMessage = "Formato de fecha inválido. Use el formato YYYY-MM-DD (ejemplo: 2024-01-15)"

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Usuario o contraseña incorrectos.")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token inválido o expirado.")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "El token de actualización fue revocado.")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "No se encontró el token de actualización.")
	case errors.Is(err, user.ErrUnauthenticated):
		Unauthorized(w, "No autenticado.")
	case errors.Is(err, auth.ErrUserNotFound),
		errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "Usuario no encontrado.")

	// Users
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "El nombre de usuario ya está registrado.")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		Forbidden(w, "No puede eliminar su propia cuenta.")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "No tiene permisos para realizar esta acción.")

	// Catalogues
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Empleado no encontrado.")
	case errors.Is(err, absence.ErrReasonNotFound):
		NotFound(w, "Razón de ausencia no encontrada.")
	case errors.Is(err, absence.ErrReasonCodeExists):
		Conflict(w, "El código de la razón de ausencia ya existe.")

	// Reports
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Reporte no encontrado.")
	case errors.Is(err, report.ErrNotGenerated):
		Unsuccessful(w, "La fecha no está generada", nil)
	case errors.Is(err, dailyreport.ErrDailyReportNotFound):
		NotFound(w, "Registro de asistencia no encontrado.")
	case errors.Is(err, dailyreport.ErrDateRequired):
		BadRequest(w, "La fecha es requerida.", nil)
	case errors.Is(err, dailyreport.ErrDailyReportExists):
		Conflict(w, "Ya existe un registro para este empleado en la fecha indicada.")

	// Queries
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, InvalidDateMessage, nil)
	case errors.Is(err, consultation.ErrUnsupportedFormat):
		BadRequest(w, "Formato de exportación no soportado. Use csv o xlsx.", nil)

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "Ocurrió un error inesperado.")
	}
}
