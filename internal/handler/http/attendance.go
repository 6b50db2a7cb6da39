package http

import (
	"net/http"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia-sv/asistencia-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Stats implements AttendanceHandler. A missing date means today.
func (h *attendanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.attendanceService.Stats(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}
