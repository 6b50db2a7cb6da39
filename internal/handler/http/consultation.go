package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/consultation"
	"github.com/asistencia-sv/asistencia-backend-go/internal/handler/http/response"
)

var contentTypes = map[consultation.Format]string{
	consultation.FormatCSV:  "text/csv; charset=utf-8",
	consultation.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

type ConsultationHandler interface {
	Query(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type consultationHandlerImpl struct {
	consultationService consultation.ConsultationService
}

func NewConsultationHandler(consultationService consultation.ConsultationService) ConsultationHandler {
	return &consultationHandlerImpl{consultationService: consultationService}
}

func filterFromQuery(r *http.Request) consultation.Filter {
	q := r.URL.Query()
	return consultation.Filter{
		DateFrom:   q.Get("date_from"),
		DateTo:     q.Get("date_to"),
		Department: queryPtr(r, "department", "departamento"),
	}
}

func (h *consultationHandlerImpl) Query(w http.ResponseWriter, r *http.Request) {
	rows, err := h.consultationService.Query(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// Export buffers the file so that a failure can still be answered as JSON.
func (h *consultationHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format := consultation.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = consultation.FormatCSV
	}

	var buf bytes.Buffer
	filename, err := h.consultationService.Export(r.Context(), filterFromQuery(r), format, &buf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	header := w.Header()
	header.Set("Content-Type", contentTypes[format])
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	header.Set("Content-Length", strconv.Itoa(buf.Len()))
	header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	header.Set("Pragma", "no-cache")
	header.Set("Expires", "0")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
