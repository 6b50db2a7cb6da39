package http

import (
	"log/slog"
	"net/http"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/report"
	"github.com/asistencia-sv/asistencia-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	SetState(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// List handles GET /reports
func (h *reportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, reports)
}

// Get handles GET /reports/{id}
func (h *reportHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "ID de reporte inválido", nil)
		return
	}
	result, err := h.reportService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Status handles GET /reports/status?date=
func (h *reportHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.reportService.Status(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, status)
}

// Generate handles POST /reports. Answers 201 when the date was opened by
// this call and 200 when a report already existed.
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req report.GenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Formato de solicitud inválido", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, created, err := h.reportService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !created {
		response.SuccessWithMessage(w, "El reporte para esta fecha ya existe", result)
		return
	}
	slog.Info("Report generated", "date", result.Date, "state", result.State)
	response.Created(w, "Reporte generado exitosamente", result)
}

// SetState handles PATCH /reports/{id}
func (h *reportHandlerImpl) SetState(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "ID de reporte inválido", nil)
		return
	}

	var req report.UpdateStateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Formato de solicitud inválido", nil)
		return
	}
	req.ID = id
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.SetState(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Estado del reporte actualizado", result)
}

// Delete handles DELETE /reports/{id}
func (h *reportHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "ID de reporte inválido", nil)
		return
	}
	if err := h.reportService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Reporte eliminado exitosamente", nil)
}
