package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/dailyreport"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/report"
	"github.com/asistencia-sv/asistencia-backend-go/internal/handler/http/response"
)

const notGeneratedMessage = "La fecha no está generada"

type DailyReportHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	BulkSave(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type dailyReportHandlerImpl struct {
	dailyReportService dailyreport.DailyReportService
}

func NewDailyReportHandler(dailyReportService dailyreport.DailyReportService) DailyReportHandler {
	return &dailyReportHandlerImpl{dailyReportService: dailyReportService}
}

// List handles GET /daily-reports?fecha=&department=. A date without an
// active report is answered with success=false and an empty list.
func (h *dailyReportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := dailyreport.ListRequest{
		Date:       r.URL.Query().Get("fecha"),
		Department: queryPtr(r, "department", "departamento"),
	}

	reports, err := h.dailyReportService.ListByDate(r.Context(), req)
	if errors.Is(err, report.ErrNotGenerated) {
		response.Unsuccessful(w, notGeneratedMessage, dailyreport.ListResponse{Reports: []dailyreport.DetailResponse{}})
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, dailyreport.ListResponse{Reports: reports})
}

// BulkSave handles POST /daily-reports/bulk
func (h *dailyReportHandlerImpl) BulkSave(w http.ResponseWriter, r *http.Request) {
	var req dailyreport.BulkSaveRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("BulkSave decode error", "error", err)
		response.BadRequest(w, "Formato de solicitud inválido", nil)
		return
	}

	result, err := h.dailyReportService.BulkSave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, result.Message(), result)
}

// Create handles POST /daily-reports
func (h *dailyReportHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req dailyreport.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Formato de solicitud inválido", nil)
		return
	}

	result, err := h.dailyReportService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Registro creado exitosamente", result)
}

// Update handles PUT /daily-reports/{id}
func (h *dailyReportHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "ID de registro inválido", nil)
		return
	}

	var req dailyreport.UpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Formato de solicitud inválido", nil)
		return
	}
	req.ID = id

	result, err := h.dailyReportService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Registro actualizado exitosamente", result)
}

// Delete handles DELETE /daily-reports/{id}
func (h *dailyReportHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "ID de registro inválido", nil)
		return
	}
	if err := h.dailyReportService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Registro eliminado exitosamente", nil)
}
