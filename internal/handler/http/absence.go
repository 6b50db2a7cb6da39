package http

import (
	"net/http"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/absence"
	"github.com/asistencia-sv/asistencia-backend-go/internal/handler/http/response"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/pagination"
)

type AbsenceReasonHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type absenceReasonHandlerImpl struct {
	reasonService absence.ReasonService
}

func NewAbsenceReasonHandler(reasonService absence.ReasonService) AbsenceReasonHandler {
	return &absenceReasonHandlerImpl{reasonService: reasonService}
}

func (h *absenceReasonHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := absence.ReasonFilter{
		Search: queryPtr(r, "search"),
		Params: pagination.FromQuery(r.URL.Query()),
	}
	result, err := h.reasonService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *absenceReasonHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "ID de razón de ausencia inválido", nil)
		return
	}
	result, err := h.reasonService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *absenceReasonHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateReasonRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Formato de solicitud inválido", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reasonService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Razón de ausencia creada exitosamente", result)
}

func (h *absenceReasonHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "ID de razón de ausencia inválido", nil)
		return
	}

	var req absence.UpdateReasonRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Formato de solicitud inválido", nil)
		return
	}
	req.ID = id
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reasonService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Razón de ausencia actualizada exitosamente", result)
}

func (h *absenceReasonHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "ID de razón de ausencia inválido", nil)
		return
	}
	if err := h.reasonService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Razón de ausencia eliminada exitosamente", nil)
}
