package absence

import (
	"strings"

	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/pagination"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
)

type ReasonResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"reason_name"`
	Code        string  `json:"reason_code"`
	Description *string `json:"description"`
}

type ListReasonResponse struct {
	Reasons    []ReasonResponse `json:"absence_reasons"`
	Pagination pagination.Page  `json:"pagination"`
}

type CreateReasonRequest struct {
	Name        string  `json:"reason_name" validate:"required,notblank,max=255"`
	Code        string  `json:"reason_code" validate:"required,notblank,max=50"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

func (r *CreateReasonRequest) Validate() error {
	return validator.Struct(r)
}

func (r *CreateReasonRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.TrimSpace(r.Code)
	r.Description = validator.TrimToNil(r.Description)
}

type UpdateReasonRequest struct {
	ID int64 `json:"-"`
	CreateReasonRequest
}

type ReasonFilter struct {
	Search *string
	pagination.Params
}

func ToReasonResponse(r Reason) ReasonResponse {
	return ReasonResponse{
		ID:          r.ID,
		Name:        r.Name,
		Code:        r.Code,
		Description: r.Description,
	}
}
