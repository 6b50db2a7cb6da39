package report

import (
	"strings"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
)

type ReportResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	State     State   `json:"state"`
	Comments  *string `json:"comments"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type StatusResponse struct {
	Date   string `json:"date"`
	Open   bool   `json:"open"`
	Exists bool   `json:"exists"`
}

// GenerateRequest creates the report for Date. State defaults to active.
type GenerateRequest struct {
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	State    *State  `json:"state" validate:"omitempty,oneof=active inactive"`
	Comments *string `json:"comments" validate:"omitempty,max=1000"`
}

func (r *GenerateRequest) Validate() error {
	if r.Comments != nil {
		trimmed := strings.TrimSpace(*r.Comments)
		r.Comments = &trimmed
	}
	if err := validator.Struct(r); err != nil {
		return err
	}
	r.Comments = validator.TrimToNil(r.Comments)
	return nil
}

type UpdateStateRequest struct {
	ID    int64 `json:"-"`
	State State `json:"state" validate:"required,oneof=active inactive"`
}

func (r *UpdateStateRequest) Validate() error {
	return validator.Struct(r)
}

func ToReportResponse(r Report) ReportResponse {
	return ReportResponse{
		ID:        r.ID,
		Date:      r.Date.Format("2006-01-02"),
		State:     r.State,
		Comments:  r.Comments,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}
