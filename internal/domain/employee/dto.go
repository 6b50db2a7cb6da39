package employee

import (
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/pagination"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID           int64   `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Department   *string `json:"department"`
	EmployeeCode *string `json:"employee_code"`
	HireDate     string  `json:"hire_date"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Pagination pagination.Page    `json:"pagination"`
}

type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name" validate:"required,notblank,max=255"`
	LastName     string  `json:"last_name" validate:"required,notblank,max=255"`
	Department   *string `json:"department" validate:"omitempty,max=255"`
	EmployeeCode *string `json:"employee_code" validate:"omitempty,max=50"`
	HireDate     string  `json:"hire_date" validate:"required,datetime=2006-01-02"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validator.Struct(r)
}

// Normalize trims optional text and turns blanks into nil.
func (r *CreateEmployeeRequest) Normalize() {
	r.Department = validator.TrimToNil(r.Department)
	r.EmployeeCode = validator.TrimToNil(r.EmployeeCode)
}

type UpdateEmployeeRequest struct {
	ID int64 `json:"-"`
	CreateEmployeeRequest
}

type EmployeeFilter struct {
	Search *string
	pagination.Params
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Department:   e.Department,
		EmployeeCode: e.EmployeeCode,
		HireDate:     e.HireDate.Format("2006-01-02"),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}
