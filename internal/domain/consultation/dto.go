package consultation

import (
	"errors"
	"strings"

	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	placeholderNA         = "N/A"
	placeholderDepartment = "No especificado"
)

// Headers is the column order of exported files.
var Headers = []string{
	"Fecha",
	"Código Empleado",
	"Nombres",
	"Apellidos",
	"Departamento",
	"Horas Trabajadas",
	"Horas Ausentes",
	"Razón de Ausencias",
	"Comentarios",
}

type Filter struct {
	DateFrom   string  `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo     string  `json:"date_to" validate:"required,datetime=2006-01-02"`
	Department *string `json:"department" validate:"omitempty,max=255"`
}

// Validate also normalizes Department: blank or "todos" means every department.
func (f *Filter) Validate() error {
	var errs validator.ValidationErrors
	if err := validator.Struct(f); err != nil {
		if !errors.As(err, &errs) {
			return err
		}
	}

	fields := errs.ToMap()
	_, badFrom := fields["date_from"]
	_, badTo := fields["date_to"]
	if !badFrom && !badTo && f.DateTo < f.DateFrom {
		errs.Add("date_to", "date_to debe ser una fecha igual o posterior a date_from")
	}

	f.Department = validator.TrimToNil(f.Department)
	if f.Department != nil && strings.EqualFold(*f.Department, "todos") {
		f.Department = nil
	}
	return errs.OrNil()
}

type RowResponse struct {
	Date         string          `json:"date"`
	EmployeeCode string          `json:"employee_code"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Department   string          `json:"department"`
	HoursWorked  decimal.Decimal `json:"hours_worked"`
	HoursAbsent  decimal.Decimal `json:"hours_absent"`
	Reason       string          `json:"absence_reason"`
	Comments     string          `json:"comments"`
}

// ToRowResponse fills missing values with display placeholders.
func ToRowResponse(r Row) RowResponse {
	resp := RowResponse{
		Date:         r.Date.Format("2006-01-02"),
		EmployeeCode: orDefault(r.EmployeeCode, placeholderNA),
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Department:   orDefault(r.Department, placeholderDepartment),
		HoursWorked:  decimal.Zero,
		HoursAbsent:  decimal.Zero,
		Reason:       orDefault(r.ReasonName, placeholderNA),
		Comments:     orDefault(r.Comments, ""),
	}
	if r.HoursWorked != nil {
		resp.HoursWorked = *r.HoursWorked
	}
	if r.HoursAbsent != nil {
		resp.HoursAbsent = *r.HoursAbsent
	}
	return resp
}

// Record returns the row as export cells in Headers order.
func (r RowResponse) Record() []string {
	return []string{
		r.Date,
		r.EmployeeCode,
		r.FirstName,
		r.LastName,
		r.Department,
		r.HoursWorked.String(),
		r.HoursAbsent.String(),
		r.Reason,
		r.Comments,
	}
}

func orDefault(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// Cells returns the row for spreadsheet export with hours as numbers.
func (r RowResponse) Cells() []interface{} {
	return []interface{}{
		r.Date,
		r.EmployeeCode,
		r.FirstName,
		r.LastName,
		r.Department,
		r.HoursWorked.InexactFloat64(),
		r.HoursAbsent.InexactFloat64(),
		r.Reason,
		r.Comments,
	}
}
