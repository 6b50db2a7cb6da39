package dailyreport

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var maxHours = decimal.NewFromInt(24)

// maxHoursScale matches the NUMERIC(5, 2) hour columns.
const maxHoursScale = 2

// BulkRecord is one employee row of a bulk save.
type BulkRecord struct {
	EmployeeID      int64            `json:"employee_id" validate:"required,gt=0"`
	HoursWorked     *decimal.Decimal `json:"hours_worked"`
	HoursAbsent     *decimal.Decimal `json:"hours_absent"`
	AbsenceReasonID *int64           `json:"absence_reason_id" validate:"omitempty,gt=0"`
	Comments        *string          `json:"comments" validate:"omitempty,max=1000"`
}

// IsEmpty reports whether the record carries no attendance data. Zero hours
// and a zero reason id count as empty.
func (r BulkRecord) IsEmpty() bool {
	return isZeroOrNil(r.HoursWorked) &&
		isZeroOrNil(r.HoursAbsent) &&
		(r.AbsenceReasonID == nil || *r.AbsenceReasonID == 0) &&
		validator.IsBlank(r.Comments)
}

// ToUpsertRow normalizes the record for storage: missing hours become 0,
// a zero reason becomes NULL and comments are trimmed.
func (r BulkRecord) ToUpsertRow() UpsertRow {
	row := UpsertRow{
		EmployeeID:  r.EmployeeID,
		HoursWorked: decimal.Zero,
		HoursAbsent: decimal.Zero,
		Comments:    validator.TrimToNil(r.Comments),
	}
	if r.HoursWorked != nil {
		row.HoursWorked = *r.HoursWorked
	}
	if r.HoursAbsent != nil {
		row.HoursAbsent = *r.HoursAbsent
	}
	if r.AbsenceReasonID != nil && *r.AbsenceReasonID > 0 {
		id := *r.AbsenceReasonID
		row.AbsenceReasonID = &id
	}
	return row
}

type BulkSaveRequest struct {
	Date    string       `json:"date" validate:"required,datetime=2006-01-02"`
	Records []BulkRecord `json:"records" validate:"required,min=1,dive"`
}

// Validate checks shape and ranges. today is the current calendar day in
// the attendance timezone; dates after it are rejected.
func (r *BulkSaveRequest) Validate(today time.Time) error {
	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		if !errors.As(err, &errs) {
			return err
		}
	}

	if _, bad := errs.ToMap()["date"]; !bad {
		if date, err := r.ParseDate(); err == nil && date.After(today) {
			errs.Add("date", "date debe ser una fecha igual o anterior a hoy")
		}
	}

	for i, rec := range r.Records {
		validateHours(&errs, fmt.Sprintf("records.%d.hours_worked", i), "hours_worked", rec.HoursWorked)
		validateHours(&errs, fmt.Sprintf("records.%d.hours_absent", i), "hours_absent", rec.HoursAbsent)
	}

	return errs.OrNil()
}

// ParseDate returns the request date as a calendar day.
func (r *BulkSaveRequest) ParseDate() (time.Time, error) {
	return time.Parse(dateLayout, r.Date)
}

// Rows drops empty records and collapses repeated employees so that the last
// occurrence wins. Order follows each employee's first appearance.
func (r *BulkSaveRequest) Rows() []UpsertRow {
	rows := make([]UpsertRow, 0, len(r.Records))
	index := make(map[int64]int, len(r.Records))
	for _, rec := range r.Records {
		if rec.IsEmpty() {
			continue
		}
		row := rec.ToUpsertRow()
		if i, seen := index[row.EmployeeID]; seen {
			rows[i] = row
			continue
		}
		index[row.EmployeeID] = len(rows)
		rows = append(rows, row)
	}
	return rows
}

// ListRequest selects the daily reports of one date.
type ListRequest struct {
	Date       string
	Department *string
}

// Validate returns ErrDateRequired without a date and field errors for a malformed one.
func (r *ListRequest) Validate() error {
	if validator.IsEmpty(r.Date) {
		return ErrDateRequired
	}
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("fecha", "Formato de fecha inválido. Use el formato YYYY-MM-DD (ejemplo: 2024-01-15)")
	}
	r.Department = validator.TrimToNil(r.Department)
	return errs.OrNil()
}

// CreateRequest stores a single daily report.
type CreateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	BulkRecord
}

func (r *CreateRequest) Validate(today time.Time) error {
	bulk := BulkSaveRequest{Date: r.Date, Records: []BulkRecord{r.BulkRecord}}
	err := bulk.Validate(today)

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	// Single-row requests report flat field names.
	for i := range errs {
		errs[i].Field = strings.TrimPrefix(errs[i].Field, "records.0.")
	}
	return errs
}

// UpdateRequest overwrites the attendance data of an existing report. Date
// and employee are fixed once created.
type UpdateRequest struct {
	ID              int64            `json:"-"`
	HoursWorked     *decimal.Decimal `json:"hours_worked"`
	HoursAbsent     *decimal.Decimal `json:"hours_absent"`
	AbsenceReasonID *int64           `json:"absence_reason_id" validate:"omitempty,gt=0"`
	Comments        *string          `json:"comments" validate:"omitempty,max=1000"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		if !errors.As(err, &errs) {
			return err
		}
	}
	validateHours(&errs, "hours_worked", "hours_worked", r.HoursWorked)
	validateHours(&errs, "hours_absent", "hours_absent", r.HoursAbsent)
	return errs.OrNil()
}

type DailyReportResponse struct {
	ID              int64            `json:"id"`
	Date            string           `json:"date"`
	EmployeeID      int64            `json:"employee_id"`
	HoursWorked     *decimal.Decimal `json:"hours_worked"`
	HoursAbsent     *decimal.Decimal `json:"hours_absent"`
	AbsenceReasonID *int64           `json:"absence_reason_id"`
	Comments        *string          `json:"comments"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
}

type DetailResponse struct {
	DailyReportResponse
	EmployeeCode *string `json:"employee_code"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Department   *string `json:"department"`
	ReasonName   *string `json:"reason_name"`
	ReasonCode   *string `json:"reason_code"`
}

// ListResponse wraps the reports of one date.
type ListResponse struct {
	Reports []DetailResponse `json:"reports"`
}

func ToDailyReportResponse(r DailyReport) DailyReportResponse {
	return DailyReportResponse{
		ID:              r.ID,
		Date:            r.Date.Format(dateLayout),
		EmployeeID:      r.EmployeeID,
		HoursWorked:     r.HoursWorked,
		HoursAbsent:     r.HoursAbsent,
		AbsenceReasonID: r.AbsenceReasonID,
		Comments:        r.Comments,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToDetailResponse(d Detail) DetailResponse {
	return DetailResponse{
		DailyReportResponse: ToDailyReportResponse(d.DailyReport),
		EmployeeCode:        d.EmployeeCode,
		FirstName:           d.FirstName,
		LastName:            d.LastName,
		Department:          d.Department,
		ReasonName:          d.ReasonName,
		ReasonCode:          d.ReasonCode,
	}
}

func validateHours(errs *validator.ValidationErrors, path, name string, hours *decimal.Decimal) {
	if hours == nil {
		return
	}
	switch {
	case hours.IsNegative() || hours.GreaterThan(maxHours):
		errs.Add(path, name+" debe estar entre 0 y 24")
	case hours.Exponent() < -maxHoursScale && !hours.Equal(hours.Truncate(maxHoursScale)):
		errs.Add(path, fmt.Sprintf("%s admite como máximo %d decimales", name, maxHoursScale))
	}
}

func isZeroOrNil(d *decimal.Decimal) bool {
	return d == nil || d.IsZero()
}
