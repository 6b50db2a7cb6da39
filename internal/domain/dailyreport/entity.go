package dailyreport

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DailyReport is one employee's attendance for one calendar date. At most
// one exists per (Date, EmployeeID).
type DailyReport struct {
	ID              int64
	Date            time.Time
	EmployeeID      int64
	HoursWorked     *decimal.Decimal
	HoursAbsent     *decimal.Decimal
	AbsenceReasonID *int64
	Comments        *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Detail is a daily report joined with its employee and absence reason.
type Detail struct {
	DailyReport
	EmployeeCode *string
	FirstName    string
	LastName     string
	Department   *string
	ReasonName   *string
	ReasonCode   *string
}

// UpsertRow is the normalized write form of one bulk record.
type UpsertRow struct {
	EmployeeID      int64
	HoursWorked     decimal.Decimal
	HoursAbsent     decimal.Decimal
	AbsenceReasonID *int64
	Comments        *string
}

// UpsertResult counts rows inserted and rows overwritten by an upsert.
type UpsertResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// Message is the user-facing summary of a bulk save.
func (r UpsertResult) Message() string {
	return fmt.Sprintf("Reporte guardado exitosamente. %d registros nuevos, %d actualizados.", r.Created, r.Updated)
}
