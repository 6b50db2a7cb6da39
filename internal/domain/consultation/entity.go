package consultation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row is a daily report flattened with employee and reason data for
// consultation and export.
type Row struct {
	Date         time.Time
	EmployeeID   int64
	EmployeeCode *string
	FirstName    string
	LastName     string
	Department   *string
	HoursWorked  *decimal.Decimal
	HoursAbsent  *decimal.Decimal
	ReasonName   *string
	Comments     *string
}

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)
