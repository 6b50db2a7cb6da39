package dailyreport

import "errors"

var (
	ErrDailyReportNotFound = errors.New("daily report not found")
	ErrDailyReportExists   = errors.New("daily report already exists for this employee and date")
	ErrDateRequired        = errors.New("date is required")
)
