package report

import "errors"

var (
	ErrReportNotFound = errors.New("report not found")
	// ErrNotGenerated is returned when a date has no active report.
	ErrNotGenerated = errors.New("report for date is not generated")
)
