package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	// CountEmployeesWithHours counts distinct employees with hours_worked > 0 on date.
	CountEmployeesWithHours(ctx context.Context, date time.Time) (int64, error)
}
