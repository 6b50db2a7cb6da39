package dailyreport

import (
	"context"
	"time"
)

type DailyReportRepository interface {
	// UpsertMany writes rows keyed on (date, employee_id). Rows must not repeat an employee.
	UpsertMany(ctx context.Context, date time.Time, rows []UpsertRow) (UpsertResult, error)
	ListByDate(ctx context.Context, date time.Time, department *string) ([]Detail, error)
	Create(ctx context.Context, r DailyReport) (DailyReport, error)
	GetByID(ctx context.Context, id int64) (DailyReport, error)
	Update(ctx context.Context, r DailyReport) (DailyReport, error)
	Delete(ctx context.Context, id int64) error
}
