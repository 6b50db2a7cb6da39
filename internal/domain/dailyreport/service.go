package dailyreport

import "context"

type DailyReportService interface {
	BulkSave(ctx context.Context, req BulkSaveRequest) (UpsertResult, error)
	ListByDate(ctx context.Context, req ListRequest) ([]DetailResponse, error)
	Create(ctx context.Context, req CreateRequest) (DailyReportResponse, error)
	Update(ctx context.Context, req UpdateRequest) (DailyReportResponse, error)
	Delete(ctx context.Context, id int64) error
}
