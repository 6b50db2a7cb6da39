package report

import (
	"context"
	"time"
)

// Gate tells whether attendance for a date is open.
type Gate interface {
	IsOpen(ctx context.Context, date time.Time) (bool, error)
}

type ReportService interface {
	Gate
	Status(ctx context.Context, date string) (StatusResponse, error)
	Generate(ctx context.Context, req GenerateRequest) (resp ReportResponse, created bool, err error)
	SetState(ctx context.Context, req UpdateStateRequest) (ReportResponse, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (ReportResponse, error)
	List(ctx context.Context) ([]ReportResponse, error)
}
