package report

import (
	"context"
	"time"
)

type ReportRepository interface {
	// CreateIfAbsent inserts r unless its date already has a report, in which
	// case the stored report is returned with created=false.
	CreateIfAbsent(ctx context.Context, r Report) (stored Report, created bool, err error)
	GetByID(ctx context.Context, id int64) (Report, error)
	GetByDate(ctx context.Context, date time.Time) (Report, error)
	List(ctx context.Context) ([]Report, error)
	UpdateState(ctx context.Context, id int64, state State) (Report, error)
	Delete(ctx context.Context, id int64) error
}
