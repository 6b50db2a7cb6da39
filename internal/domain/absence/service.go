package absence

import "context"

type ReasonService interface {
	Create(ctx context.Context, req CreateReasonRequest) (ReasonResponse, error)
	Update(ctx context.Context, req UpdateReasonRequest) (ReasonResponse, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (ReasonResponse, error)
	List(ctx context.Context, filter ReasonFilter) (ListReasonResponse, error)
}
