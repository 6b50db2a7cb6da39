package absence

import "context"

type ReasonRepository interface {
	Create(ctx context.Context, r Reason) (Reason, error)
	GetByID(ctx context.Context, id int64) (Reason, error)
	Update(ctx context.Context, r Reason) (Reason, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ReasonFilter) ([]Reason, int64, error)
	// ExistingIDs returns the subset of ids that belong to a reason.
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}
