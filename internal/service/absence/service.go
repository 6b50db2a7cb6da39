package absence

import (
	"context"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/absence"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/pagination"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
)

type ReasonServiceImpl struct {
	reasonRepo absence.ReasonRepository
}

func NewReasonService(reasonRepo absence.ReasonRepository) absence.ReasonService {
	return &ReasonServiceImpl{reasonRepo: reasonRepo}
}

func (s *ReasonServiceImpl) Create(ctx context.Context, req absence.CreateReasonRequest) (absence.ReasonResponse, error) {
	req.Normalize()
	created, err := s.reasonRepo.Create(ctx, absence.Reason{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		return absence.ReasonResponse{}, err
	}
	return absence.ToReasonResponse(created), nil
}

func (s *ReasonServiceImpl) Update(ctx context.Context, req absence.UpdateReasonRequest) (absence.ReasonResponse, error) {
	req.Normalize()
	updated, err := s.reasonRepo.Update(ctx, absence.Reason{
		ID:          req.ID,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		return absence.ReasonResponse{}, err
	}
	return absence.ToReasonResponse(updated), nil
}

func (s *ReasonServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.reasonRepo.Delete(ctx, id)
}

func (s *ReasonServiceImpl) GetByID(ctx context.Context, id int64) (absence.ReasonResponse, error) {
	r, err := s.reasonRepo.GetByID(ctx, id)
	if err != nil {
		return absence.ReasonResponse{}, err
	}
	return absence.ToReasonResponse(r), nil
}

func (s *ReasonServiceImpl) List(ctx context.Context, filter absence.ReasonFilter) (absence.ListReasonResponse, error) {
	filter.Search = validator.TrimToNil(filter.Search)
	reasons, total, err := s.reasonRepo.List(ctx, filter)
	if err != nil {
		return absence.ListReasonResponse{}, err
	}

	resp := absence.ListReasonResponse{
		Reasons:    make([]absence.ReasonResponse, 0, len(reasons)),
		Pagination: pagination.NewPage(filter.Params, total, len(reasons)),
	}
	for _, r := range reasons {
		resp.Reasons = append(resp.Reasons, absence.ToReasonResponse(r))
	}
	return resp, nil
}
