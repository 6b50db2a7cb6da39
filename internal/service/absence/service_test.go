package absence

import (
	"context"
	"testing"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/absence"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReasonRepo struct {
	absence.ReasonRepository
	reasons map[int64]absence.Reason
}

func (f *fakeReasonRepo) Create(_ context.Context, r absence.Reason) (absence.Reason, error) {
	for _, existing := range f.reasons {
		if existing.Code == r.Code {
			return absence.Reason{}, absence.ErrReasonCodeExists
		}
	}
	r.ID = int64(len(f.reasons) + 1)
	f.reasons[r.ID] = r
	return r, nil
}

func (f *fakeReasonRepo) GetByID(_ context.Context, id int64) (absence.Reason, error) {
	r, ok := f.reasons[id]
	if !ok {
		return absence.Reason{}, absence.ErrReasonNotFound
	}
	return r, nil
}

func (f *fakeReasonRepo) List(_ context.Context, _ absence.ReasonFilter) ([]absence.Reason, int64, error) {
	out := []absence.Reason{}
	for _, r := range f.reasons {
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func TestReasonService(t *testing.T) {
	repo := &fakeReasonRepo{reasons: map[int64]absence.Reason{}}
	svc := NewReasonService(repo)
	ctx := context.Background()

	desc := "   "
	created, err := svc.Create(ctx, absence.CreateReasonRequest{Name: " Incapacidad ", Code: " INC ", Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Incapacidad", created.Name)
	assert.Equal(t, "INC", created.Code)
	assert.Nil(t, created.Description)

	_, err = svc.Create(ctx, absence.CreateReasonRequest{Name: "Otra", Code: "INC"})
	assert.ErrorIs(t, err, absence.ErrReasonCodeExists)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, absence.ErrReasonNotFound)

	list, err := svc.List(ctx, absence.ReasonFilter{Params: pagination.Params{Page: 1, PerPage: 15}})
	require.NoError(t, err)
	assert.Len(t, list.Reasons, 1)
	assert.Equal(t, int64(1), list.Pagination.Total)
}
