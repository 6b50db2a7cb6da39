package employee

import (
	"context"
	"testing"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/employee"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	nextID    int64
	employees map[int64]employee.Employee
	lastQuery employee.EmployeeFilter
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{nextID: 1, employees: map[int64]employee.Employee{}}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = f.nextID
	f.nextID++
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) (employee.Employee, error) {
	if _, ok := f.employees[e.ID]; !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	f.lastQuery = filter
	out := []employee.Employee{}
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func TestEmployeeService_Create(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	dept := "  Producción "
	code := "   "
	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName:    " Carlos ",
		LastName:     "Ramírez",
		Department:   &dept,
		EmployeeCode: &code,
		HireDate:     "2023-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Carlos", resp.FirstName)
	require.NotNil(t, resp.Department)
	assert.Equal(t, "Producción", *resp.Department)
	assert.Nil(t, resp.EmployeeCode)
	assert.Equal(t, "2023-02-01", resp.HireDate)
}

func TestEmployeeService_Update(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{FirstName: "Ana", LastName: "Díaz", HireDate: "2022-01-10"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:                    created.ID,
		CreateEmployeeRequest: employee.CreateEmployeeRequest{FirstName: "Ana María", LastName: "Díaz", HireDate: "2022-01-11"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.FirstName)
	assert.Equal(t, "2022-01-11", updated.HireDate)

	_, err = svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:                    77,
		CreateEmployeeRequest: employee.CreateEmployeeRequest{FirstName: "X", LastName: "Y", HireDate: "2022-01-11"},
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_List(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{FirstName: "Ana", LastName: "Díaz", HireDate: "2022-01-10"})
	require.NoError(t, err)

	blank := "  "
	resp, err := svc.List(ctx, employee.EmployeeFilter{Search: &blank, Params: pagination.Params{Page: 1, PerPage: 10}})
	require.NoError(t, err)
	assert.Nil(t, repo.lastQuery.Search)
	assert.Len(t, resp.Employees, 1)
	assert.Equal(t, 1, resp.Pagination.From)
	assert.Equal(t, 1, resp.Pagination.To)
}
