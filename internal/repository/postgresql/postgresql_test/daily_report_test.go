package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/dailyreport"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/employee"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/report"
	"github.com/asistencia-sv/asistencia-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func TestDailyReportRepository_UpsertMany(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	employees := postgresql.NewEmployeeRepository(db)
	repo := postgresql.NewDailyReportRepository(db)

	ventas := "Ventas"
	var ids []int64
	for _, name := range []string{"Ana", "Luis"} {
		e, err := employees.Create(ctx, employee.Employee{FirstName: name, LastName: "Test", Department: &ventas, HireDate: testDate})
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}

	rows := []dailyreport.UpsertRow{
		{EmployeeID: ids[0], HoursWorked: decimal.RequireFromString("8"), HoursAbsent: decimal.Zero},
		{EmployeeID: ids[1], HoursWorked: decimal.RequireFromString("4.5"), HoursAbsent: decimal.RequireFromString("3.5")},
	}

	first, err := repo.UpsertMany(ctx, testDate, rows)
	require.NoError(t, err)
	assert.Equal(t, dailyreport.UpsertResult{Created: 2, Updated: 0}, first)

	second, err := repo.UpsertMany(ctx, testDate, rows)
	require.NoError(t, err)
	assert.Equal(t, dailyreport.UpsertResult{Created: 0, Updated: 2}, second)

	details, err := repo.ListByDate(ctx, testDate, &ventas)
	require.NoError(t, err)
	require.Len(t, details, 2)
	for _, d := range details {
		if d.EmployeeID == ids[1] {
			require.NotNil(t, d.HoursWorked)
			assert.True(t, decimal.RequireFromString("4.5").Equal(*d.HoursWorked))
		}
	}

	other := "Producción"
	details, err = repo.ListByDate(ctx, testDate, &other)
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestDailyReportRepository_CreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	e, err := postgresql.NewEmployeeRepository(db).Create(ctx, employee.Employee{FirstName: "Ana", LastName: "Test", HireDate: testDate})
	require.NoError(t, err)

	repo := postgresql.NewDailyReportRepository(db)
	_, err = repo.Create(ctx, dailyreport.DailyReport{Date: testDate, EmployeeID: e.ID})
	require.NoError(t, err)

	_, err = repo.Create(ctx, dailyreport.DailyReport{Date: testDate, EmployeeID: e.ID})
	assert.ErrorIs(t, err, dailyreport.ErrDailyReportExists)
}

func TestTransactor_RollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	employees := postgresql.NewEmployeeRepository(db)
	boom := errors.New("boom")

	err := postgresql.NewTransactor(db).WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := employees.Create(ctx, employee.Employee{FirstName: "Ana", LastName: "Test", HireDate: testDate}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := employees.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReportRepository_CreateIfAbsent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewReportRepository(db)

	stored, created, err := repo.CreateIfAbsent(ctx, report.Report{Date: testDate, State: report.StateActive})
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := repo.CreateIfAbsent(ctx, report.Report{Date: testDate, State: report.StateInactive})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, stored.ID, again.ID)
	assert.Equal(t, report.StateActive, again.State)

	updated, err := repo.UpdateState(ctx, stored.ID, report.StateInactive)
	require.NoError(t, err)
	assert.Equal(t, report.StateInactive, updated.State)

	_, err = repo.GetByDate(ctx, testDate.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, report.ErrReportNotFound)
}
