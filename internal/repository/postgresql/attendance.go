package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/clock"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// CountEmployees implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, a.db)
	var n int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return n, nil
}

// CountEmployeesWithHours implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountEmployeesWithHours(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)
	query := `
		SELECT COUNT(DISTINCT employee_id)
		FROM daily_reports
		WHERE report_date = $1::date AND hours_worked > 0
	`
	var n int64
	if err := q.QueryRow(ctx, query, date.Format(clock.DateLayout)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count employees with hours on %s: %w", date.Format(clock.DateLayout), err)
	}
	return n, nil
}
