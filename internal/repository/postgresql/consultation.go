package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/consultation"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/clock"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/database"
)

type consultationRepositoryImpl struct {
	db *database.DB
}

func NewConsultationRepository(db *database.DB) consultation.ConsultationRepository {
	return &consultationRepositoryImpl{db: db}
}

func (r *consultationRepositoryImpl) Rows(ctx context.Context, from, to time.Time, department *string) ([]consultation.Row, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT dr.report_date, e.id, e.employee_code, e.first_name, e.last_name, e.department,
			dr.hours_worked::text, dr.hours_absent::text, ar.reason_name, dr.comments
		FROM daily_reports dr
		JOIN employees e ON e.id = dr.employee_id
		LEFT JOIN absence_reasons ar ON ar.id = dr.absence_reason_id
		WHERE dr.report_date BETWEEN $1::date AND $2::date
			AND ($3::text IS NULL OR e.department = $3)
		ORDER BY dr.report_date, e.last_name, e.first_name, e.id
	`

	rows, err := q.Query(ctx, query, from.Format(clock.DateLayout), to.Format(clock.DateLayout), department)
	if err != nil {
		return nil, fmt.Errorf("failed to query consultation rows: %w", err)
	}
	defer rows.Close()

	result := []consultation.Row{}
	for rows.Next() {
		var row consultation.Row
		var worked, absent *string
		if err := rows.Scan(&row.Date, &row.EmployeeID, &row.EmployeeCode, &row.FirstName, &row.LastName,
			&row.Department, &worked, &absent, &row.ReasonName, &row.Comments); err != nil {
			return nil, fmt.Errorf("failed to scan consultation row: %w", err)
		}
		if row.HoursWorked, err = decimalFromText(worked); err != nil {
			return nil, err
		}
		if row.HoursAbsent, err = decimalFromText(absent); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
