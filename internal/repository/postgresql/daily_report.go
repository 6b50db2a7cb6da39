package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/dailyreport"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/clock"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const dailyReportColumns = `id, report_date, employee_id, hours_worked::text, hours_absent::text, absence_reason_id, comments, created_at, updated_at`

type dailyReportRepositoryImpl struct {
	db *database.DB
}

func NewDailyReportRepository(db *database.DB) dailyreport.DailyReportRepository {
	return &dailyReportRepositoryImpl{db: db}
}

type dailyReportScan struct {
	report      dailyreport.DailyReport
	hoursWorked *string
	hoursAbsent *string
}

func (s *dailyReportScan) dest() []interface{} {
	r := &s.report
	return []interface{}{&r.ID, &r.Date, &r.EmployeeID, &s.hoursWorked, &s.hoursAbsent, &r.AbsenceReasonID, &r.Comments, &r.CreatedAt, &r.UpdatedAt}
}

func (s *dailyReportScan) finish() (dailyreport.DailyReport, error) {
	var err error
	if s.report.HoursWorked, err = decimalFromText(s.hoursWorked); err != nil {
		return dailyreport.DailyReport{}, err
	}
	if s.report.HoursAbsent, err = decimalFromText(s.hoursAbsent); err != nil {
		return dailyreport.DailyReport{}, err
	}
	return s.report, nil
}

func scanDailyReport(row pgx.Row) (dailyreport.DailyReport, error) {
	var s dailyReportScan
	if err := row.Scan(s.dest()...); err != nil {
		return dailyreport.DailyReport{}, err
	}
	return s.finish()
}

// UpsertMany writes all rows in one statement. xmax is zero only on freshly
// inserted tuples, which splits the result into created and updated.
func (r *dailyReportRepositoryImpl) UpsertMany(ctx context.Context, date time.Time, rows []dailyreport.UpsertRow) (dailyreport.UpsertResult, error) {
	var result dailyreport.UpsertResult
	if len(rows) == 0 {
		return result, nil
	}

	employeeIDs := make([]int64, len(rows))
	hoursWorked := make([]string, len(rows))
	hoursAbsent := make([]string, len(rows))
	reasonIDs := make([]*int64, len(rows))
	comments := make([]*string, len(rows))
	for i, row := range rows {
		employeeIDs[i] = row.EmployeeID
		hoursWorked[i] = row.HoursWorked.String()
		hoursAbsent[i] = row.HoursAbsent.String()
		reasonIDs[i] = row.AbsenceReasonID
		comments[i] = row.Comments
	}

	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO daily_reports (report_date, employee_id, hours_worked, hours_absent, absence_reason_id, comments)
		SELECT $1::date, u.employee_id, u.hours_worked::numeric, u.hours_absent::numeric, u.absence_reason_id, u.comments
		FROM unnest($2::bigint[], $3::text[], $4::text[], $5::bigint[], $6::text[])
			AS u(employee_id, hours_worked, hours_absent, absence_reason_id, comments)
		ON CONFLICT (report_date, employee_id) DO UPDATE
		SET hours_worked = EXCLUDED.hours_worked,
			hours_absent = EXCLUDED.hours_absent,
			absence_reason_id = EXCLUDED.absence_reason_id,
			comments = EXCLUDED.comments,
			updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`

	res, err := q.Query(ctx, query, date.Format(clock.DateLayout), employeeIDs, hoursWorked, hoursAbsent, reasonIDs, comments)
	if err != nil {
		return result, fmt.Errorf("failed to upsert daily reports for %s: %w", date.Format(clock.DateLayout), err)
	}
	inserted, err := pgx.CollectRows(res, pgx.RowTo[bool])
	if err != nil {
		return result, fmt.Errorf("failed to upsert daily reports for %s: %w", date.Format(clock.DateLayout), err)
	}
	for _, ins := range inserted {
		if ins {
			result.Created++
		} else {
			result.Updated++
		}
	}
	return result, nil
}

func (r *dailyReportRepositoryImpl) ListByDate(ctx context.Context, date time.Time, department *string) ([]dailyreport.Detail, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT dr.id, dr.report_date, dr.employee_id, dr.hours_worked::text, dr.hours_absent::text,
			dr.absence_reason_id, dr.comments, dr.created_at, dr.updated_at,
			e.employee_code, e.first_name, e.last_name, e.department,
			ar.reason_name, ar.reason_code
		FROM daily_reports dr
		JOIN employees e ON e.id = dr.employee_id
		LEFT JOIN absence_reasons ar ON ar.id = dr.absence_reason_id
		WHERE dr.report_date = $1::date
			AND ($2::text IS NULL OR e.department = $2)
		ORDER BY dr.id
	`

	rows, err := q.Query(ctx, query, date.Format(clock.DateLayout), department)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily reports: %w", err)
	}
	defer rows.Close()

	details := []dailyreport.Detail{}
	for rows.Next() {
		var s dailyReportScan
		var d dailyreport.Detail
		dest := append(s.dest(), &d.EmployeeCode, &d.FirstName, &d.LastName, &d.Department, &d.ReasonName, &d.ReasonCode)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan daily report: %w", err)
		}
		if d.DailyReport, err = s.finish(); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *dailyReportRepositoryImpl) Create(ctx context.Context, report dailyreport.DailyReport) (dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO daily_reports (report_date, employee_id, hours_worked, hours_absent, absence_reason_id, comments)
		VALUES ($1::date, $2, $3::numeric, $4::numeric, $5, $6)
		RETURNING ` + dailyReportColumns

	created, err := scanDailyReport(q.QueryRow(ctx, query,
		report.Date.Format(clock.DateLayout), report.EmployeeID,
		decimalToText(report.HoursWorked), decimalToText(report.HoursAbsent),
		report.AbsenceReasonID, report.Comments))
	if err != nil {
		if isUniqueViolation(err) {
			return dailyreport.DailyReport{}, dailyreport.ErrDailyReportExists
		}
		return dailyreport.DailyReport{}, fmt.Errorf("failed to create daily report: %w", err)
	}
	return created, nil
}

func (r *dailyReportRepositoryImpl) GetByID(ctx context.Context, id int64) (dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, r.db)
	report, err := scanDailyReport(q.QueryRow(ctx, `SELECT `+dailyReportColumns+` FROM daily_reports WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dailyreport.DailyReport{}, dailyreport.ErrDailyReportNotFound
		}
		return dailyreport.DailyReport{}, fmt.Errorf("failed to get daily report with id %d: %w", id, err)
	}
	return report, nil
}

func (r *dailyReportRepositoryImpl) Update(ctx context.Context, report dailyreport.DailyReport) (dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE daily_reports
		SET hours_worked = $1::numeric, hours_absent = $2::numeric, absence_reason_id = $3, comments = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + dailyReportColumns

	updated, err := scanDailyReport(q.QueryRow(ctx, query,
		decimalToText(report.HoursWorked), decimalToText(report.HoursAbsent),
		report.AbsenceReasonID, report.Comments, report.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dailyreport.DailyReport{}, dailyreport.ErrDailyReportNotFound
		}
		return dailyreport.DailyReport{}, fmt.Errorf("failed to update daily report with id %d: %w", report.ID, err)
	}
	return updated, nil
}

func (r *dailyReportRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM daily_reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete daily report with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return dailyreport.ErrDailyReportNotFound
	}
	return nil
}
