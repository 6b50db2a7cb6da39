package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/report"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/clock"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const reportColumns = `id, report_date, state, comments, created_at, updated_at`

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

func scanReport(row pgx.Row) (report.Report, error) {
	var r report.Report
	err := row.Scan(&r.ID, &r.Date, &r.State, &r.Comments, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// CreateIfAbsent relies on the unique report_date so concurrent generators
// of the same date end up sharing one row.
func (r *reportRepositoryImpl) CreateIfAbsent(ctx context.Context, rep report.Report) (report.Report, bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO reports (report_date, state, comments)
		VALUES ($1::date, $2, $3)
		ON CONFLICT (report_date) DO NOTHING
		RETURNING ` + reportColumns

	created, err := scanReport(q.QueryRow(ctx, query, rep.Date.Format(clock.DateLayout), rep.State, rep.Comments))
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return report.Report{}, false, fmt.Errorf("failed to create report for %s: %w", rep.Date.Format(clock.DateLayout), err)
	}

	existing, err := r.GetByDate(ctx, rep.Date)
	if err != nil {
		return report.Report{}, false, err
	}
	return existing, false, nil
}

func (r *reportRepositoryImpl) GetByID(ctx context.Context, id int64) (report.Report, error) {
	q := GetQuerier(ctx, r.db)
	rep, err := scanReport(q.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.Report{}, report.ErrReportNotFound
		}
		return report.Report{}, fmt.Errorf("failed to get report with id %d: %w", id, err)
	}
	return rep, nil
}

func (r *reportRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (report.Report, error) {
	q := GetQuerier(ctx, r.db)
	rep, err := scanReport(q.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE report_date = $1::date`, date.Format(clock.DateLayout)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.Report{}, report.ErrReportNotFound
		}
		return report.Report{}, fmt.Errorf("failed to get report for %s: %w", date.Format(clock.DateLayout), err)
	}
	return rep, nil
}

func (r *reportRepositoryImpl) List(ctx context.Context) ([]report.Report, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := []report.Report{}
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

func (r *reportRepositoryImpl) UpdateState(ctx context.Context, id int64, state report.State) (report.Report, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE reports
		SET state = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + reportColumns

	rep, err := scanReport(q.QueryRow(ctx, query, state, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.Report{}, report.ErrReportNotFound
		}
		return report.Report{}, fmt.Errorf("failed to update report with id %d: %w", id, err)
	}
	return rep, nil
}

func (r *reportRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return report.ErrReportNotFound
	}
	return nil
}
