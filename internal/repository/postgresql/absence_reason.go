package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/absence"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	absenceReasonColumns = `id, reason_name, reason_code, description, created_at, updated_at`
	pgUniqueViolation    = "23505"
)

type reasonRepositoryImpl struct {
	db *database.DB
}

func NewReasonRepository(db *database.DB) absence.ReasonRepository {
	return &reasonRepositoryImpl{db: db}
}

func scanReason(row pgx.Row) (absence.Reason, error) {
	var r absence.Reason
	err := row.Scan(&r.ID, &r.Name, &r.Code, &r.Description, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func (r *reasonRepositoryImpl) Create(ctx context.Context, reason absence.Reason) (absence.Reason, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO absence_reasons (reason_name, reason_code, description)
		VALUES ($1, $2, $3)
		RETURNING ` + absenceReasonColumns

	created, err := scanReason(q.QueryRow(ctx, query, reason.Name, reason.Code, reason.Description))
	if err != nil {
		if isUniqueViolation(err) {
			return absence.Reason{}, absence.ErrReasonCodeExists
		}
		return absence.Reason{}, fmt.Errorf("failed to create absence reason: %w", err)
	}
	return created, nil
}

func (r *reasonRepositoryImpl) GetByID(ctx context.Context, id int64) (absence.Reason, error) {
	q := GetQuerier(ctx, r.db)
	reason, err := scanReason(q.QueryRow(ctx, `SELECT `+absenceReasonColumns+` FROM absence_reasons WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.Reason{}, absence.ErrReasonNotFound
		}
		return absence.Reason{}, fmt.Errorf("failed to get absence reason with id %d: %w", id, err)
	}
	return reason, nil
}

func (r *reasonRepositoryImpl) Update(ctx context.Context, reason absence.Reason) (absence.Reason, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE absence_reasons
		SET reason_name = $1, reason_code = $2, description = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + absenceReasonColumns

	updated, err := scanReason(q.QueryRow(ctx, query, reason.Name, reason.Code, reason.Description, reason.ID))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return absence.Reason{}, absence.ErrReasonNotFound
		case isUniqueViolation(err):
			return absence.Reason{}, absence.ErrReasonCodeExists
		}
		return absence.Reason{}, fmt.Errorf("failed to update absence reason with id %d: %w", reason.ID, err)
	}
	return updated, nil
}

func (r *reasonRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM absence_reasons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete absence reason with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrReasonNotFound
	}
	return nil
}

func (r *reasonRepositoryImpl) List(ctx context.Context, filter absence.ReasonFilter) ([]absence.Reason, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ""
	args := []interface{}{}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		where = ` WHERE reason_name ILIKE $1 OR reason_code ILIKE $1`
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM absence_reasons`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count absence reasons: %w", err)
	}

	args = append(args, filter.PerPage, filter.Offset())
	query := fmt.Sprintf(`SELECT %s FROM absence_reasons%s ORDER BY reason_name, id LIMIT $%d OFFSET $%d`,
		absenceReasonColumns, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list absence reasons: %w", err)
	}
	defer rows.Close()

	reasons := []absence.Reason{}
	for rows.Next() {
		reason, err := scanReason(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan absence reason: %w", err)
		}
		reasons = append(reasons, reason)
	}
	return reasons, total, rows.Err()
}

func (r *reasonRepositoryImpl) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return existingIDs(ctx, GetQuerier(ctx, r.db), "absence_reasons", ids)
}
