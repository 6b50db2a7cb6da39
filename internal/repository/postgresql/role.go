package postgresql

import (
	"context"
	"fmt"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/user"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) user.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

func (r *roleRepositoryImpl) List(ctx context.Context) ([]user.RoleInfo, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT id, code, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return collectRoles(rows)
}

func (r *roleRepositoryImpl) GetByCodes(ctx context.Context, codes []string) ([]user.RoleInfo, error) {
	if len(codes) == 0 {
		return []user.RoleInfo{}, nil
	}
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT id, code, name FROM roles WHERE code = ANY($1) ORDER BY id`, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles by code: %w", err)
	}
	return collectRoles(rows)
}

func collectRoles(rows pgx.Rows) ([]user.RoleInfo, error) {
	roles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (user.RoleInfo, error) {
		var ri user.RoleInfo
		err := row.Scan(&ri.ID, &ri.Code, &ri.Name)
		return ri, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan roles: %w", err)
	}
	return roles, nil
}
