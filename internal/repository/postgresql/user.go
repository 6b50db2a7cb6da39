package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/user"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// userSelect loads users with their roles folded into parallel arrays.
const userSelect = `
	SELECT u.id, u.username, u.first_name, u.last_name, u.department, u.employee_code,
		u.password_hash, u.created_at, u.updated_at,
		COALESCE(array_agg(r.id ORDER BY r.id) FILTER (WHERE r.id IS NOT NULL), '{}'::bigint[]),
		COALESCE(array_agg(r.code ORDER BY r.id) FILTER (WHERE r.id IS NOT NULL), '{}'::varchar[]),
		COALESCE(array_agg(r.name ORDER BY r.id) FILTER (WHERE r.id IS NOT NULL), '{}'::varchar[])
	FROM users u
	LEFT JOIN user_roles ur ON ur.user_id = u.id
	LEFT JOIN roles r ON r.id = ur.role_id
`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var roleIDs []int64
	var roleCodes, roleNames []string
	err := row.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Department, &u.EmployeeCode,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt, &roleIDs, &roleCodes, &roleNames)
	if err != nil {
		return user.User{}, err
	}
	u.Roles = make([]user.RoleInfo, len(roleIDs))
	for i := range roleIDs {
		u.Roles[i] = user.RoleInfo{ID: roleIDs[i], Code: user.Role(roleCodes[i]), Name: roleNames[i]}
	}
	return u, nil
}

func (r *userRepositoryImpl) getOne(ctx context.Context, where string, arg interface{}) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	u, err := scanUser(q.QueryRow(ctx, userSelect+where+` GROUP BY u.id`, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	return r.getOne(ctx, ` WHERE u.id = $1`, id)
}

func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return r.getOne(ctx, ` WHERE u.username = $1`, username)
}

func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO users (username, first_name, last_name, department, employee_code, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query, newUser.Username, newUser.FirstName, newUser.LastName,
		newUser.Department, newUser.EmployeeCode, newUser.PasswordHash).
		Scan(&newUser.ID, &newUser.CreatedAt, &newUser.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return newUser, nil
}

func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE users
		SET username = $1, first_name = $2, last_name = $3, department = $4, employee_code = $5,
			password_hash = COALESCE(NULLIF($6, ''), password_hash), updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`
	var id int64
	err := q.QueryRow(ctx, query, u.Username, u.FirstName, u.LastName, u.Department, u.EmployeeCode, u.PasswordHash, u.ID).Scan(&id)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return user.User{}, user.ErrUserNotFound
		case isUniqueViolation(err):
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("failed to update user with id %d: %w", u.ID, err)
	}
	return r.GetByID(ctx, id)
}

func (r *userRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *userRepositoryImpl) List(ctx context.Context, filter user.UserFilter) ([]user.User, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ""
	args := []interface{}{}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		where = ` WHERE u.username ILIKE $1 OR u.first_name ILIKE $1 OR u.last_name ILIKE $1`
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users u`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	args = append(args, filter.PerPage, filter.Offset())
	query := fmt.Sprintf(`%s%s GROUP BY u.id ORDER BY u.username LIMIT $%d OFFSET $%d`,
		userSelect, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// SyncRoles replaces the user's role set. Callers wrap it in a transaction
// together with the user write.
func (r *userRepositoryImpl) SyncRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	q := GetQuerier(ctx, r.db)
	if _, err := q.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear roles of user %d: %w", userID, err)
	}
	if len(roleIDs) == 0 {
		return nil
	}
	_, err := q.Exec(ctx, `
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`, userID, roleIDs)
	if err != nil {
		return fmt.Errorf("failed to assign roles to user %d: %w", userID, err)
	}
	return nil
}
