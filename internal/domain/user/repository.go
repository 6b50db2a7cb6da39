package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	// Update overwrites profile fields; an empty PasswordHash keeps the stored one.
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter UserFilter) ([]User, int64, error)
	SyncRoles(ctx context.Context, userID int64, roleIDs []int64) error
}

type RoleRepository interface {
	List(ctx context.Context) ([]RoleInfo, error)
	GetByCodes(ctx context.Context, codes []string) ([]RoleInfo, error)
}
