package user

import "context"

type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (UserResponse, error)
	List(ctx context.Context, filter UserFilter) (ListUserResponse, error)
	ListRoles(ctx context.Context) ([]RoleResponse, error)
	// EnsureUser creates the account with the given roles when the username is free.
	EnsureUser(ctx context.Context, username, password string, roles ...Role) (created bool, err error)
}
