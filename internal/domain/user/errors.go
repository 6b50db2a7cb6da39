package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUsernameExists          = errors.New("username already registered")
	ErrCannotDeleteSelf        = errors.New("users cannot delete their own account")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrUnauthenticated         = errors.New("no authenticated user in context")
)
