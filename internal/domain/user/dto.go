package user

import (
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/pagination"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID           int64          `json:"id"`
	Username     string         `json:"username"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Department   *string        `json:"department"`
	EmployeeCode *string        `json:"employee_code"`
	Roles        []RoleResponse `json:"roles"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

type RoleResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ListUserResponse struct {
	Users      []UserResponse  `json:"users"`
	Pagination pagination.Page `json:"pagination"`
}

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	Username        string   `json:"username" validate:"required,notblank,max=255"`
	FirstName       string   `json:"first_name" validate:"required,notblank,max=255"`
	LastName        string   `json:"last_name" validate:"required,notblank,max=255"`
	Department      *string  `json:"department" validate:"omitempty,max=255"`
	EmployeeCode    *string  `json:"employee_code" validate:"omitempty,max=50"`
	Password        string   `json:"password" validate:"required,min=6"`
	ConfirmPassword string   `json:"confirm_password" validate:"required,eqfield=Password"`
	Roles           []string `json:"roles" validate:"omitempty,dive,notblank"`
}

func (r *CreateUserRequest) Validate() error {
	return validator.Struct(r)
}

// UpdateUserRequest leaves the password untouched when Password is empty and
// leaves roles untouched when Roles is nil.
type UpdateUserRequest struct {
	ID              int64    `json:"-"`
	Username        string   `json:"username" validate:"required,notblank,max=255"`
	FirstName       string   `json:"first_name" validate:"required,notblank,max=255"`
	LastName        string   `json:"last_name" validate:"required,notblank,max=255"`
	Department      *string  `json:"department" validate:"omitempty,max=255"`
	EmployeeCode    *string  `json:"employee_code" validate:"omitempty,max=50"`
	Password        string   `json:"password" validate:"omitempty,min=6"`
	ConfirmPassword string   `json:"confirm_password" validate:"required_with=Password,eqfield=Password"`
	Roles           []string `json:"roles" validate:"omitempty,dive,notblank"`
}

func (r *UpdateUserRequest) Validate() error {
	return validator.Struct(r)
}

type UserFilter struct {
	Search *string
	pagination.Params
}

func ToUserResponse(u User) UserResponse {
	roles := make([]RoleResponse, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, RoleResponse{Code: string(r.Code), Name: r.Name})
	}
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Department:   u.Department,
		EmployeeCode: u.EmployeeCode,
		Roles:        roles,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    u.UpdatedAt.Format(time.RFC3339),
	}
}
