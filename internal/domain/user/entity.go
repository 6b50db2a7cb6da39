package user

import "time"

type Role string

const (
	RoleAdmin             Role = "ADMIN"
	RoleSupervisor        Role = "supervisor"
	RoleHRPayroll         Role = "RRHH.PLAN"
	RoleAccountingManager Role = "gerenciacontable01"
)

type User struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	Department   *string
	EmployeeCode *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	Roles []RoleInfo
}

// RoleInfo is a row of the role catalogue.
type RoleInfo struct {
	ID   int64
	Code Role
	Name string
}

// RoleCodes returns the codes of the roles attached to the user.
func (u *User) RoleCodes() []Role {
	codes := make([]Role, 0, len(u.Roles))
	for _, r := range u.Roles {
		codes = append(codes, r.Code)
	}
	return codes
}
