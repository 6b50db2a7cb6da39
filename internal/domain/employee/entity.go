package employee

import "time"

type Employee struct {
	ID           int64
	FirstName    string
	LastName     string
	Department   *string
	EmployeeCode *string
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
