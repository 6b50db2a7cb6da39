package report

import "time"

type State string

const (
	StateActive   State = "active"
	StateInactive State = "inactive"
)

// Report marks a calendar date as generated. Attendance for the date is
// open only while a Report exists in the active state.
type Report struct {
	ID        int64
	Date      time.Time
	State     State
	Comments  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open reports whether r lets attendance for its date be entered and viewed.
func (r *Report) Open() bool {
	return r != nil && r.State == StateActive
}
