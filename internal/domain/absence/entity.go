package absence

import "time"

// Reason is a catalogued cause of absence referenced by daily reports.
type Reason struct {
	ID          int64
	Name        string
	Code        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
