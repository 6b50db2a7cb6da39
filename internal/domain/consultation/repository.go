package consultation

import (
	"context"
	"time"
)

type ConsultationRepository interface {
	// Rows returns reports between from and to inclusive, ordered by date then employee.
	Rows(ctx context.Context, from, to time.Time, department *string) ([]Row, error)
}
