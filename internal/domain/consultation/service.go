package consultation

import (
	"context"
	"io"
)

type ConsultationService interface {
	Query(ctx context.Context, filter Filter) ([]RowResponse, error)
	// Export writes the filtered rows to w and returns the suggested file name.
	Export(ctx context.Context, filter Filter, format Format, w io.Writer) (filename string, err error)
}
