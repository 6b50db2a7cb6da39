package consultation

import (
	"context"
	"fmt"
	"io"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/consultation"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/clock"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/export"
)

const (
	filePrefix = "reportes_asistencia_"
	sheetName  = "Reportes"
)

type ConsultationServiceImpl struct {
	repo  consultation.ConsultationRepository
	clock clock.Clock
}

func NewConsultationService(repo consultation.ConsultationRepository, clk clock.Clock) consultation.ConsultationService {
	return &ConsultationServiceImpl{repo: repo, clock: clk}
}

func (s *ConsultationServiceImpl) Query(ctx context.Context, filter consultation.Filter) ([]consultation.RowResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	from, err := clock.ParseDate(filter.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("parse date_from: %w", err)
	}
	to, err := clock.ParseDate(filter.DateTo)
	if err != nil {
		return nil, fmt.Errorf("parse date_to: %w", err)
	}

	rows, err := s.repo.Rows(ctx, from, to, filter.Department)
	if err != nil {
		return nil, err
	}

	resp := make([]consultation.RowResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, consultation.ToRowResponse(r))
	}
	return resp, nil
}

// Export implements consultation.ConsultationService. The format is checked
// before any row is read.
func (s *ConsultationServiceImpl) Export(ctx context.Context, filter consultation.Filter, format consultation.Format, w io.Writer) (string, error) {
	if format != consultation.FormatCSV && format != consultation.FormatXLSX {
		return "", consultation.ErrUnsupportedFormat
	}

	rows, err := s.Query(ctx, filter)
	if err != nil {
		return "", err
	}

	filename := filePrefix + s.clock.Now().Format("20060102150405") + "." + string(format)

	switch format {
	case consultation.FormatXLSX:
		cells := make([][]interface{}, 0, len(rows))
		for _, r := range rows {
			cells = append(cells, r.Cells())
		}
		err = export.WriteXLSX(w, sheetName, consultation.Headers, cells)
	default:
		records := make([][]string, 0, len(rows))
		for _, r := range rows {
			records = append(records, r.Record())
		}
		err = export.WriteCSV(w, consultation.Headers, records)
	}
	if err != nil {
		return "", fmt.Errorf("export consultation: %w", err)
	}
	return filename, nil
}
