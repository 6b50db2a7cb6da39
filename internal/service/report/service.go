package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/report"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/clock"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
)

const invalidDateMessage = "Formato de fecha inválido. Use el formato YYYY-MM-DD (ejemplo: 2024-01-15)"

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	clock      clock.Clock
}

func NewReportService(reportRepo report.ReportRepository, clk clock.Clock) report.ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		clock:      clk,
	}
}

// IsOpen implements report.Gate.
func (s *ReportServiceImpl) IsOpen(ctx context.Context, date time.Time) (bool, error) {
	rep, err := s.reportRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, report.ErrReportNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read report gate: %w", err)
	}
	return rep.Open(), nil
}

// Status reports the gate of date, today when date is empty.
func (s *ReportServiceImpl) Status(ctx context.Context, date string) (report.StatusResponse, error) {
	day := clock.Today(s.clock)
	if date != "" {
		parsed, err := clock.ParseDate(date)
		if err != nil {
			return report.StatusResponse{}, validator.ValidationErrors{{Field: "date", Message: invalidDateMessage}}
		}
		day = parsed
	}

	resp := report.StatusResponse{Date: day.Format(clock.DateLayout)}
	rep, err := s.reportRepo.GetByDate(ctx, day)
	switch {
	case errors.Is(err, report.ErrReportNotFound):
		return resp, nil
	case err != nil:
		return report.StatusResponse{}, err
	}
	resp.Exists = true
	resp.Open = rep.Open()
	return resp, nil
}

func (s *ReportServiceImpl) Generate(ctx context.Context, req report.GenerateRequest) (report.ReportResponse, bool, error) {
	date, err := clock.ParseDate(req.Date)
	if err != nil {
		return report.ReportResponse{}, false, validator.ValidationErrors{{Field: "date", Message: invalidDateMessage}}
	}

	state := report.StateActive
	if req.State != nil {
		state = *req.State
	}

	stored, created, err := s.reportRepo.CreateIfAbsent(ctx, report.Report{
		Date:     date,
		State:    state,
		Comments: validator.TrimToNil(req.Comments),
	})
	if err != nil {
		return report.ReportResponse{}, false, err
	}
	return report.ToReportResponse(stored), created, nil
}

func (s *ReportServiceImpl) SetState(ctx context.Context, req report.UpdateStateRequest) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}
	rep, err := s.reportRepo.UpdateState(ctx, req.ID, req.State)
	if err != nil {
		return report.ReportResponse{}, err
	}
	return report.ToReportResponse(rep), nil
}

// Delete removes only the gate row; daily reports of the date stay.
func (s *ReportServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.reportRepo.Delete(ctx, id)
}

func (s *ReportServiceImpl) GetByID(ctx context.Context, id int64) (report.ReportResponse, error) {
	rep, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return report.ReportResponse{}, err
	}
	return report.ToReportResponse(rep), nil
}

func (s *ReportServiceImpl) List(ctx context.Context) ([]report.ReportResponse, error) {
	reports, err := s.reportRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]report.ReportResponse, 0, len(reports))
	for _, r := range reports {
		resp = append(resp, report.ToReportResponse(r))
	}
	return resp, nil
}
