package dailyreport

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/absence"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/dailyreport"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/employee"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/report"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/clock"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/database"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
)

type Options struct {
	// EnforceGateOnWrite rejects writes for dates whose report is not open.
	EnforceGateOnWrite bool
}

type DailyReportServiceImpl struct {
	tx           database.Transactor
	clock        clock.Clock
	gate         report.Gate
	reportRepo   dailyreport.DailyReportRepository
	employeeRepo employee.EmployeeRepository
	reasonRepo   absence.ReasonRepository
	opts         Options
}

func NewDailyReportService(
	tx database.Transactor,
	clk clock.Clock,
	gate report.Gate,
	reportRepo dailyreport.DailyReportRepository,
	employeeRepo employee.EmployeeRepository,
	reasonRepo absence.ReasonRepository,
	opts Options,
) dailyreport.DailyReportService {
	return &DailyReportServiceImpl{
		tx:           tx,
		clock:        clk,
		gate:         gate,
		reportRepo:   reportRepo,
		employeeRepo: employeeRepo,
		reasonRepo:   reasonRepo,
		opts:         opts,
	}
}

// BulkSave implements dailyreport.DailyReportService.
func (s *DailyReportServiceImpl) BulkSave(ctx context.Context, req dailyreport.BulkSaveRequest) (dailyreport.UpsertResult, error) {
	var result dailyreport.UpsertResult

	if err := req.Validate(clock.Today(s.clock)); err != nil {
		return result, err
	}
	date, err := req.ParseDate()
	if err != nil {
		return result, fmt.Errorf("parse date: %w", err)
	}

	if err := s.checkReferences(ctx, req.Records, func(i int, field string) string {
		return fmt.Sprintf("records.%d.%s", i, field)
	}); err != nil {
		return result, err
	}

	if err := s.checkGate(ctx, date); err != nil {
		return result, err
	}

	rows := req.Rows()
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		result, err = s.reportRepo.UpsertMany(txCtx, date, rows)
		return err
	})
	if err != nil {
		return dailyreport.UpsertResult{}, fmt.Errorf("bulk save daily reports: %w", err)
	}

	slog.Info("Daily reports saved",
		"date", req.Date,
		"records", len(req.Records),
		"written", len(rows),
		"created", result.Created,
		"updated", result.Updated)
	return result, nil
}

// ListByDate implements dailyreport.DailyReportService.
func (s *DailyReportServiceImpl) ListByDate(ctx context.Context, req dailyreport.ListRequest) ([]dailyreport.DetailResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	date, err := clock.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	open, err := s.gate.IsOpen(ctx, date)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, report.ErrNotGenerated
	}

	details, err := s.reportRepo.ListByDate(ctx, date, req.Department)
	if err != nil {
		return nil, err
	}
	dailyreport.SortByEmployeeCode(details)

	resp := make([]dailyreport.DetailResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, dailyreport.ToDetailResponse(d))
	}
	return resp, nil
}

// Create implements dailyreport.DailyReportService.
func (s *DailyReportServiceImpl) Create(ctx context.Context, req dailyreport.CreateRequest) (dailyreport.DailyReportResponse, error) {
	if err := req.Validate(clock.Today(s.clock)); err != nil {
		return dailyreport.DailyReportResponse{}, err
	}
	date, err := clock.ParseDate(req.Date)
	if err != nil {
		return dailyreport.DailyReportResponse{}, fmt.Errorf("parse date: %w", err)
	}

	if err := s.checkReferences(ctx, []dailyreport.BulkRecord{req.BulkRecord}, func(_ int, field string) string {
		return field
	}); err != nil {
		return dailyreport.DailyReportResponse{}, err
	}
	if err := s.checkGate(ctx, date); err != nil {
		return dailyreport.DailyReportResponse{}, err
	}

	row := req.ToUpsertRow()
	created, err := s.reportRepo.Create(ctx, dailyreport.DailyReport{
		Date:            date,
		EmployeeID:      row.EmployeeID,
		HoursWorked:     &row.HoursWorked,
		HoursAbsent:     &row.HoursAbsent,
		AbsenceReasonID: row.AbsenceReasonID,
		Comments:        row.Comments,
	})
	if err != nil {
		return dailyreport.DailyReportResponse{}, err
	}
	return dailyreport.ToDailyReportResponse(created), nil
}

// Update implements dailyreport.DailyReportService.
func (s *DailyReportServiceImpl) Update(ctx context.Context, req dailyreport.UpdateRequest) (dailyreport.DailyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return dailyreport.DailyReportResponse{}, err
	}

	existing, err := s.reportRepo.GetByID(ctx, req.ID)
	if err != nil {
		return dailyreport.DailyReportResponse{}, err
	}

	record := dailyreport.BulkRecord{
		EmployeeID:      existing.EmployeeID,
		HoursWorked:     req.HoursWorked,
		HoursAbsent:     req.HoursAbsent,
		AbsenceReasonID: req.AbsenceReasonID,
		Comments:        req.Comments,
	}
	if err := s.checkReferences(ctx, []dailyreport.BulkRecord{record}, func(_ int, field string) string {
		return field
	}); err != nil {
		return dailyreport.DailyReportResponse{}, err
	}
	if err := s.checkGate(ctx, existing.Date); err != nil {
		return dailyreport.DailyReportResponse{}, err
	}

	row := record.ToUpsertRow()
	existing.HoursWorked = &row.HoursWorked
	existing.HoursAbsent = &row.HoursAbsent
	existing.AbsenceReasonID = row.AbsenceReasonID
	existing.Comments = row.Comments

	updated, err := s.reportRepo.Update(ctx, existing)
	if err != nil {
		return dailyreport.DailyReportResponse{}, err
	}
	return dailyreport.ToDailyReportResponse(updated), nil
}

// Delete implements dailyreport.DailyReportService.
func (s *DailyReportServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.reportRepo.Delete(ctx, id)
}

func (s *DailyReportServiceImpl) checkGate(ctx context.Context, date time.Time) error {
	if !s.opts.EnforceGateOnWrite {
		return nil
	}
	open, err := s.gate.IsOpen(ctx, date)
	if err != nil {
		return err
	}
	if !open {
		return report.ErrNotGenerated
	}
	return nil
}

// checkReferences verifies in two batch queries that every employee and every
// non-zero absence reason exists. path names the field of record i.
func (s *DailyReportServiceImpl) checkReferences(ctx context.Context, records []dailyreport.BulkRecord, path func(i int, field string) string) error {
	var employeeIDs, reasonIDs []int64
	for _, rec := range records {
		employeeIDs = append(employeeIDs, rec.EmployeeID)
		if rec.AbsenceReasonID != nil && *rec.AbsenceReasonID > 0 {
			reasonIDs = append(reasonIDs, *rec.AbsenceReasonID)
		}
	}

	knownEmployees, err := s.employeeRepo.ExistingIDs(ctx, uniqueIDs(employeeIDs))
	if err != nil {
		return err
	}
	knownReasons, err := s.reasonRepo.ExistingIDs(ctx, uniqueIDs(reasonIDs))
	if err != nil {
		return err
	}

	var errs validator.ValidationErrors
	for i, rec := range records {
		if !slices.Contains(knownEmployees, rec.EmployeeID) {
			errs.Add(path(i, "employee_id"), "El empleado seleccionado no existe.")
		}
		if rec.AbsenceReasonID != nil && *rec.AbsenceReasonID > 0 && !slices.Contains(knownReasons, *rec.AbsenceReasonID) {
			errs.Add(path(i, "absence_reason_id"), "La razón de ausencia seleccionada no existe.")
		}
	}
	return errs.OrNil()
}

func uniqueIDs(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}

