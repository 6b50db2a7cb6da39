package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	clock clock.Clock
}

func NewAttendanceService(repo attendance.AttendanceRepository, clk clock.Clock) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		clock:                clk,
	}
}

// Percentage returns withHours/total as a percentage rounded half away from
// zero to two decimals, or 0 when total is 0.
func Percentage(withHours, total int64) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(withHours).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(total), 2).
		InexactFloat64()
}

// DailyStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DailyStats(ctx context.Context, date time.Time) attendance.DailyStats {
	stats := attendance.DailyStats{Date: date.Format(clock.DateLayout)}

	total, err := s.CountEmployees(ctx)
	if err != nil {
		slog.Error("Attendance stats: count employees failed", "date", stats.Date, "error", err)
		return stats
	}
	withHours, err := s.CountEmployeesWithHours(ctx, date)
	if err != nil {
		slog.Error("Attendance stats: count employees with hours failed", "date", stats.Date, "error", err)
		return stats
	}

	stats.TotalEmployees = total
	stats.EmployeesWithHours = withHours
	stats.Percentage = Percentage(withHours, total)
	return stats
}

// WeeklyStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) WeeklyStats(ctx context.Context, ref time.Time) []attendance.DayStats {
	monday := clock.WeekStart(ref)
	week := make([]attendance.DayStats, 7)

	var g errgroup.Group
	for i := range week {
		g.Go(func() error {
			day := clock.AddDays(monday, i)
			week[i] = attendance.DayStats{
				DailyStats:   s.DailyStats(ctx, day),
				WeekdayName:  attendance.WeekdayNames[day.Weekday()],
				WeekdayShort: attendance.WeekdayShorts[day.Weekday()],
			}
			return nil
		})
	}
	// DailyStats masks its own failures.
	_ = g.Wait()

	return week
}

// Stats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Stats(ctx context.Context, date string) (attendance.StatsResponse, error) {
	day := clock.Today(s.clock)
	if date != "" {
		parsed, err := clock.ParseDate(date)
		if err != nil {
			return attendance.StatsResponse{}, attendance.ErrInvalidDate
		}
		day = parsed
	}

	return attendance.StatsResponse{
		Today: s.DailyStats(ctx, day),
		Week:  s.WeeklyStats(ctx, day),
	}, nil
}
