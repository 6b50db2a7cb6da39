package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// DailyStats never fails; read errors yield zero counts.
	DailyStats(ctx context.Context, date time.Time) DailyStats
	// WeeklyStats returns Monday through Sunday of the week containing ref.
	WeeklyStats(ctx context.Context, ref time.Time) []DayStats
	// Stats parses date (empty means today) and returns the day and its week.
	Stats(ctx context.Context, date string) (StatsResponse, error)
}
