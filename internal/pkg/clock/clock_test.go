package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	for offset := 0; offset < 7; offset++ {
		day := AddDays(monday, offset)
		got := WeekStart(day)
		assert.True(t, monday.Equal(got), "day %s got %s", day.Weekday(), got)
	}

	// Sunday belongs to the week that started six days earlier.
	sunday := time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)
	assert.True(t, monday.Equal(WeekStart(sunday)))
}

func TestToday_UsesClockLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/El_Salvador")
	require.NoError(t, err)

	// 03:00 UTC on the 16th is still the 15th in UTC-6.
	c := Fixed{At: time.Date(2024, 1, 16, 3, 0, 0, 0, time.UTC), Loc: loc}
	today := Today(c)
	assert.Equal(t, "2024-01-15", today.Format(DateLayout))
	assert.Equal(t, time.UTC, today.Location())
}

func TestCalendarDays_MidnightDSTZone(t *testing.T) {
	// Chile skips 2024-09-08 00:00; the day itself must survive.
	loc, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)

	c := Fixed{At: time.Date(2024, 9, 8, 12, 0, 0, 0, loc), Loc: loc}
	assert.Equal(t, "2024-09-08", Today(c).Format(DateLayout))

	d, err := ParseDate("2024-09-08")
	require.NoError(t, err)
	assert.Equal(t, "2024-09-08", d.Format(DateLayout))
	assert.Equal(t, time.Sunday, d.Weekday())

	monday := WeekStart(d)
	assert.Equal(t, "2024-09-02", monday.Format(DateLayout))
	assert.Equal(t, "2024-09-08", AddDays(monday, 6).Format(DateLayout))
}

func TestAddDays(t *testing.T) {
	d := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-29", AddDays(d, 1).Format(DateLayout))
	assert.Equal(t, "2024-03-01", AddDays(d, 2).Format(DateLayout))
	assert.Equal(t, "2024-02-21", AddDays(d, -7).Format(DateLayout))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 29, d.Day())

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)
}

func TestNewSystemClock(t *testing.T) {
	c, err := NewSystemClock("America/El_Salvador")
	require.NoError(t, err)
	assert.Equal(t, "America/El_Salvador", c.Location().String())
	assert.Equal(t, c.Location(), c.Now().Location())

	_, err = NewSystemClock("Nowhere/Special")
	assert.Error(t, err)
}
