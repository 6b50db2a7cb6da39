package clock

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// DateLayout is the calendar date format used on the wire and in queries.
const DateLayout = "2006-01-02"

// Clock supplies the current instant and the location calendar dates belong to.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns a wall clock bound to the named IANA zone.
func NewSystemClock(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &systemClock{loc: loc}, nil
}

func (c *systemClock) Now() time.Time           { return time.Now().In(c.loc) }
func (c *systemClock) Location() *time.Location { return c.loc }

// Fixed is a Clock frozen at a single instant.
type Fixed struct {
	At  time.Time
	Loc *time.Location
}

func (f Fixed) Now() time.Time { return f.At.In(f.Location()) }

func (f Fixed) Location() *time.Location {
	if f.Loc == nil {
		return time.UTC
	}
	return f.Loc
}

// Calendar dates are civil: midnight UTC of the day, independent of the
// configured zone. The zone only decides which day it is right now.

// Today returns the current calendar day in the clock's location.
func Today(c Clock) time.Time {
	return DateOf(c.Now(), c.Location())
}

// DateOf returns the calendar day t falls on in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string as a calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// AddDays moves a calendar day by n days.
func AddDays(date time.Time, n int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday that begins the week containing the calendar day date.
func WeekStart(date time.Time) time.Time {
	cfg := &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: time.UTC,
	}
	y, m, d := date.Date()
	return cfg.With(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)).BeginningOfWeek()
}
