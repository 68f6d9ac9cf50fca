package util

import (
	"time"
)

// DayKeyLayout is the calendar-date layout used in cache keys.
const DayKeyLayout = "2006-01-02"

// DayKey returns the calendar date of t in loc. A nil loc means UTC.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DayKeyLayout)
}

// LoadLocation loads a named zone and falls back to a fixed offset when the
// zone database is missing on the host.
func LoadLocation(name string, fallbackOffset time.Duration) *time.Location {
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone(name, int(fallbackOffset.Seconds()))
}

// ClockMinutes returns minutes since midnight for t in its own location.
func ClockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
