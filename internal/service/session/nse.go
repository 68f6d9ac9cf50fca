package session

import (
	"time"

	"github.com/scmhub/calendar"
)

// NSEMIC is the market identifier of the National Stock Exchange of India.
// scmhub/calendar has no registry entry for it.
const NSEMIC = "xnse"

type nseHoliday struct {
	name string
	date string
}

// Published NSE trading holidays. Dates falling on a weekend are dropped by
// the calendar.
var nseHolidays = []nseHoliday{
	{"Republic Day", "2025-01-26"},
	{"Mahashivratri", "2025-02-26"},
	{"Holi", "2025-03-14"},
	{"Id-Ul-Fitr", "2025-03-31"},
	{"Shri Ram Navami", "2025-04-10"},
	{"Dr. Baba Saheb Ambedkar Jayanti", "2025-04-14"},
	{"Good Friday", "2025-04-18"},
	{"Maharashtra Day", "2025-05-01"},
	{"Independence Day", "2025-08-15"},
	{"Ganesh Chaturthi", "2025-08-27"},
	{"Gandhi Jayanti / Dussehra", "2025-10-02"},
	{"Diwali Laxmi Pujan", "2025-10-20"},
	{"Diwali Balipratipada", "2025-10-21"},
	{"Prakash Gurpurb Sri Guru Nanak Dev", "2025-11-05"},
	{"Christmas", "2025-12-25"},
	{"Republic Day", "2026-01-26"},
	{"Mahashivaratri", "2026-03-04"},
	{"Good Friday", "2026-04-03"},
	{"Dr. Baba Saheb Ambedkar Jayanti", "2026-04-14"},
	{"Maharashtra Day", "2026-05-01"},
	{"Independence Day", "2026-08-15"},
	{"Gandhi Jayanti", "2026-10-02"},
	{"Christmas", "2026-12-25"},
}

// Years covered by nseHolidays.
const (
	nseFirstYear = 2025
	nseLastYear  = 2026
)

// NSECalendar builds the NSE holiday calendar in loc.
func NSECalendar(loc *time.Location) *calendar.Calendar {
	c := calendar.NewCalendar("National Stock Exchange of India", loc, nseFirstYear, nseLastYear)
	c.SetSession(&calendar.Session{
		EarlyOpen: 9 * time.Hour,
		Open:      9*time.Hour + 15*time.Minute,
		Close:     15*time.Hour + 30*time.Minute,
	})
	for _, h := range nseHolidays {
		d, err := time.Parse(time.DateOnly, h.date)
		if err != nil {
			panic("session: bad NSE holiday date " + h.date)
		}
		// NewYear carries the fixed day-of-month rule; the copy pins it to one date.
		hol := calendar.NewYear.Copy(h.name)
		hol.Month, hol.Day = d.Month(), d.Day()
		c.AddHolidays(hol.SetOnYear(d.Year()))
	}
	return c
}

// yearBounded guards a library calendar, which panics outside its year range.
// Days outside the range fall back to the weekend rule.
type yearBounded struct {
	cal *calendar.Calendar
}

func (b yearBounded) IsBusinessDay(t time.Time) bool {
	start, end := b.cal.Years()
	if y := t.Year(); y < start || y > end {
		return !calendar.IsWeekend(t)
	}
	return b.cal.IsBusinessDay(t)
}
