package session

import (
	"fmt"
	"strings"
	"time"

	"FinScan/internal/domain/models"
	"FinScan/pkg/util"

	"github.com/scmhub/calendar"
)

const (
	StatusOpen   = "Open"
	StatusClosed = "Closed"

	PhasePreOpen = "Pre-Open"
	PhaseOpen    = "Open"
	PhaseClosed  = "Closed"
	PhaseHoliday = "Holiday"

	TargetToday = "Today"
	TargetNext  = "Tomorrow / Next Session"
)

// Trading window in minutes since local midnight, bounds inclusive.
const (
	preOpenStart = 9 * 60
	sessionOpen  = 9*60 + 15
	sessionClose = 15*60 + 30
)

// BusinessCalendar reports exchange business days. *calendar.Calendar
// satisfies it.
type BusinessCalendar interface {
	IsBusinessDay(t time.Time) bool
}

// Clock derives informational market-session metadata for scan results.
// It never gates signal generation.
type Clock struct {
	loc *time.Location
	cal BusinessCalendar
	now func() time.Time
}

type Option func(*Clock)

func WithNow(now func() time.Time) Option {
	return func(c *Clock) { c.now = now }
}

func WithCalendar(cal BusinessCalendar) Option {
	return func(c *Clock) { c.cal = cal }
}

// New builds a Clock for the exchange zone loc. Without a calendar only
// weekends are closed days.
func New(loc *time.Location, opts ...Option) *Clock {
	if loc == nil {
		loc = util.LoadLocation("Asia/Kolkata", 5*time.Hour+30*time.Minute)
	}
	c := &Clock{loc: loc, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ExchangeCalendar returns the holiday calendar for a MIC such as "xnse" in
// loc. NSE is built locally; other MICs come from the library registry. It
// returns nil when the exchange is unknown.
func ExchangeCalendar(mic string, loc *time.Location) BusinessCalendar {
	mic = strings.ToLower(strings.TrimSpace(mic))
	if mic == NSEMIC {
		return yearBounded{cal: NSECalendar(loc)}
	}
	cal := calendar.GetCalendar(mic)
	if cal == nil {
		return nil
	}
	return yearBounded{cal: cal}
}

// Location is the exchange time zone.
func (c *Clock) Location() *time.Location { return c.loc }

// Now returns the current time in the exchange zone.
func (c *Clock) Now() time.Time { return c.now().In(c.loc) }

// Status reports the session status for the current instant.
func (c *Clock) Status() models.SessionStatus {
	return c.StatusAt(c.now())
}

// StatusAt reports the session status at t.
func (c *Clock) StatusAt(t time.Time) models.SessionStatus {
	t = t.In(c.loc)
	phase := c.phase(t)

	st := models.SessionStatus{Status: StatusClosed, Phase: phase, SessionTarget: TargetNext}
	if phase == PhaseOpen {
		st.Open, st.Status, st.SessionTarget = true, StatusOpen, TargetToday
	}
	st.Note = fmt.Sprintf("Calculated using latest EOD/Live data. Signals for %s.", st.SessionTarget)
	return st
}

func (c *Clock) phase(t time.Time) string {
	if util.IsWeekend(t) {
		return PhaseClosed
	}
	if c.cal != nil && !c.cal.IsBusinessDay(t) {
		return PhaseHoliday
	}
	m := util.ClockMinutes(t)
	switch {
	case m >= sessionOpen && m <= sessionClose:
		return PhaseOpen
	case m >= preOpenStart && m < sessionOpen:
		return PhasePreOpen
	default:
		return PhaseClosed
	}
}
