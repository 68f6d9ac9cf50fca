package session

import (
	"testing"
	"time"
)

var ist = time.FixedZone("IST", 19800)

type holidays map[string]bool

func (h holidays) IsBusinessDay(t time.Time) bool {
	return !h[t.Format("2006-01-02")]
}

func TestStatusAt(t *testing.T) {
	c := New(ist, WithCalendar(holidays{"2024-10-02": true}))
	cases := []struct {
		name   string
		at     time.Time
		status string
		phase  string
		target string
	}{
		{"before pre-open", time.Date(2024, 10, 10, 8, 59, 0, 0, ist), StatusClosed, PhaseClosed, TargetNext},
		{"pre-open", time.Date(2024, 10, 10, 9, 5, 0, 0, ist), StatusClosed, PhasePreOpen, TargetNext},
		{"open bell", time.Date(2024, 10, 10, 9, 15, 0, 0, ist), StatusOpen, PhaseOpen, TargetToday},
		{"mid session", time.Date(2024, 10, 10, 12, 0, 0, 0, ist), StatusOpen, PhaseOpen, TargetToday},
		{"closing minute", time.Date(2024, 10, 10, 15, 30, 59, 0, ist), StatusOpen, PhaseOpen, TargetToday},
		{"after close", time.Date(2024, 10, 10, 15, 31, 0, 0, ist), StatusClosed, PhaseClosed, TargetNext},
		{"saturday", time.Date(2024, 10, 12, 11, 0, 0, 0, ist), StatusClosed, PhaseClosed, TargetNext},
		{"holiday", time.Date(2024, 10, 2, 11, 0, 0, 0, ist), StatusClosed, PhaseHoliday, TargetNext},
	}
	for _, tc := range cases {
		st := c.StatusAt(tc.at)
		if st.Status != tc.status || st.Phase != tc.phase || st.SessionTarget != tc.target {
			t.Fatalf("%s: unexpected status %+v", tc.name, st)
		}
		if st.Open != (tc.status == StatusOpen) {
			t.Fatalf("%s: open flag mismatch", tc.name)
		}
	}
}

func TestStatusConvertsToExchangeZone(t *testing.T) {
	c := New(ist)
	// 04:00 UTC is 09:30 IST.
	st := c.StatusAt(time.Date(2024, 10, 10, 4, 0, 0, 0, time.UTC))
	if !st.Open {
		t.Fatalf("expected open, got %+v", st)
	}
}

func TestStatusNote(t *testing.T) {
	now := time.Date(2024, 10, 10, 10, 0, 0, 0, ist)
	c := New(ist, WithNow(func() time.Time { return now }))
	st := c.Status()
	if st.Note != "Calculated using latest EOD/Live data. Signals for Today." {
		t.Fatalf("unexpected note %q", st.Note)
	}
	if !c.Now().Equal(now) || c.Location() != ist {
		t.Fatalf("clock accessors broken")
	}
}

func TestNilLocationDefaultsToIndia(t *testing.T) {
	c := New(nil)
	_, off := c.Now().Zone()
	if off != 19800 {
		t.Fatalf("expected IST offset, got %d", off)
	}
}

func TestNSECalendarHolidays(t *testing.T) {
	c := New(ist, WithCalendar(ExchangeCalendar("XNSE", ist)))
	cases := []struct {
		at    time.Time
		phase string
	}{
		{time.Date(2025, 3, 14, 11, 0, 0, 0, ist), PhaseHoliday},
		{time.Date(2025, 10, 21, 11, 0, 0, 0, ist), PhaseHoliday},
		{time.Date(2026, 12, 25, 11, 0, 0, 0, ist), PhaseHoliday},
		{time.Date(2025, 3, 13, 11, 0, 0, 0, ist), PhaseOpen},
		// Republic Day 2025 is a Sunday.
		{time.Date(2025, 1, 26, 11, 0, 0, 0, ist), PhaseClosed},
	}
	for _, tc := range cases {
		if st := c.StatusAt(tc.at); st.Phase != tc.phase {
			t.Fatalf("%s: expected %s, got %+v", tc.at.Format(time.DateOnly), tc.phase, st)
		}
	}
}

func TestExchangeCalendarOutsideYearRange(t *testing.T) {
	cal := ExchangeCalendar(NSEMIC, ist)
	if !cal.IsBusinessDay(time.Date(2090, 8, 15, 11, 0, 0, 0, ist)) {
		t.Fatalf("weekday outside calendar range must be a business day")
	}
	if cal.IsBusinessDay(time.Date(2090, 8, 19, 11, 0, 0, 0, ist)) {
		t.Fatalf("weekend outside calendar range must be closed")
	}
}

func TestExchangeCalendarUnknownMIC(t *testing.T) {
	if cal := ExchangeCalendar("xxxx", ist); cal != nil {
		t.Fatalf("expected nil calendar, got %T", cal)
	}
	if cal := ExchangeCalendar("xnys", ist); cal == nil {
		t.Fatalf("expected registry calendar for xnys")
	}
}
