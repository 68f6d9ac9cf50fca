package repository

import (
	"errors"
	"testing"

	"FinScan/internal/domain/models"
)

func TestParseScanType(t *testing.T) {
	cases := []struct {
		in   string
		want models.ScanType
		err  error
	}{
		{"", models.ScanSwing, nil},
		{"intraday", models.ScanIntraday, nil},
		{"longterm", models.ScanLongterm, nil},
		{"weekly", "", models.ErrUnknownScanType},
	}
	for _, c := range cases {
		got, err := ParseScanType(c.in)
		if !errors.Is(err, c.err) {
			t.Fatalf("ParseScanType(%q) err=%v want %v", c.in, err, c.err)
		}
		if got != c.want {
			t.Fatalf("ParseScanType(%q)=%q want %q", c.in, got, c.want)
		}
	}
}

func TestIntervalAndRange(t *testing.T) {
	if !IsValidInterval(Interval1d) || IsValidInterval("1w") {
		t.Fatalf("unexpected interval validation")
	}
	if !IsValidRange(Range3mo) || IsValidRange("10y") {
		t.Fatalf("unexpected range validation")
	}
}
