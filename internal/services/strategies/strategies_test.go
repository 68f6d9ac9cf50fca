package strategies

import (
	"context"
	"errors"
	"testing"

	"FinScan/internal/domain/models"
)

func TestBreakoutScenarioA(t *testing.T) {
	closes := make([]float64, 120)
	for i := range closes {
		closes[i] = 50 + float64(i)*50/119
	}
	closes[119] = 100
	bars := barsFromCloses(closes, 1800)
	bars[119].Volume = 3800

	s := NewBreakout(&fakeQuotes{bars: map[string][]models.Bar{"ACME.NS": bars}})
	sig, err := s.Evaluate(context.Background(), "ACME.NS")
	if err != nil || sig == nil {
		t.Fatalf("expected a signal, got %v err=%v", sig, err)
	}
	if sig.Symbol != "ACME" || sig.Direction != models.DirectionBuy || sig.Category != models.ScanSwing {
		t.Fatalf("unexpected signal header %+v", sig)
	}
	if sig.Confidence != 75 || sig.Confidence > 93 {
		t.Fatalf("expected confidence 75, got %d", sig.Confidence)
	}
	if sig.Entry != 100 || sig.StopLoss != 92 || sig.Target1 != 110 || sig.Target2 != 120 {
		t.Fatalf("unexpected levels %+v", sig)
	}
	if sig.Detail != "Within 0.0% of 52W high. Vol 2.0x." {
		t.Fatalf("unexpected detail %q", sig.Detail)
	}
}

func TestBreakoutNeedsVolume(t *testing.T) {
	closes := make([]float64, 120)
	for i := range closes {
		closes[i] = 50 + float64(i)
	}
	s := NewBreakout(&fakeQuotes{bars: map[string][]models.Bar{"X": barsFromCloses(closes, 1000)}})
	sig, err := s.Evaluate(context.Background(), "X")
	if err != nil || sig != nil {
		t.Fatalf("expected no trigger on flat volume, got %v err=%v", sig, err)
	}
}

func TestBreakoutIgnoresNonPositiveHigh(t *testing.T) {
	bars := barsFromCloses(flat(120, 0), 1800)
	bars[119].Volume = 3800
	s := NewBreakout(&fakeQuotes{bars: map[string][]models.Bar{"X": bars}})
	sig, err := s.Evaluate(context.Background(), "X")
	if err != nil || sig != nil {
		t.Fatalf("expected no trigger on zero prices, got %v err=%v", sig, err)
	}
}

func TestBreakoutInsufficientHistory(t *testing.T) {
	s := NewBreakout(&fakeQuotes{bars: map[string][]models.Bar{"X": barsFromCloses(flat(99, 10), 10)}})
	if _, err := s.Evaluate(context.Background(), "X"); !errors.Is(err, models.ErrInsufficientHistory) {
		t.Fatalf("expected insufficient history, got %v", err)
	}
}

func TestRSIBounceScenarioB(t *testing.T) {
	s := NewRSIBounce(&fakeQuotes{bars: map[string][]models.Bar{"X": barsFromCloses(flat(59, 10), 10)}})
	sig, err := s.Evaluate(context.Background(), "X")
	if sig != nil || !errors.Is(err, models.ErrInsufficientHistory) {
		t.Fatalf("expected skip, got %v err=%v", sig, err)
	}
}

func TestRSIBounceTriggers(t *testing.T) {
	closes := make([]float64, 60)
	for i := 0; i < 59; i++ {
		closes[i] = 200 - float64(i)
	}
	closes[59] = closes[58] + 5
	bars := barsFromCloses(closes, 1000)
	bars[59].Volume = 2000

	s := NewRSIBounce(&fakeQuotes{bars: map[string][]models.Bar{"X.NS": bars}})
	sig, err := s.Evaluate(context.Background(), "X.NS")
	if err != nil || sig == nil {
		t.Fatalf("expected a signal, got %v err=%v", sig, err)
	}
	if sig.Confidence != 88 {
		t.Fatalf("expected capped confidence 88, got %d", sig.Confidence)
	}
	if sig.Entry != 147 || sig.StopLoss != 142.4 || sig.Target1 != 153.9 || sig.Target2 != 158.4 {
		t.Fatalf("unexpected levels %+v", sig)
	}
	if sig.Detail != "RSI 0→28. Above 200DMA." {
		t.Fatalf("unexpected detail %q", sig.Detail)
	}
}

func TestEMACrossDirections(t *testing.T) {
	up := append(flat(29, 100), 99, 110)
	down := append(flat(29, 100), 101, 90)
	q := &fakeQuotes{bars: map[string][]models.Bar{
		"UP":   barsFromCloses(up, 1000),
		"DOWN": barsFromCloses(down, 1000),
	}}
	s := NewEMACross(q)

	sig, err := s.Evaluate(context.Background(), "UP")
	if err != nil || sig == nil {
		t.Fatalf("expected bullish cross, got %v err=%v", sig, err)
	}
	if sig.Direction != models.DirectionBuy || sig.Confidence != 60 || sig.Entry != 110 || sig.StopLoss != 105.9 {
		t.Fatalf("unexpected bullish signal %+v", sig)
	}
	if sig.Detail != "EMA9 above EMA21. Vol 1.0x." {
		t.Fatalf("unexpected detail %q", sig.Detail)
	}

	sig, err = s.Evaluate(context.Background(), "DOWN")
	if err != nil || sig == nil {
		t.Fatalf("expected bearish cross, got %v err=%v", sig, err)
	}
	if sig.Direction != models.DirectionSell || sig.Entry != 90 || sig.StopLoss != 94.1 || sig.Target1 >= sig.Entry {
		t.Fatalf("unexpected bearish signal %+v", sig)
	}
}

func TestEMACrossNoCross(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	s := NewEMACross(&fakeQuotes{bars: map[string][]models.Bar{"X": barsFromCloses(closes, 1000)}})
	if sig, err := s.Evaluate(context.Background(), "X"); sig != nil || err != nil {
		t.Fatalf("expected nothing, got %v err=%v", sig, err)
	}
}

func TestSqueezeCoiling(t *testing.T) {
	s := NewSqueeze(&fakeQuotes{bars: map[string][]models.Bar{"X": barsFromCloses(flat(40, 100), 1000)}})
	sig, err := s.Evaluate(context.Background(), "X")
	if err != nil || sig == nil {
		t.Fatalf("expected coiling signal, got %v err=%v", sig, err)
	}
	if sig.Confidence != 66 || sig.Direction != models.DirectionBuy {
		t.Fatalf("unexpected signal %+v", sig)
	}
	if sig.Entry != 100 || sig.StopLoss != 97 || sig.Target1 != 106 || sig.Target2 != 110 {
		t.Fatalf("unexpected levels %+v", sig)
	}
	if sig.Detail != "Coiling. Mom +0.0% (5d)." {
		t.Fatalf("unexpected detail %q", sig.Detail)
	}
}

func TestSqueezeReleased(t *testing.T) {
	closes := append(flat(40, 100), 110)
	s := NewSqueeze(&fakeQuotes{bars: map[string][]models.Bar{"X": barsFromCloses(closes, 1000)}})
	sig, err := s.Evaluate(context.Background(), "X")
	if err != nil || sig == nil {
		t.Fatalf("expected release signal, got %v err=%v", sig, err)
	}
	if sig.Confidence != 78 || sig.Detail != "Squeeze released! Mom +10.0% (5d)." {
		t.Fatalf("unexpected signal %+v", sig)
	}
}

func TestSupertrendTriggers(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	bars := barsFromCloses(closes, 1000)
	bars[39].Volume = 2000

	s := NewSupertrend(&fakeQuotes{bars: map[string][]models.Bar{"X.NS": bars}})
	sig, err := s.Evaluate(context.Background(), "X.NS")
	if err != nil || sig == nil {
		t.Fatalf("expected a signal, got %v err=%v", sig, err)
	}
	if sig.Category != models.ScanIntraday || sig.Confidence != 75 {
		t.Fatalf("unexpected signal %+v", sig)
	}
	if sig.Entry != 139 || sig.StopLoss != 132.7 || sig.Target1 != 143 || sig.Target2 != 146 {
		t.Fatalf("unexpected levels %+v", sig)
	}
}

func TestSupertrendRequiresVolume(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	s := NewSupertrend(&fakeQuotes{bars: map[string][]models.Bar{"X": barsFromCloses(closes, 1000)}})
	if sig, err := s.Evaluate(context.Background(), "X"); sig != nil || err != nil {
		t.Fatalf("expected nothing at volume ratio 1, got %v err=%v", sig, err)
	}
}

func TestQualityScores(t *testing.T) {
	s := NewQuality(&fakeFunds{price: 1500, f: models.Fundamentals{
		ReturnOnEquity: 0.25, DebtToEquity: 20, EarningsGrowth: 0.2, RevenueGrowth: 0.12, ForwardPE: 18,
	}})
	sig, err := s.Evaluate(context.Background(), "INFY.NS")
	if err != nil || sig == nil {
		t.Fatalf("expected a signal, got %v err=%v", sig, err)
	}
	if sig.Confidence != 90 || sig.Direction != models.DirectionAccumulate {
		t.Fatalf("unexpected signal %+v", sig)
	}
	if sig.Entry != 1500 || sig.StopLoss != 1275 || sig.Target1 != 1800 || sig.Target2 != 2100 {
		t.Fatalf("unexpected levels %+v", sig)
	}
	if sig.Detail != "ROE 25% | D/E 20 | EPS growth +20% | Score 90/100" {
		t.Fatalf("unexpected detail %q", sig.Detail)
	}
}

func TestQualityRejectsDefaults(t *testing.T) {
	s := NewQuality(&fakeFunds{price: 100, f: models.DefaultFundamentals()})
	if sig, err := s.Evaluate(context.Background(), "X"); sig != nil || err != nil {
		t.Fatalf("expected rejection, got %v err=%v", sig, err)
	}
}

func TestQualityScoreWeights(t *testing.T) {
	cases := []struct {
		roe, de, eg, rg, pe float64
		want                int
	}{
		{25, 20, 20, 12, 18, 90},
		{16, 50, 11, 5, 30, 39},
		{16, 70, 0, 0, 40, 12},
	}
	for _, c := range cases {
		if got := QualityScore(c.roe, c.de, c.eg, c.rg, c.pe); got != c.want {
			t.Fatalf("QualityScore(%v)=%d want %d", c, got, c.want)
		}
	}
}

func TestQualityPropagatesFetchError(t *testing.T) {
	s := NewQuality(&fakeFunds{err: models.Unavailable("test", "X", errors.New("boom"))})
	if _, err := s.Evaluate(context.Background(), "X"); !errors.Is(err, models.ErrDataUnavailable) {
		t.Fatalf("expected data unavailable, got %v", err)
	}
}

func TestORBBreakout(t *testing.T) {
	bars := barsFromCloses(flat(20, 100), 1000)
	for i := 11; i < 20; i++ {
		bars[i].Volume = 2000
	}
	bars[19].Close = 105
	s := NewORB(&fakeQuotes{bars: map[string][]models.Bar{"X.NS": bars}})
	sig, err := s.Evaluate(context.Background(), "X.NS")
	if err != nil || sig == nil {
		t.Fatalf("expected breakout, got %v err=%v", sig, err)
	}
	if sig.Direction != models.DirectionBuy || sig.Confidence != 73 {
		t.Fatalf("unexpected signal %+v", sig)
	}
	if sig.Entry != 101 || sig.StopLoss != 99 || sig.Target1 != 104 || sig.Target2 != 106 {
		t.Fatalf("unexpected levels %+v", sig)
	}
	if sig.Detail != "ORB high 101 | Range 2pts | Vol 1.4x." {
		t.Fatalf("unexpected detail %q", sig.Detail)
	}
}

func TestORBBreakdown(t *testing.T) {
	bars := barsFromCloses(flat(20, 100), 1000)
	for i := 11; i < 20; i++ {
		bars[i].Volume = 2000
	}
	bars[19].Close = 95
	s := NewORB(&fakeQuotes{bars: map[string][]models.Bar{"X": bars}})
	sig, err := s.Evaluate(context.Background(), "X")
	if err != nil || sig == nil {
		t.Fatalf("expected breakdown, got %v err=%v", sig, err)
	}
	if sig.Direction != models.DirectionSell || sig.Confidence != 70 || sig.Entry != 99 || sig.StopLoss != 101 {
		t.Fatalf("unexpected signal %+v", sig)
	}
}

func TestConfidenceWithinBounds(t *testing.T) {
	closes := make([]float64, 120)
	for i := range closes {
		closes[i] = 50 + float64(i)*50/119
	}
	closes[119] = 100
	bars := barsFromCloses(closes, 100)
	bars[119].Volume = 1_000_000
	s := NewBreakout(&fakeQuotes{bars: map[string][]models.Bar{"X": bars}})
	sig, err := s.Evaluate(context.Background(), "X")
	if err != nil || sig == nil {
		t.Fatalf("expected a signal, got %v err=%v", sig, err)
	}
	if sig.Confidence < 65 || sig.Confidence > 93 {
		t.Fatalf("confidence %d outside [65, 93]", sig.Confidence)
	}
}
