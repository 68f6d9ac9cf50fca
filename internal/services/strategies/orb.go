package strategies

import (
	"context"
	"fmt"
	"math"

	"FinScan/internal/domain/models"
	domrepo "FinScan/internal/domain/repository"
	"FinScan/internal/services/indicators"
	"FinScan/internal/services/signals"
)

// ORB is the opening range breakout on 5-minute bars. The opening range is
// three bars starting twelve from the end, or the first three bars of a
// short session.
type ORB struct{ historyStrategy }

func NewORB(quotes domrepo.QuoteSource) *ORB {
	return &ORB{historyStrategy{
		name:     NameORB,
		category: models.ScanIntraday,
		quotes:   quotes,
		rng:      domrepo.Range2d,
		interval: domrepo.Interval5m,
		minBars:  6,
	}}
}

func (s *ORB) Evaluate(ctx context.Context, symbol string) (*models.Signal, error) {
	bars, err := s.history(ctx, symbol)
	if err != nil {
		return nil, err
	}
	n := len(bars)
	opening, rest := bars[:3], bars[3:]
	if n > 12 {
		opening, rest = bars[n-12:n-9], bars[n-9:]
	}

	orh, orl := math.Inf(-1), math.Inf(1)
	for _, b := range opening {
		orh = math.Max(orh, b.High)
		orl = math.Min(orl, b.Low)
	}
	rng := orh - orl
	if rng <= 0 {
		return nil, nil
	}
	cur := rest[len(rest)-1].Close
	avgVol := indicators.Mean(indicators.Volumes(bars))
	restVol := indicators.Mean(indicators.Volumes(rest))
	if math.IsNaN(avgVol) || avgVol == 0 {
		return nil, errNoVolume
	}
	volRatio := restVol / avgVol
	if math.IsNaN(volRatio) || volRatio <= 1.2 {
		return nil, nil
	}

	d := signals.Draft{
		Symbol:     symbol,
		Algorithm:  s.name,
		Category:   s.category,
		Timeframe:  "Intraday",
		RiskReward: "1:1.5",
	}
	switch {
	case cur > orh*1.001:
		d.Direction = models.DirectionBuy
		d.Entry, d.StopLoss = orh, orl
		d.Target1, d.Target2 = orh+1.5*rng, orh+2.5*rng
		d.Confidence = 73
		d.Detail = fmt.Sprintf("ORB high %.0f | Range %.0fpts | Vol %.1fx.", orh, rng, volRatio)
		d.Tags = []string{"ORB", "Breakout"}
	case cur < orl*0.999:
		d.Direction = models.DirectionSell
		d.Entry, d.StopLoss = orl, orh
		d.Target1, d.Target2 = orl-1.5*rng, orl-2.5*rng
		d.Confidence = 70
		d.Detail = fmt.Sprintf("ORB breakdown %.0f | Range %.0fpts | Vol %.1fx.", orl, rng, volRatio)
		d.Tags = []string{"ORB", "Breakdown"}
	default:
		return nil, nil
	}
	sig := signals.Build(d)
	return &sig, nil
}
