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

// Breakout flags symbols trading within 3.5% below to 0.5% above their
// trailing high close on heavy volume.
type Breakout struct{ historyStrategy }

func NewBreakout(quotes domrepo.QuoteSource) *Breakout {
	return &Breakout{historyStrategy{
		name:     NameBreakout,
		category: models.ScanSwing,
		quotes:   quotes,
		rng:      domrepo.Range1y,
		interval: domrepo.Interval1d,
		minBars:  100,
	}}
}

func (s *Breakout) Evaluate(ctx context.Context, symbol string) (*models.Signal, error) {
	bars, err := s.history(ctx, symbol)
	if err != nil {
		return nil, err
	}
	closes := indicators.Closes(bars)
	cur := indicators.Last(closes)
	high := indicators.Max(closes)

	volRatio, ok := indicators.VolumeRatio(indicators.Volumes(bars), 20)
	if !ok {
		return nil, errNoVolume
	}
	if math.IsNaN(high) || high <= 0 {
		return nil, nil
	}
	pct := (cur - high) / high * 100
	if pct < -3.5 || pct > 0.5 || volRatio <= 1.4 {
		return nil, nil
	}

	sig := signals.Build(signals.Draft{
		Symbol:     symbol,
		Algorithm:  s.name,
		Category:   s.category,
		Direction:  models.DirectionBuy,
		Entry:      cur,
		StopLoss:   cur * 0.92,
		Target1:    cur * 1.10,
		Target2:    cur * 1.20,
		Confidence: signals.Confidence(65+math.Min(25, (volRatio-1.4)*18), 65, 93),
		Timeframe:  "Swing (2-6 weeks)",
		Detail:     fmt.Sprintf("Within %.1f%% of 52W high. Vol %.1fx.", math.Abs(pct), volRatio),
		RiskReward: "1:1.4",
		Tags:       []string{"Momentum", "Breakout"},
	})
	return &sig, nil
}
