package strategies

import (
	"context"
	"fmt"

	"FinScan/internal/domain/models"
	domrepo "FinScan/internal/domain/repository"
	"FinScan/internal/services/indicators"
	"FinScan/internal/services/signals"
)

// Supertrend requires price above the ATR(10)x3 lower band on the last two
// bars, EMA9 over EMA21 and above-average volume.
type Supertrend struct{ historyStrategy }

func NewSupertrend(quotes domrepo.QuoteSource) *Supertrend {
	return &Supertrend{historyStrategy{
		name:     NameSupertrend,
		category: models.ScanIntraday,
		quotes:   quotes,
		rng:      domrepo.Range3mo,
		interval: domrepo.Interval1d,
		minBars:  30,
	}}
}

func (s *Supertrend) Evaluate(ctx context.Context, symbol string) (*models.Signal, error) {
	bars, err := s.history(ctx, symbol)
	if err != nil {
		return nil, err
	}
	closes := indicators.Closes(bars)
	lower := indicators.SupertrendLower(bars, 10, 3)
	cur, band := indicators.Last(closes), indicators.Last(lower)

	bull := cur > band && indicators.Prev(closes) > indicators.Prev(lower)
	emaBull := indicators.Last(indicators.EMA(closes, 9)) > indicators.Last(indicators.EMA(closes, 21))
	volRatio, ok := indicators.VolumeRatio(indicators.Volumes(bars), 20)
	if !ok {
		return nil, errNoVolume
	}
	if !bull || !emaBull || volRatio <= 1 {
		return nil, nil
	}

	atr := indicators.Last(indicators.ATR(bars, 10))
	sig := signals.Build(signals.Draft{
		Symbol:     symbol,
		Algorithm:  s.name,
		Category:   s.category,
		Direction:  models.DirectionBuy,
		Entry:      cur,
		StopLoss:   band * 0.998,
		Target1:    cur + 2*atr,
		Target2:    cur + 3.5*atr,
		Confidence: signals.Confidence(68+(volRatio-1)*8, 68, 82),
		Timeframe:  "Intraday / Positional",
		Detail:     fmt.Sprintf("Supertrend bullish. EMA9>EMA21. Vol %.1fx.", volRatio),
		RiskReward: "1:2",
		Tags:       []string{"Supertrend", "Trend"},
	})
	return &sig, nil
}
