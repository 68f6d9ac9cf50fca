package strategies

import (
	"context"
	"fmt"

	"FinScan/internal/domain/models"
	domrepo "FinScan/internal/domain/repository"
	"FinScan/internal/services/indicators"
	"FinScan/internal/services/signals"
)

// EMACross fires when EMA9 crosses EMA21 between the last two bars.
type EMACross struct{ historyStrategy }

func NewEMACross(quotes domrepo.QuoteSource) *EMACross {
	return &EMACross{historyStrategy{
		name:     NameEMACross,
		category: models.ScanSwing,
		quotes:   quotes,
		rng:      domrepo.Range3mo,
		interval: domrepo.Interval1d,
		minBars:  25,
	}}
}

func (s *EMACross) Evaluate(ctx context.Context, symbol string) (*models.Signal, error) {
	bars, err := s.history(ctx, symbol)
	if err != nil {
		return nil, err
	}
	closes := indicators.Closes(bars)
	e9, e21 := indicators.EMA(closes, 9), indicators.EMA(closes, 21)

	bull := indicators.Prev(e9) <= indicators.Prev(e21) && indicators.Last(e9) > indicators.Last(e21)
	bear := indicators.Prev(e9) >= indicators.Prev(e21) && indicators.Last(e9) < indicators.Last(e21)
	if !bull && !bear {
		return nil, nil
	}
	volRatio, ok := indicators.VolumeRatio(indicators.Volumes(bars), 20)
	if !ok {
		return nil, errNoVolume
	}

	dir, m, side := models.DirectionBuy, 1.0, "above"
	if bear {
		dir, m, side = models.DirectionSell, -1.0, "below"
	}
	cur := indicators.Last(closes)
	atr := indicators.Last(indicators.ATR(bars, 14))
	sig := signals.Build(signals.Draft{
		Symbol:     symbol,
		Algorithm:  s.name,
		Category:   s.category,
		Direction:  dir,
		Entry:      cur,
		StopLoss:   cur - m*1.5*atr,
		Target1:    cur + m*2.5*atr,
		Target2:    cur + m*4*atr,
		Confidence: signals.Confidence(60+(volRatio-1)*10, 50, 85),
		Timeframe:  "Swing (5-15 days)",
		Detail:     fmt.Sprintf("EMA9 %s EMA21. Vol %.1fx.", side, volRatio),
		RiskReward: "1:1.7",
		Tags:       []string{"Trend", "EMA Crossover"},
	})
	return &sig, nil
}
