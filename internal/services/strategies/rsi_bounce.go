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

// RSIBounce looks for RSI turning up from below 35 while price holds near
// its 200-bar average on above-average volume.
type RSIBounce struct{ historyStrategy }

func NewRSIBounce(quotes domrepo.QuoteSource) *RSIBounce {
	return &RSIBounce{historyStrategy{
		name:     NameRSIBounce,
		category: models.ScanSwing,
		quotes:   quotes,
		rng:      domrepo.Range1y,
		interval: domrepo.Interval1d,
		minBars:  60,
	}}
}

func (s *RSIBounce) Evaluate(ctx context.Context, symbol string) (*models.Signal, error) {
	bars, err := s.history(ctx, symbol)
	if err != nil {
		return nil, err
	}
	closes := indicators.Closes(bars)
	cur := indicators.Last(closes)

	rsi := indicators.RSI(closes, 14)
	prevRSI, curRSI := indicators.Prev(rsi), indicators.Last(rsi)
	if math.IsNaN(prevRSI) || math.IsNaN(curRSI) {
		return nil, models.InsufficientHistory(len(bars), 16)
	}
	volRatio, ok := indicators.VolumeRatio(indicators.Volumes(bars), 20)
	if !ok {
		return nil, errNoVolume
	}

	// Without 200 bars the trend filter degrades to 90% of price.
	d200 := cur * 0.9
	if len(closes) >= 200 {
		d200 = indicators.Last(indicators.RollingMean(closes, 200))
	}
	if !(prevRSI < 35 && curRSI > prevRSI+1 && cur >= d200*0.98 && volRatio > 1) {
		return nil, nil
	}

	atr := indicators.Last(indicators.ATR(bars, 14))
	sig := signals.Build(signals.Draft{
		Symbol:     symbol,
		Algorithm:  s.name,
		Category:   s.category,
		Direction:  models.DirectionBuy,
		Entry:      cur,
		StopLoss:   cur - 2*atr,
		Target1:    cur + 3*atr,
		Target2:    cur + 5*atr,
		Confidence: signals.Confidence(55+(35-prevRSI)*2+(volRatio-1)*5, 55, 88),
		Timeframe:  "Swing (1-3 weeks)",
		Detail:     fmt.Sprintf("RSI %.0f→%.0f. Above 200DMA.", prevRSI, curRSI),
		RiskReward: "1:1.5",
		Tags:       []string{"RSI", "Mean Reversion"},
	})
	return &sig, nil
}
