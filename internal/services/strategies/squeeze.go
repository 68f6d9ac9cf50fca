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

// Squeeze reports Bollinger bands nested inside the Keltner channel, or a
// squeeze that released on the newest bar. Direction follows 5-bar momentum.
type Squeeze struct{ historyStrategy }

func NewSqueeze(quotes domrepo.QuoteSource) *Squeeze {
	return &Squeeze{historyStrategy{
		name:     NameSqueeze,
		category: models.ScanSwing,
		quotes:   quotes,
		rng:      domrepo.Range3mo,
		interval: domrepo.Interval1d,
		minBars:  30,
	}}
}

func (s *Squeeze) Evaluate(ctx context.Context, symbol string) (*models.Signal, error) {
	bars, err := s.history(ctx, symbol)
	if err != nil {
		return nil, err
	}
	closes := indicators.Closes(bars)
	bbU, bbL := indicators.Bollinger(closes, 20, 2)
	kcU, kcL := indicators.Keltner(bars, 20, 14, 1.5)

	nested := func(n int) bool {
		return indicators.Back(bbU, n) < indicators.Back(kcU, n) && indicators.Back(bbL, n) > indicators.Back(kcL, n)
	}
	on := nested(1)
	released := nested(2) && !on
	if !on && !released {
		return nil, nil
	}

	cur := indicators.Last(closes)
	var mom float64
	if fiveAgo := indicators.Back(closes, 6); !math.IsNaN(fiveAgo) && fiveAgo != 0 {
		mom = (cur - fiveAgo) / fiveAgo * 100
	}
	dir, m := models.DirectionBuy, 1.0
	if mom < 0 {
		dir, m = models.DirectionSell, -1.0
	}
	state, conf := "Coiling.", 66
	if released {
		state, conf = "Squeeze released!", 78
	}

	atr := indicators.Last(indicators.ATR(bars, 14))
	sig := signals.Build(signals.Draft{
		Symbol:     symbol,
		Algorithm:  s.name,
		Category:   s.category,
		Direction:  dir,
		Entry:      cur,
		StopLoss:   cur - m*1.5*atr,
		Target1:    cur + m*3*atr,
		Target2:    cur + m*5*atr,
		Confidence: conf,
		Timeframe:  "Swing (2-4 weeks)",
		Detail:     fmt.Sprintf("%s Mom %s%% (5d).", state, signedPct(mom)),
		RiskReward: "1:2",
		Tags:       []string{"Squeeze", "Volatility"},
	})
	return &sig, nil
}
