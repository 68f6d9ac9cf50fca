// Package strategies implements the rule-based evaluators and the batch
// runner that fans each one out over a universe slice.
package strategies

import (
	"context"
	"fmt"

	"FinScan/internal/domain/models"
	domrepo "FinScan/internal/domain/repository"
)

// Algorithm names double as dedup keys and metric labels.
const (
	NameBreakout   = "52W High Breakout"
	NameRSIBounce  = "RSI Oversold Bounce"
	NameEMACross   = "EMA 9/21 Crossover"
	NameSqueeze    = "BB Squeeze (TTM)"
	NameSupertrend = "Supertrend + EMA"
	NameQuality    = "Quality Value Score"
	NameORB        = "Opening Range Breakout"
)

var errNoVolume = fmt.Errorf("%w: volume average undefined", models.ErrInsufficientHistory)

// historyStrategy is shared by every evaluator that needs price history.
type historyStrategy struct {
	name     string
	category models.ScanType
	quotes   domrepo.QuoteSource
	rng      domrepo.Range
	interval domrepo.Interval
	minBars  int
}

func (h *historyStrategy) Name() string { return h.name }
func (h *historyStrategy) Category() models.ScanType { return h.category }

// history fetches bars and enforces the minimum bar count.
func (h *historyStrategy) history(ctx context.Context, symbol string) ([]models.Bar, error) {
	bars, err := h.quotes.FetchHistory(ctx, symbol, h.rng, h.interval)
	if err != nil {
		return nil, err
	}
	if len(bars) < h.minBars {
		return nil, models.InsufficientHistory(len(bars), h.minBars)
	}
	return bars, nil
}

func signedPct(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.1f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
