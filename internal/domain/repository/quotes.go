package repository

import (
	"context"

	"FinScan/internal/domain/models"
)

// Interval is a bar size understood by the quote source.
type Interval string

const (
	Interval5m Interval = "5m"
	Interval1d Interval = "1d"
)

// Range is a lookback window understood by the quote source.
type Range string

const (
	Range2d  Range = "2d"
	Range5d  Range = "5d"
	Range3mo Range = "3mo"
	Range1y  Range = "1y"
)

// QuoteSource returns OHLCV history for one symbol. Failures are reported as
// models.ErrDataUnavailable.
type QuoteSource interface {
	FetchHistory(ctx context.Context, symbol string, rng Range, interval Interval) ([]models.Bar, error)
}

// FundamentalsSource backs the quality screen.
type FundamentalsSource interface {
	FetchPrice(ctx context.Context, symbol string) (float64, error)
	FetchFundamentals(ctx context.Context, symbol string) (models.Fundamentals, error)
}
