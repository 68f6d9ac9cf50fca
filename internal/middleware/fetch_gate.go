package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"FinScan/internal/domain/models"
	domrepo "FinScan/internal/domain/repository"
	"FinScan/internal/service/ratelimit"

	"golang.org/x/sync/semaphore"
)

const upstreamKey = "upstream"

// FetchGate sits between strategies and the upstream data source. It caps the
// number of in-flight requests across every concurrent strategy, paces them
// with a token bucket and records fetch metrics.
type FetchGate struct {
	quotes  domrepo.QuoteSource
	funds   domrepo.FundamentalsSource
	metrics domrepo.Metrics
	limiter *ratelimit.Limiter

	maxInFlight int64
	rps         float64
	burst       float64
	sem         *semaphore.Weighted
}

type GateOption func(*FetchGate)

// WithMaxInFlight sets the global cap on concurrent upstream requests.
func WithMaxInFlight(n int) GateOption {
	return func(g *FetchGate) {
		if n > 0 {
			g.maxInFlight = int64(n)
		}
	}
}

// WithRate sets the request pacing. rps <= 0 disables pacing.
func WithRate(rps float64, burst int) GateOption {
	return func(g *FetchGate) {
		g.rps = rps
		if burst > 0 {
			g.burst = float64(burst)
		}
	}
}

// WithLimiter shares an existing limiter.
func WithLimiter(l *ratelimit.Limiter) GateOption {
	return func(g *FetchGate) {
		if l != nil {
			g.limiter = l
		}
	}
}

// NewFetchGate wraps the sources. funds may be nil when the quality screen is
// not wired.
func NewFetchGate(quotes domrepo.QuoteSource, funds domrepo.FundamentalsSource, metrics domrepo.Metrics, opts ...GateOption) *FetchGate {
	g := &FetchGate{
		quotes:      quotes,
		funds:       funds,
		metrics:     metrics,
		limiter:     ratelimit.New(),
		maxInFlight: 16,
		burst:       16,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.sem = semaphore.NewWeighted(g.maxInFlight)
	return g
}

var (
	_ domrepo.QuoteSource        = (*FetchGate)(nil)
	_ domrepo.FundamentalsSource = (*FetchGate)(nil)
)

var errNoFundamentals = errors.New("fundamentals source not configured")

func (g *FetchGate) FetchHistory(ctx context.Context, symbol string, rng domrepo.Range, interval domrepo.Interval) ([]models.Bar, error) {
	var bars []models.Bar
	err := g.do(ctx, "history", symbol, func(ctx context.Context) error {
		var err error
		bars, err = g.quotes.FetchHistory(ctx, symbol, rng, interval)
		return err
	})
	return bars, err
}

func (g *FetchGate) FetchPrice(ctx context.Context, symbol string) (float64, error) {
	if g.funds == nil {
		return 0, models.Unavailable("gate", symbol, errNoFundamentals)
	}
	var price float64
	err := g.do(ctx, "price", symbol, func(ctx context.Context) error {
		var err error
		price, err = g.funds.FetchPrice(ctx, symbol)
		return err
	})
	return price, err
}

func (g *FetchGate) FetchFundamentals(ctx context.Context, symbol string) (models.Fundamentals, error) {
	if g.funds == nil {
		return models.Fundamentals{}, models.Unavailable("gate", symbol, errNoFundamentals)
	}
	var f models.Fundamentals
	err := g.do(ctx, "fundamentals", symbol, func(ctx context.Context) error {
		var err error
		f, err = g.funds.FetchFundamentals(ctx, symbol)
		return err
	})
	return f, err
}

func (g *FetchGate) do(ctx context.Context, op, symbol string, fn func(context.Context) error) error {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		g.metrics.RecordError("gate_acquire")
		return models.Unavailable("gate", symbol, fmt.Errorf("acquire slot: %w", err))
	}
	defer g.sem.Release(1)

	if g.rps > 0 {
		if err := g.limiter.Wait(ctx, upstreamKey, g.burst, g.rps); err != nil {
			g.metrics.RecordError("gate_throttle")
			return models.Unavailable("gate", symbol, fmt.Errorf("rate limit wait: %w", err))
		}
	}

	start := time.Now()
	err := fn(ctx)
	g.metrics.RecordLatency("fetch_"+op, time.Since(start).Seconds())
	g.metrics.RecordFetch(op, err == nil)
	return err
}
