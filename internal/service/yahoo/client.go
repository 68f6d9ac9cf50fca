// Package yahoo implements the quote history and fundamentals sources on top
// of the public Yahoo Finance chart and quoteSummary endpoints.
package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"FinScan/internal/domain/models"
	"FinScan/internal/domain/repository"
	xhttp "FinScan/pkg/http"
)

const sourceName = "yahoo"

// Client is a QuoteSource and FundamentalsSource.
type Client struct {
	base                *HTTPServiceBase
	baseURL             string
	userAgent           string
	historyTimeout      time.Duration
	fundamentalsTimeout time.Duration
	attempts            int
	httpClient          *xhttp.Client
}

// Option configures Client.
type Option func(*Client)

// New creates a client with the upstream defaults: 8s history timeout, 6s
// fundamentals timeout, a single attempt.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:             "https://query1.finance.yahoo.com",
		userAgent:           "Mozilla/5.0",
		historyTimeout:      8 * time.Second,
		fundamentalsTimeout: 6 * time.Second,
		attempts:            1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.base = NewHTTPServiceBase(c.baseURL, c.userAgent, c.httpClient)
	return c
}

var (
	_ repository.QuoteSource        = (*Client)(nil)
	_ repository.FundamentalsSource = (*Client)(nil)
)

// FetchHistory returns the filtered bars for symbol over rng at interval.
func (c *Client) FetchHistory(ctx context.Context, symbol string, rng repository.Range, interval repository.Interval) ([]models.Bar, error) {
	cr, err := c.chart(ctx, symbol, rng, interval, c.historyTimeout)
	if err != nil {
		return nil, err
	}
	return cr.bars(), nil
}

// FetchPrice returns the regular market price from a short chart request.
func (c *Client) FetchPrice(ctx context.Context, symbol string) (float64, error) {
	cr, err := c.chart(ctx, symbol, repository.Range5d, repository.Interval1d, c.fundamentalsTimeout)
	if err != nil {
		return 0, err
	}
	p, ok := cr.regularMarketPrice()
	if !ok {
		return 0, models.Unavailable(sourceName, symbol, errNoPrice)
	}
	return p, nil
}

// FetchFundamentals returns the quality-screen ratios for symbol.
func (c *Client) FetchFundamentals(ctx context.Context, symbol string) (models.Fundamentals, error) {
	body, err := c.base.GetRawWithRetry(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(symbol),
		map[string][]string{"modules": {"defaultKeyStatistics,financialData"}},
		c.fundamentalsTimeout, c.attempts)
	if err != nil {
		return models.Fundamentals{}, models.Unavailable(sourceName, symbol, err)
	}
	return parseFundamentals(body), nil
}

func (c *Client) chart(ctx context.Context, symbol string, rng repository.Range, interval repository.Interval, timeout time.Duration) (*chartResponse, error) {
	if !repository.IsValidRange(rng) || !repository.IsValidInterval(interval) {
		return nil, models.Unavailable(sourceName, symbol, fmt.Errorf("unsupported range %q or interval %q", rng, interval))
	}
	body, err := c.base.GetRawWithRetry(ctx, "/v8/finance/chart/"+url.PathEscape(symbol),
		map[string][]string{"interval": {string(interval)}, "range": {string(rng)}},
		timeout, c.attempts)
	if err != nil {
		return nil, models.Unavailable(sourceName, symbol, err)
	}
	cr, err := parseChart(body)
	if err != nil {
		return nil, models.Unavailable(sourceName, symbol, err)
	}
	return cr, nil
}

// WithBaseURL overrides the upstream host.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeouts sets the history and fundamentals request timeouts.
func WithTimeouts(history, fundamentals time.Duration) Option {
	return func(c *Client) {
		if history > 0 {
			c.historyTimeout = history
		}
		if fundamentals > 0 {
			c.fundamentalsTimeout = fundamentals
		}
	}
}

// WithAttempts sets how many times a transient failure is tried.
func WithAttempts(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.attempts = n
		}
	}
}

// WithHTTPClient replaces the transport client.
func WithHTTPClient(hc *xhttp.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}
