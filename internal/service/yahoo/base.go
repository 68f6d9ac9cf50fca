package yahoo

import (
	"context"
	"errors"
	"fmt"
	"time"

	xhttp "FinScan/pkg/http"
)

// HTTPServiceBase centralises client construction and GET handling for the
// quote endpoints.
type HTTPServiceBase struct {
	baseURL   string
	userAgent string
	client    *xhttp.Client
}

// NewHTTPServiceBase builds a base with the given URL and user agent. The
// per-request deadline comes from the caller's context.
func NewHTTPServiceBase(baseURL, userAgent string, client *xhttp.Client) *HTTPServiceBase {
	if client == nil {
		client = xhttp.NewClient(xhttp.WithTimeout(30*time.Second), xhttp.WithMaxBody(4<<20))
	}
	return &HTTPServiceBase{baseURL: baseURL, userAgent: userAgent, client: client}
}

// GetRaw issues a GET against path under baseURL and returns the body.
func (b *HTTPServiceBase) GetRaw(ctx context.Context, path string, query map[string][]string) ([]byte, error) {
	if b.client == nil || b.baseURL == "" {
		return nil, fmt.Errorf("quote http client not initialized")
	}
	body, err := b.client.GetBytes(ctx, xhttp.RequestOptions{
		URL:   b.baseURL + path,
		Query: query,
		Headers: map[string]string{
			"User-Agent": b.userAgent,
			"Accept":     "application/json",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	return body, nil
}

// GetRawWithRetry retries transient failures (5xx, 429, transport errors)
// up to attempts times. Every attempt gets its own timeout.
func (b *HTTPServiceBase) GetRawWithRetry(ctx context.Context, path string, query map[string][]string, timeout time.Duration, attempts int) ([]byte, error) {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 1; i <= attempts; i++ {
		var body []byte
		body, err = b.getWithTimeout(ctx, path, query, timeout)
		if err == nil {
			return body, nil
		}
		if i == attempts || !retryable(err) {
			break
		}
		// simple backoff
		select {
		case <-time.After(time.Duration(i) * 100 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, err
}

func (b *HTTPServiceBase) getWithTimeout(ctx context.Context, path string, query map[string][]string, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return b.GetRaw(ctx, path, query)
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var se *xhttp.StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}
	return true
}
