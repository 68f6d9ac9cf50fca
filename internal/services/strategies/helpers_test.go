package strategies

import (
	"context"
	"sync"

	"FinScan/internal/domain/models"
	domrepo "FinScan/internal/domain/repository"
)

type fakeQuotes struct {
	mu    sync.Mutex
	bars  map[string][]models.Bar
	errs  map[string]error
	calls int
}

func (f *fakeQuotes) FetchHistory(ctx context.Context, symbol string, rng domrepo.Range, interval domrepo.Interval) ([]models.Bar, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if err := f.errs[symbol]; err != nil {
		return nil, err
	}
	return f.bars[symbol], nil
}

type fakeFunds struct {
	price float64
	f     models.Fundamentals
	err   error
}

func (f *fakeFunds) FetchPrice(ctx context.Context, symbol string) (float64, error) {
	return f.price, f.err
}

func (f *fakeFunds) FetchFundamentals(ctx context.Context, symbol string) (models.Fundamentals, error) {
	return f.f, f.err
}

// barsFromCloses builds bars with high/low one point around the close.
func barsFromCloses(closes []float64, volume float64) []models.Bar {
	out := make([]models.Bar, len(closes))
	for i, c := range closes {
		out[i] = models.Bar{Open: c, High: c + 1, Low: c - 1, Close: c, Volume: volume}
	}
	return out
}

func flat(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
