package usecase

import (
	"FinScan/internal/domain/models"
	domrepo "FinScan/internal/domain/repository"
	"FinScan/internal/domain/service"
	"FinScan/internal/services/strategies"
)

// Step binds a strategy to the leading slice of the universe it scans.
type Step struct {
	Strategy service.Strategy
	Limit    int
}

// Plans maps each scan type to its ordered steps. Step order is merge order.
type Plans map[models.ScanType][]Step

// DefaultPlans wires the strategy suite. Fundamentals are the expensive
// fetch, so the long-term slice is the shortest.
func DefaultPlans(quotes domrepo.QuoteSource, funds domrepo.FundamentalsSource, intradayORB bool) Plans {
	intraday := []Step{{Strategy: strategies.NewSupertrend(quotes), Limit: 60}}
	if intradayORB {
		intraday = append(intraday, Step{Strategy: strategies.NewORB(quotes), Limit: 20})
	}
	return Plans{
		models.ScanIntraday: intraday,
		models.ScanSwing: {
			{Strategy: strategies.NewBreakout(quotes), Limit: 80},
			{Strategy: strategies.NewRSIBounce(quotes), Limit: 80},
			{Strategy: strategies.NewEMACross(quotes), Limit: 80},
			{Strategy: strategies.NewSqueeze(quotes), Limit: 60},
		},
		models.ScanLongterm: {
			{Strategy: strategies.NewQuality(funds), Limit: 25},
		},
	}
}
