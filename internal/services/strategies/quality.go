package strategies

import (
	"context"
	"fmt"

	"FinScan/internal/domain/models"
	domrepo "FinScan/internal/domain/repository"
	"FinScan/internal/services/signals"
)

// Quality screens fundamentals and scores the survivors.
type Quality struct {
	funds domrepo.FundamentalsSource
}

func NewQuality(funds domrepo.FundamentalsSource) *Quality { return &Quality{funds: funds} }

func (s *Quality) Name() string { return NameQuality }
func (s *Quality) Category() models.ScanType { return models.ScanLongterm }

func (s *Quality) Evaluate(ctx context.Context, symbol string) (*models.Signal, error) {
	price, err := s.funds.FetchPrice(ctx, symbol)
	if err != nil {
		return nil, err
	}
	f, err := s.funds.FetchFundamentals(ctx, symbol)
	if err != nil {
		return nil, err
	}

	roe := f.ReturnOnEquity * 100
	eg := f.EarningsGrowth * 100
	rg := f.RevenueGrowth * 100
	pe, de := f.ForwardPE, f.DebtToEquity
	if roe <= 15 || de >= 100 || pe <= 0 || price <= 0 {
		return nil, nil
	}

	score := QualityScore(roe, de, eg, rg, pe)
	if score < 45 {
		return nil, nil
	}
	sig := signals.Build(signals.Draft{
		Symbol:     symbol,
		Algorithm:  NameQuality,
		Category:   models.ScanLongterm,
		Direction:  models.DirectionAccumulate,
		Entry:      price,
		StopLoss:   price * 0.85,
		Target1:    price * 1.20,
		Target2:    price * 1.40,
		Confidence: signals.Confidence(float64(score), 45, 90),
		Timeframe:  "Long-term (3-12 months)",
		Detail:     qualityDetail(roe, de, eg, score),
		RiskReward: "1:3",
		Tags:       []string{"Quality", "Value", "Fundamental"},
	})
	return &sig, nil
}

// QualityScore weights the ratios (all in percent except P/E).
func QualityScore(roe, de, eg, rg, pe float64) int {
	score := 0
	switch {
	case roe > 20:
		score += 20
	case roe > 15:
		score += 12
	}
	switch {
	case de < 30:
		score += 20
	case de < 60:
		score += 12
	}
	switch {
	case eg > 15:
		score += 25
	case eg > 10:
		score += 15
	}
	if rg > 10 {
		score += 15
	}
	if pe < 25 {
		score += 10
	}
	return score
}

func qualityDetail(roe, de, eg float64, score int) string {
	sign := ""
	if eg >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("ROE %.0f%% | D/E %.0f | EPS growth %s%.0f%% | Score %d/100", roe, de, sign, eg, score)
}
