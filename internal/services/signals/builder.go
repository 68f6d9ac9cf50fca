// Package signals assembles canonical signal records from strategy findings.
package signals

import (
	"math"
	"strings"

	"FinScan/internal/domain/models"

	"github.com/shopspring/decimal"
)

// exchangeSuffixes are stripped from display symbols.
var exchangeSuffixes = []string{".NS", ".BO"}

// Draft is what a strategy knows about a setup before normalisation.
type Draft struct {
	Symbol     string
	Algorithm  string
	Category   models.ScanType
	Direction  models.Direction
	Entry      float64
	StopLoss   float64
	Target1    float64
	Target2    float64
	Confidence int
	Timeframe  string
	Detail     string
	RiskReward string
	Tags       []string
}

// Build rounds prices to one decimal, strips the exchange suffix and copies
// tags so the returned signal shares nothing with the draft.
func Build(d Draft) models.Signal {
	tags := make([]string, len(d.Tags))
	copy(tags, d.Tags)
	return models.Signal{
		Symbol:     DisplaySymbol(d.Symbol),
		Algorithm:  d.Algorithm,
		Category:   d.Category,
		Direction:  d.Direction,
		Entry:      RoundPrice(d.Entry),
		StopLoss:   RoundPrice(d.StopLoss),
		Target1:    RoundPrice(d.Target1),
		Target2:    RoundPrice(d.Target2),
		Confidence: d.Confidence,
		Timeframe:  d.Timeframe,
		Detail:     d.Detail,
		RiskReward: d.RiskReward,
		Tags:       tags,
	}
}

// DisplaySymbol strips a trailing exchange suffix.
func DisplaySymbol(symbol string) string {
	for _, sfx := range exchangeSuffixes {
		if strings.HasSuffix(symbol, sfx) {
			return strings.TrimSuffix(symbol, sfx)
		}
	}
	return symbol
}

// RoundPrice rounds half away from zero to one decimal place. Non-finite
// values become 0.
func RoundPrice(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

// Confidence floors raw to an integer and clamps it to [floor, ceiling].
func Confidence(raw float64, floor, ceiling int) int {
	if math.IsNaN(raw) {
		return floor
	}
	c := int(math.Floor(raw))
	if c < floor {
		return floor
	}
	if c > ceiling {
		return ceiling
	}
	return c
}
