package models

import "time"

// Bar is one OHLCV interval. Sequences are ordered oldest to newest and
// never contain a bar whose close is missing. A missing volume is NaN.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Direction of a signal.
type Direction string

const (
	DirectionBuy        Direction = "BUY"
	DirectionSell       Direction = "SELL"
	DirectionAccumulate Direction = "ACCUMULATE"
)

// Signal is the canonical scanner output for one symbol and one algorithm.
type Signal struct {
	Symbol     string    `json:"symbol"`
	Algorithm  string    `json:"algorithm"`
	Category   ScanType  `json:"algo_type"`
	Direction  Direction `json:"signal"`
	Entry      float64   `json:"entry"`
	StopLoss   float64   `json:"stop_loss"`
	Target1    float64   `json:"target_1"`
	Target2    float64   `json:"target_2"`
	Confidence int       `json:"confidence"`
	Timeframe  string    `json:"timeframe"`
	Detail     string    `json:"detail"`
	RiskReward string    `json:"risk_reward"`
	Tags       []string  `json:"tags"`
}

// Key identifies a signal for deduplication.
func (s Signal) Key() string { return s.Symbol + "_" + s.Algorithm }

// Fundamentals holds the ratios used by the quality screen. Values are raw
// fractions as reported upstream (0.18 means 18%), except DebtToEquity
// which is already a percentage.
type Fundamentals struct {
	ReturnOnEquity float64
	ForwardPE      float64
	DebtToEquity   float64
	EarningsGrowth float64
	RevenueGrowth  float64
}

// DefaultFundamentals are used for every field the source leaves empty.
// They fail the quality screen on purpose.
func DefaultFundamentals() Fundamentals {
	return Fundamentals{DebtToEquity: 999}
}
