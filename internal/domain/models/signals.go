package models

import "time"

// ScanType selects the strategy set and universe slice of a scan.
type ScanType string

const (
	ScanIntraday ScanType = "intraday"
	ScanSwing    ScanType = "swing"
	ScanLongterm ScanType = "longterm"
)

// OutcomeKind classifies what happened to one symbol inside a strategy batch.
type OutcomeKind string

const (
	OutcomeEvaluated OutcomeKind = "evaluated"
	OutcomeSkipped   OutcomeKind = "skipped"
	OutcomeErrored   OutcomeKind = "errored"
)

// SymbolOutcome is the typed per-symbol result of a strategy.
type SymbolOutcome struct {
	Symbol string
	Kind   OutcomeKind
	Signal *Signal
	Reason string
}

// StrategyDiagnostics summarises one strategy batch.
type StrategyDiagnostics struct {
	Strategy  string `json:"strategy"`
	Attempted int    `json:"attempted"`
	Evaluated int    `json:"evaluated"`
	Skipped   int    `json:"skipped"`
	Errored   int    `json:"errored"`
	Signals   int    `json:"signals"`
	Failed    bool   `json:"failed"`
	Error     string `json:"error,omitempty"`
}

// ScanDiagnostics lets clients tell "nothing qualified" apart from
// "upstream failed".
type ScanDiagnostics struct {
	Attempted  int                   `json:"attempted"`
	Succeeded  int                   `json:"succeeded"`
	Skipped    int                   `json:"skipped"`
	Errored    int                   `json:"errored"`
	Strategies []StrategyDiagnostics `json:"strategies"`
}

// ScanResult is the envelope returned by GET /scanner.
type ScanResult struct {
	ScanID        string          `json:"scan_id"`
	ScanType      ScanType        `json:"scan_type"`
	Signals       []Signal        `json:"signals"`
	Count         int             `json:"count"`
	Universe      int             `json:"universe"`
	ScannedAt     time.Time       `json:"scanned_at"`
	MarketStatus  string          `json:"market_status"`
	MarketPhase   string          `json:"market_phase"`
	SessionTarget string          `json:"session_target"`
	MarketNote    string          `json:"market_note"`
	Diagnostics   ScanDiagnostics `json:"diagnostics"`
}

// SessionStatus is informational market-session metadata.
type SessionStatus struct {
	Open          bool
	Status        string
	Phase         string
	SessionTarget string
	Note          string
}
