package models

import (
	"errors"
	"fmt"
)

var (
	// ErrDataUnavailable covers network failures, timeouts, non-2xx statuses
	// and empty payloads from an upstream data source.
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrInsufficientHistory is a normal skip: fewer bars than a strategy needs.
	ErrInsufficientHistory = errors.New("insufficient history")
	// ErrTotalScanFailure is returned when every strategy batch of a scan failed.
	ErrTotalScanFailure = errors.New("total scan failure")
	// ErrUnknownScanType is returned for a scan type outside intraday/swing/longterm.
	ErrUnknownScanType = errors.New("unknown scan type")
)

// DataUnavailableError carries the symbol and source of an upstream failure.
type DataUnavailableError struct {
	Source string
	Symbol string
	Err    error
}

func (e *DataUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: data unavailable: %v", e.Source, e.Symbol, e.Err)
	}
	return fmt.Sprintf("%s %s: data unavailable", e.Source, e.Symbol)
}

func (e *DataUnavailableError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDataUnavailable) hold for every DataUnavailableError.
func (e *DataUnavailableError) Is(target error) bool { return target == ErrDataUnavailable }

// Unavailable wraps err as a DataUnavailableError.
func Unavailable(source, symbol string, err error) error {
	return &DataUnavailableError{Source: source, Symbol: symbol, Err: err}
}

// InsufficientHistory reports how many bars were present against the minimum.
func InsufficientHistory(have, need int) error {
	return fmt.Errorf("%w: have %d bars, need %d", ErrInsufficientHistory, have, need)
}
