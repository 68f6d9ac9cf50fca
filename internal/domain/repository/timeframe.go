package repository

import "FinScan/internal/domain/models"

// IsValidInterval returns true if iv is a supported bar size.
func IsValidInterval(iv Interval) bool {
	switch iv {
	case Interval5m, Interval1d:
		return true
	default:
		return false
	}
}

// IsValidRange returns true if r is a supported lookback window.
func IsValidRange(r Range) bool {
	switch r {
	case Range2d, Range5d, Range3mo, Range1y:
		return true
	default:
		return false
	}
}

// IsValidScanType returns true if st is a supported scan type.
func IsValidScanType(st models.ScanType) bool {
	switch st {
	case models.ScanIntraday, models.ScanSwing, models.ScanLongterm:
		return true
	default:
		return false
	}
}

// DefaultScanType returns the scan type used when none is requested.
func DefaultScanType() models.ScanType { return models.ScanSwing }

// ParseScanType converts a raw selector into a scan type. Empty input yields
// the default; anything unknown is rejected.
func ParseScanType(s string) (models.ScanType, error) {
	if s == "" {
		return DefaultScanType(), nil
	}
	st := models.ScanType(s)
	if !IsValidScanType(st) {
		return "", models.ErrUnknownScanType
	}
	return st, nil
}
