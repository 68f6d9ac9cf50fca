package repository

import (
	"context"

	"FinScan/internal/domain/models"
)

// ScanPublisher emits completed scans to downstream consumers.
type ScanPublisher interface {
	Publish(ctx context.Context, res *models.ScanResult) error
	Close() error
}

type Metrics interface {
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordFetch(source string, ok bool)
	RecordOutcome(strategy, kind string)
	RecordSignals(scanType, strategy string, n int)
	RecordCacheLookup(scanType string, hit bool)
}
