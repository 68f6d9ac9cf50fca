package repository

import (
	"context"
	"time"

	"FinScan/internal/domain/models"
	domrepo "FinScan/internal/domain/repository"
	pkgkafka "FinScan/pkg/kafka"

	"github.com/google/uuid"
)

const eventScanCompleted = "scan.completed"

// ScanEvent is the payload published for every fresh scan.
type ScanEvent struct {
	EventID      string                 `json:"event_id"`
	EventType    string                 `json:"event_type"`
	ScanID       string                 `json:"scan_id"`
	ScanType     models.ScanType        `json:"scan_type"`
	ScannedAt    time.Time              `json:"scanned_at"`
	Count        int                    `json:"count"`
	Universe     int                    `json:"universe"`
	MarketStatus string                 `json:"market_status"`
	Signals      []models.Signal        `json:"signals"`
	Diagnostics  models.ScanDiagnostics `json:"diagnostics"`
}

type producer interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}, headers ...pkgkafka.Header) error
	Close() error
}

// KafkaScanPublisher publishes completed scans keyed by scan type.
type KafkaScanPublisher struct {
	producer producer
	topic    string
}

// NewKafkaScanPublisher creates Kafka publisher.
func NewKafkaScanPublisher(p *pkgkafka.Producer, topic string) *KafkaScanPublisher {
	return &KafkaScanPublisher{producer: p, topic: topic}
}

var _ domrepo.ScanPublisher = (*KafkaScanPublisher)(nil)

func (p *KafkaScanPublisher) Publish(ctx context.Context, r *models.ScanResult) error {
	ev := ScanEvent{
		EventID:      uuid.NewString(),
		EventType:    eventScanCompleted,
		ScanID:       r.ScanID,
		ScanType:     r.ScanType,
		ScannedAt:    r.ScannedAt,
		Count:        r.Count,
		Universe:     r.Universe,
		MarketStatus: r.MarketStatus,
		Signals:      r.Signals,
		Diagnostics:  r.Diagnostics,
	}
	return p.producer.Publish(ctx, p.topic, []byte(r.ScanType), ev,
		pkgkafka.Header{Key: "event_type", Value: eventScanCompleted},
		pkgkafka.Header{Key: "scan_id", Value: r.ScanID},
	)
}

func (p *KafkaScanPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// NopPublisher drops every scan. Used when Kafka is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *models.ScanResult) error { return nil }
func (NopPublisher) Close() error { return nil }
