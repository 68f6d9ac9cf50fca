package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"FinScan/internal/domain/models"
	pkgkafka "FinScan/pkg/kafka"

	"github.com/segmentio/kafka-go"
)

type memWriter struct{ msgs []kafka.Message }

func (w *memWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *memWriter) Close() error { return nil }

func TestKafkaScanPublisherPayload(t *testing.T) {
	w := &memWriter{}
	pub := NewKafkaScanPublisher(pkgkafka.NewProducerWithWriter(w, "gzip", nil), "finscan.scans")

	res := &models.ScanResult{
		ScanID:    "scan-1",
		ScanType:  models.ScanSwing,
		ScannedAt: time.Date(2024, 10, 10, 5, 30, 0, 0, time.UTC),
		Count:     1,
		Universe:  133,
		Signals:   []models.Signal{{Symbol: "TCS", Algorithm: "EMA 9/21 Crossover", Confidence: 60}},
	}
	if err := pub.Publish(context.Background(), res); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(w.msgs) != 1 || string(w.msgs[0].Key) != "swing" || w.msgs[0].Topic != "finscan.scans" {
		t.Fatalf("unexpected messages %+v", w.msgs)
	}

	var ev ScanEvent
	if err := json.Unmarshal(w.msgs[0].Value, &ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.EventType != "scan.completed" || ev.ScanID != "scan-1" || ev.EventID == "" || len(ev.Signals) != 1 {
		t.Fatalf("unexpected event %+v", ev)
	}
	if err := pub.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	if p.Publish(context.Background(), &models.ScanResult{}) != nil || p.Close() != nil {
		t.Fatalf("nop publisher must never fail")
	}
}
