package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
)

type memWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *memWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *memWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishEncodesJSONAndHeaders(t *testing.T) {
	w := &memWriter{}
	reg := prometheus.NewRegistry()
	p := NewProducerWithWriter(w, "gzip", reg)

	err := p.Publish(context.Background(), "scans", []byte("swing"), map[string]int{"count": 3}, Header{Key: "scan_type", Value: "swing"})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(w.msgs))
	}
	m := w.msgs[0]
	if m.Topic != "scans" || string(m.Key) != "swing" || string(m.Value) != `{"count":3}` {
		t.Fatalf("unexpected message %+v", m)
	}
	if len(m.Headers) != 1 || m.Headers[0].Key != "scan_type" || string(m.Headers[0].Value) != "swing" {
		t.Fatalf("unexpected headers %+v", m.Headers)
	}
	if got := testutil.ToFloat64(p.metrics.msgs.WithLabelValues("scans", "gzip", "ok")); got != 1 {
		t.Fatalf("expected 1 ok message, got %v", got)
	}
	_ = p.Close()
	if !w.closed {
		t.Fatalf("close must reach the writer")
	}
}

func TestPublishErrorIsWrapped(t *testing.T) {
	boom := errors.New("broker down")
	p := NewProducerWithWriter(&memWriter{err: boom}, "gzip", nil)
	if err := p.Publish(context.Background(), "scans", nil, "raw"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	if _, err := NewProducer(ProducerConfig{}, nil); err == nil {
		t.Fatalf("expected error without brokers")
	}
	if _, err := NewProducer(ProducerConfig{Brokers: []string{"localhost:9092"}, RequiredAcks: 5}, nil); err == nil {
		t.Fatalf("expected error for invalid acks")
	}
	p, err := NewProducer(ProducerConfig{Brokers: []string{"localhost:9092"}, Compression: "zstd", HashByKey: true}, nil)
	if err != nil {
		t.Fatalf("new producer: %v", err)
	}
	_ = p.Close()
}

func TestProducerConfigDefaults(t *testing.T) {
	c := ProducerConfig{Brokers: []string{"b:9092"}, BatchSize: 10}.withDefaults()
	d := DefaultProducerConfig()
	if c.BatchSize != 10 || c.MaxAttempts != d.MaxAttempts || c.Compression != "gzip" || c.BatchTimeout != d.BatchTimeout {
		t.Fatalf("unexpected config %+v", c)
	}
	w := c.writer()
	if _, ok := w.Balancer.(*kafka.LeastBytes); !ok {
		t.Fatalf("expected least-bytes balancer without key hashing")
	}
}

func TestParseCompression(t *testing.T) {
	if parseCompression("snappy") != kafka.Snappy || parseCompression("bogus") != kafka.Gzip {
		t.Fatalf("unexpected compression mapping")
	}
}
