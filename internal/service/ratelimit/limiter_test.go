package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAllowConsumesCapacity(t *testing.T) {
	l := New()
	now := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	for i := 0; i < 3; i++ {
		if !l.Allow("k", 3, 1) {
			t.Fatalf("expected token %d", i)
		}
	}
	if l.Allow("k", 3, 1) {
		t.Fatalf("expected bucket to be empty")
	}
	if !l.Allow("other", 3, 1) {
		t.Fatalf("keys must not share buckets")
	}
	now = now.Add(time.Second)
	if !l.Allow("k", 3, 1) {
		t.Fatalf("expected refill after one second")
	}
}

func TestWaitHonoursContext(t *testing.T) {
	l := New()
	if err := l.Wait(context.Background(), "k", 1, 0); err != nil {
		t.Fatalf("first wait should pass: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx, "k", 1, 0); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestWaitRefills(t *testing.T) {
	l := New()
	_ = l.Allow("k", 1, 100)
	start := time.Now()
	if err := l.Wait(context.Background(), "k", 1, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("wait took too long")
	}
}
