package server

import (
	"context"
	"errors"
	"testing"

	"FinScan/pkg/config"
	xhttp "FinScan/pkg/http"
	applogger "FinScan/pkg/logger"
)

type recordingCloser struct {
	name  string
	order *[]string
	err   error
}

func (c recordingCloser) Close() error {
	*c.order = append(*c.order, c.name)
	return c.err
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	srv := xhttp.NewServer(nil, applogger.Nop(), xhttp.WithHost("127.0.0.1"), xhttp.WithPort(0))
	return New(cfg, applogger.Nop(), srv)
}

func TestRunContextClosesInOrder(t *testing.T) {
	app := newTestApp(t)
	var order []string
	app.OnShutdown("publisher", recordingCloser{name: "publisher", order: &order})
	app.OnShutdown("redis", recordingCloser{name: "redis", order: &order})
	app.OnShutdown("nil", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := app.RunContext(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != "publisher" || order[1] != "redis" {
		t.Fatalf("unexpected close order %v", order)
	}
}

func TestRunContextReportsCloseErrors(t *testing.T) {
	app := newTestApp(t)
	var order []string
	boom := errors.New("boom")
	app.OnShutdown("publisher", recordingCloser{name: "publisher", order: &order, err: boom})
	app.OnShutdown("redis", recordingCloser{name: "redis", order: &order})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := app.RunContext(ctx)
	if !errors.Is(err, boom) {
		t.Fatalf("expected close error, got %v", err)
	}
	if len(order) != 2 {
		t.Fatalf("every closer must run, got %v", order)
	}
}
