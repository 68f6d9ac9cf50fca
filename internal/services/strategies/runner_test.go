package strategies

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"FinScan/internal/domain/models"
	applogger "FinScan/pkg/logger"
	"FinScan/pkg/metrics"
)

// scriptedStrategy returns a canned behaviour per symbol.
type scriptedStrategy struct {
	calls atomic.Int32
}

func (s *scriptedStrategy) Name() string { return "Scripted" }
func (s *scriptedStrategy) Category() models.ScanType { return models.ScanSwing }

func (s *scriptedStrategy) Evaluate(_ context.Context, symbol string) (*models.Signal, error) {
	s.calls.Add(1)
	switch {
	case strings.HasPrefix(symbol, "SIG"):
		return &models.Signal{Symbol: symbol, Algorithm: "Scripted", Confidence: 70}, nil
	case strings.HasPrefix(symbol, "NONE"):
		return nil, nil
	case strings.HasPrefix(symbol, "SHORT"):
		return nil, models.InsufficientHistory(3, 60)
	case strings.HasPrefix(symbol, "PANIC"):
		panic("boom")
	default:
		return nil, models.Unavailable("test", symbol, errors.New("upstream down"))
	}
}

func newTestRunner(workers int) *Runner {
	return NewRunner(workers, metrics.Nop{}, applogger.Nop())
}

func TestRunnerClassifiesOutcomes(t *testing.T) {
	symbols := []string{"SIG1", "NONE1", "SHORT1", "ERR1", "PANIC1", "SIG2"}
	s := &scriptedStrategy{}
	res := newTestRunner(3).Run(context.Background(), s, symbols)

	if res.Err != nil {
		t.Fatalf("partial failure must not fail the batch: %v", res.Err)
	}
	if int(s.calls.Load()) != len(symbols) {
		t.Fatalf("expected %d calls, got %d", len(symbols), s.calls.Load())
	}
	for i, o := range res.Outcomes {
		if o.Symbol != symbols[i] {
			t.Fatalf("outcome %d out of order: %s", i, o.Symbol)
		}
	}
	want := []models.OutcomeKind{
		models.OutcomeEvaluated, models.OutcomeEvaluated, models.OutcomeSkipped,
		models.OutcomeErrored, models.OutcomeErrored, models.OutcomeEvaluated,
	}
	for i, k := range want {
		if res.Outcomes[i].Kind != k {
			t.Fatalf("symbol %s: expected %s, got %s", symbols[i], k, res.Outcomes[i].Kind)
		}
	}
	if !strings.Contains(res.Outcomes[4].Reason, "panic") {
		t.Fatalf("expected panic reason, got %q", res.Outcomes[4].Reason)
	}

	d := res.Diagnostics
	if d.Attempted != 6 || d.Evaluated != 3 || d.Skipped != 1 || d.Errored != 2 || d.Signals != 2 || d.Failed {
		t.Fatalf("unexpected diagnostics %+v", d)
	}
	sigs := res.Signals()
	if len(sigs) != 2 || sigs[0].Symbol != "SIG1" || sigs[1].Symbol != "SIG2" {
		t.Fatalf("unexpected signals %+v", sigs)
	}
}

func TestRunnerAllErroredFailsBatch(t *testing.T) {
	res := newTestRunner(2).Run(context.Background(), &scriptedStrategy{}, []string{"ERR1", "ERR2", "PANIC"})
	if res.Err == nil {
		t.Fatalf("expected batch failure")
	}
	if !res.Diagnostics.Failed || res.Diagnostics.Error == "" {
		t.Fatalf("expected failed diagnostics, got %+v", res.Diagnostics)
	}
}

func TestRunnerAllSkippedIsNotFailure(t *testing.T) {
	res := newTestRunner(2).Run(context.Background(), &scriptedStrategy{}, []string{"SHORT1", "SHORT2"})
	if res.Err != nil || res.Diagnostics.Failed {
		t.Fatalf("skips must not fail the batch: %v", res.Err)
	}
	if len(res.Signals()) != 0 {
		t.Fatalf("expected no signals")
	}
}

func TestRunnerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &scriptedStrategy{}
	res := newTestRunner(2).Run(ctx, s, []string{"SIG1", "SIG2"})
	if !errors.Is(res.Err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", res.Err)
	}
	if s.calls.Load() != 0 {
		t.Fatalf("strategy must not run on a cancelled context")
	}
}

func TestRunnerEmptyUniverse(t *testing.T) {
	res := newTestRunner(0).Run(context.Background(), &scriptedStrategy{}, nil)
	if res.Err != nil || res.Diagnostics.Attempted != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRunnerLargeBatchKeepsOrder(t *testing.T) {
	symbols := make([]string, 200)
	for i := range symbols {
		symbols[i] = fmt.Sprintf("SIG%03d", i)
	}
	res := newTestRunner(8).Run(context.Background(), &scriptedStrategy{}, symbols)
	sigs := res.Signals()
	if len(sigs) != len(symbols) {
		t.Fatalf("expected %d signals, got %d", len(symbols), len(sigs))
	}
	for i, s := range sigs {
		if s.Symbol != symbols[i] {
			t.Fatalf("signal %d out of order: %s", i, s.Symbol)
		}
	}
}
