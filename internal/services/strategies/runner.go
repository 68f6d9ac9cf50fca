package strategies

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"FinScan/internal/domain/models"
	domrepo "FinScan/internal/domain/repository"
	"FinScan/internal/domain/service"
	applogger "FinScan/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome of one strategy over one universe slice.
// Outcomes are indexed like the input symbols.
type BatchResult struct {
	Strategy    string
	Outcomes    []models.SymbolOutcome
	Diagnostics models.StrategyDiagnostics
	Err         error
}

// Signals returns the emitted signals in universe order.
func (b BatchResult) Signals() []models.Signal {
	out := make([]models.Signal, 0, b.Diagnostics.Signals)
	for _, o := range b.Outcomes {
		if o.Signal != nil {
			out = append(out, *o.Signal)
		}
	}
	return out
}

// Runner evaluates a strategy over many symbols with a bounded worker pool.
// A failing or panicking symbol never aborts the batch.
type Runner struct {
	workers int
	metrics domrepo.Metrics
	l       *applogger.Logger
}

func NewRunner(workers int, metrics domrepo.Metrics, l *applogger.Logger) *Runner {
	if workers <= 0 {
		workers = 8
	}
	return &Runner{workers: workers, metrics: metrics, l: l}
}

// Run evaluates s for every symbol. The batch counts as failed when every
// attempted symbol errored or ctx ended first.
func (r *Runner) Run(ctx context.Context, s service.Strategy, symbols []string) BatchResult {
	start := time.Now()
	name := s.Name()
	outcomes := make([]models.SymbolOutcome, len(symbols))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, sym := range symbols {
		g.Go(func() error {
			outcomes[i] = r.evaluate(ctx, s, sym)
			return nil
		})
	}
	_ = g.Wait()

	res := BatchResult{Strategy: name, Outcomes: outcomes}
	d := models.StrategyDiagnostics{Strategy: name, Attempted: len(symbols)}
	var firstErr string
	for _, o := range outcomes {
		switch o.Kind {
		case models.OutcomeEvaluated:
			d.Evaluated++
			if o.Signal != nil {
				d.Signals++
			}
		case models.OutcomeSkipped:
			d.Skipped++
		case models.OutcomeErrored:
			d.Errored++
			if firstErr == "" {
				firstErr = o.Reason
			}
		}
		r.metrics.RecordOutcome(name, string(o.Kind))
	}

	switch {
	case ctx.Err() != nil:
		res.Err = fmt.Errorf("%s: %w", name, ctx.Err())
	case d.Attempted > 0 && d.Errored == d.Attempted:
		res.Err = fmt.Errorf("%s: all %d symbols errored, first: %s", name, d.Attempted, firstErr)
	}
	if res.Err != nil {
		d.Failed = true
		d.Error = res.Err.Error()
	}
	res.Diagnostics = d

	r.metrics.RecordLatency("strategy_batch", time.Since(start).Seconds())
	r.l.Debug("strategy batch done",
		applogger.String("strategy", name),
		applogger.Int("attempted", d.Attempted),
		applogger.Int("evaluated", d.Evaluated),
		applogger.Int("skipped", d.Skipped),
		applogger.Int("errored", d.Errored),
		applogger.Int("signals", d.Signals),
		applogger.Duration("duration_ms", time.Since(start)),
	)
	return res
}

func (r *Runner) evaluate(ctx context.Context, s service.Strategy, symbol string) (out models.SymbolOutcome) {
	out.Symbol = symbol
	defer func() {
		if rec := recover(); rec != nil {
			out = models.SymbolOutcome{Symbol: symbol, Kind: models.OutcomeErrored, Reason: fmt.Sprintf("panic: %v", rec)}
			r.l.Error("strategy panic",
				applogger.String("strategy", s.Name()),
				applogger.String("symbol", symbol),
				applogger.Any("panic", rec),
				applogger.String("stack", string(debug.Stack())),
			)
		}
	}()

	if err := ctx.Err(); err != nil {
		out.Kind, out.Reason = models.OutcomeErrored, err.Error()
		return out
	}
	sig, err := s.Evaluate(ctx, symbol)
	switch {
	case err == nil:
		out.Kind, out.Signal = models.OutcomeEvaluated, sig
	case errors.Is(err, models.ErrInsufficientHistory):
		out.Kind, out.Reason = models.OutcomeSkipped, err.Error()
	default:
		out.Kind, out.Reason = models.OutcomeErrored, err.Error()
		r.l.Debug("symbol evaluation failed",
			applogger.String("strategy", s.Name()),
			applogger.String("symbol", symbol),
			applogger.Error(err),
		)
	}
	return out
}
