package usecase

import (
	"context"
	"fmt"
	"runtime/debug"
	"sort"
	"sync"
	"time"

	"FinScan/internal/domain/models"
	domrepo "FinScan/internal/domain/repository"
	"FinScan/internal/service/cache"
	"FinScan/internal/service/session"
	"FinScan/internal/services/strategies"
	applogger "FinScan/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// ScanUseCase runs the strategy plan for a scan type, merges the batches and
// memoizes the result.
type ScanUseCase struct {
	plans     Plans
	universe  Universe
	runner    *strategies.Runner
	cache     *cache.ResultCache
	clock     *session.Clock
	publisher domrepo.ScanPublisher
	metrics   domrepo.Metrics
	l         *applogger.Logger

	flight singleflight.Group
}

func NewScanUseCase(
	plans Plans,
	universe Universe,
	runner *strategies.Runner,
	rc *cache.ResultCache,
	clock *session.Clock,
	publisher domrepo.ScanPublisher,
	metrics domrepo.Metrics,
	l *applogger.Logger,
) *ScanUseCase {
	return &ScanUseCase{
		plans:     plans,
		universe:  universe,
		runner:    runner,
		cache:     rc,
		clock:     clock,
		publisher: publisher,
		metrics:   metrics,
		l:         l,
	}
}

// Scan returns the result for scanType and whether it came from the cache.
// Concurrent callers for the same type share one evaluation, which runs on a
// context detached from the caller so an abandoned request still fills the
// cache.
func (uc *ScanUseCase) Scan(ctx context.Context, scanType models.ScanType) (*models.ScanResult, bool, error) {
	if _, ok := uc.plans[scanType]; !ok {
		return nil, false, fmt.Errorf("%w: %q", models.ErrUnknownScanType, scanType)
	}
	if r, ok := uc.cache.Get(ctx, scanType); ok {
		return r, true, nil
	}

	detached := context.WithoutCancel(ctx)
	ch := uc.flight.DoChan(string(scanType), func() (interface{}, error) {
		r, err := uc.evaluate(detached, scanType)
		if err != nil {
			return nil, err
		}
		uc.cache.Put(detached, r)
		uc.publish(detached, r)
		return r, nil
	})

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, false, res.Err
		}
		return res.Val.(*models.ScanResult), false, nil
	}
}

func (uc *ScanUseCase) evaluate(ctx context.Context, scanType models.ScanType) (*models.ScanResult, error) {
	start := time.Now()
	steps := uc.plans[scanType]

	type item struct {
		idx   int
		batch strategies.BatchResult
	}
	ch := make(chan item, len(steps))
	var wg sync.WaitGroup
	for i, st := range steps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch <- item{i, uc.runStep(ctx, st)}
		}()
	}
	go func() { wg.Wait(); close(ch) }()

	batches := make([]strategies.BatchResult, len(steps))
	for it := range ch {
		batches[it.idx] = it.batch
	}

	scannedAt := uc.clock.Now()
	res, failed := uc.merge(scanType, batches)
	uc.metrics.RecordLatency("scan_"+string(scanType), time.Since(start).Seconds())

	if len(batches) > 0 && failed == len(batches) {
		uc.metrics.RecordError("total_scan_failure")
		uc.l.Error("scan failed",
			applogger.String("scan_type", string(scanType)),
			applogger.Int("strategies", len(batches)),
			applogger.Any("diagnostics", res.Diagnostics),
		)
		return nil, fmt.Errorf("%w: %s", models.ErrTotalScanFailure, scanType)
	}

	st := uc.clock.StatusAt(scannedAt)
	res.ScanID = uuid.NewString()
	res.Universe = len(uc.universe)
	res.ScannedAt = scannedAt
	res.MarketStatus = st.Status
	res.MarketPhase = st.Phase
	res.SessionTarget = st.SessionTarget
	res.MarketNote = st.Note

	uc.l.Info("scan completed",
		applogger.String("scan_id", res.ScanID),
		applogger.String("scan_type", string(scanType)),
		applogger.Int("signals", res.Count),
		applogger.Int("attempted", res.Diagnostics.Attempted),
		applogger.Int("errored", res.Diagnostics.Errored),
		applogger.Duration("duration", time.Since(start)),
	)
	return res, nil
}

// merge concatenates batches in plan order, drops repeated symbol/algorithm
// pairs and sorts by confidence. Failed batches contribute no signals.
func (uc *ScanUseCase) merge(scanType models.ScanType, batches []strategies.BatchResult) (*models.ScanResult, int) {
	res := &models.ScanResult{ScanType: scanType, Signals: []models.Signal{}}
	diag := &res.Diagnostics
	diag.Strategies = make([]models.StrategyDiagnostics, 0, len(batches))

	seen := make(map[string]struct{})
	failed := 0
	for _, b := range batches {
		d := b.Diagnostics
		diag.Strategies = append(diag.Strategies, d)
		diag.Attempted += d.Attempted
		diag.Succeeded += d.Evaluated
		diag.Skipped += d.Skipped
		diag.Errored += d.Errored

		if b.Err != nil {
			failed++
			uc.metrics.RecordError("strategy_batch")
			uc.l.Warn("strategy batch failed",
				applogger.String("scan_type", string(scanType)),
				applogger.String("strategy", b.Strategy),
				applogger.Error(b.Err),
			)
			continue
		}
		added := 0
		for _, s := range b.Signals() {
			k := s.Key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			res.Signals = append(res.Signals, s)
			added++
		}
		uc.metrics.RecordSignals(string(scanType), b.Strategy, added)
	}

	sort.SliceStable(res.Signals, func(i, j int) bool {
		return res.Signals[i].Confidence > res.Signals[j].Confidence
	})
	res.Count = len(res.Signals)
	return res, failed
}

func (uc *ScanUseCase) runStep(ctx context.Context, st Step) (b strategies.BatchResult) {
	name := st.Strategy.Name()
	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("%s: panic: %v", name, rec)
			uc.l.Error("strategy batch panic",
				applogger.String("strategy", name),
				applogger.Any("panic", rec),
				applogger.String("stack", string(debug.Stack())),
			)
			b = strategies.BatchResult{
				Strategy:    name,
				Err:         err,
				Diagnostics: models.StrategyDiagnostics{Strategy: name, Failed: true, Error: err.Error()},
			}
		}
	}()
	return uc.runner.Run(ctx, st.Strategy, uc.universe.Head(st.Limit))
}

func (uc *ScanUseCase) publish(ctx context.Context, r *models.ScanResult) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, r); err != nil {
		uc.metrics.RecordError("publish")
		uc.l.Warn("publish scan", applogger.String("scan_id", r.ScanID), applogger.Error(err))
	}
}
