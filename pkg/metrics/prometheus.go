package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	errorsTotal  *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	fetches      *prometheus.CounterVec
	outcomes     *prometheus.CounterVec
	signals      *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
}

// New creates a recorder registered on the default registry.
func New() *Recorder {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a recorder registered on reg.
func NewWithRegistry(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finscan_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finscan_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
			},
			[]string{"operation"},
		),
		fetches: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finscan_upstream_fetches_total",
				Help: "Upstream data fetches by source and result",
			},
			[]string{"source", "ok"},
		),
		outcomes: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finscan_symbol_outcomes_total",
				Help: "Per-symbol strategy outcomes",
			},
			[]string{"strategy", "outcome"},
		),
		signals: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finscan_signals_total",
				Help: "Signals emitted per scan type and strategy",
			},
			[]string{"scan_type", "strategy"},
		),
		cacheLookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finscan_result_cache_lookups_total",
				Help: "Result cache lookups by scan type and outcome",
			},
			[]string{"scan_type", "hit"},
		),
	}
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

func (r *Recorder) RecordFetch(source string, ok bool) {
	r.fetches.WithLabelValues(source, strconv.FormatBool(ok)).Inc()
}

func (r *Recorder) RecordOutcome(strategy, kind string) {
	r.outcomes.WithLabelValues(strategy, kind).Inc()
}

func (r *Recorder) RecordSignals(scanType, strategy string, n int) {
	r.signals.WithLabelValues(scanType, strategy).Add(float64(n))
}

func (r *Recorder) RecordCacheLookup(scanType string, hit bool) {
	r.cacheLookups.WithLabelValues(scanType, strconv.FormatBool(hit)).Inc()
}

// Nop discards everything. Used by tests and when metrics are disabled.
type Nop struct{}

func (Nop) RecordError(string) {}
func (Nop) RecordLatency(string, float64) {}
func (Nop) RecordFetch(string, bool) {}
func (Nop) RecordOutcome(string, string) {}
func (Nop) RecordSignals(string, string, int) {}
func (Nop) RecordCacheLookup(string, bool) {}
