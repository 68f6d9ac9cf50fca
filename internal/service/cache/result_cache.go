package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"FinScan/internal/domain/models"
	domrepo "FinScan/internal/domain/repository"
	applogger "FinScan/pkg/logger"
	"FinScan/pkg/util"
)

// DefaultResultTTL is how long a scan stays fresh.
const DefaultResultTTL = 15 * time.Minute

type resultEntry struct {
	key      string
	result   *models.ScanResult
	storedAt time.Time
}

// ResultCache memoizes completed scans per scan type and calendar date.
// Only the latest entry per scan type is kept in process; an optional
// BytesCache mirrors entries for other replicas.
// Returned results are shared and must be treated as read-only.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[models.ScanType]resultEntry
	ttl     time.Duration
	loc     *time.Location
	now     func() time.Time
	shared  BytesCache
	metrics domrepo.Metrics
	l       *applogger.Logger
}

type ResultCacheOption func(*ResultCache)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) ResultCacheOption {
	return func(c *ResultCache) { c.now = now }
}

// WithShared mirrors entries into b.
func WithShared(b BytesCache) ResultCacheOption {
	return func(c *ResultCache) { c.shared = b }
}

func WithMetrics(m domrepo.Metrics) ResultCacheOption {
	return func(c *ResultCache) { c.metrics = m }
}

func WithLogger(l *applogger.Logger) ResultCacheOption {
	return func(c *ResultCache) { c.l = l }
}

// NewResultCache creates a cache whose day keys are computed in loc.
func NewResultCache(ttl time.Duration, loc *time.Location, opts ...ResultCacheOption) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	c := &ResultCache{
		entries: make(map[models.ScanType]resultEntry),
		ttl:     ttl,
		loc:     loc,
		now:     time.Now,
		l:       applogger.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Key is the cache key for scanType at t, e.g. "swing_2024-10-11".
func (c *ResultCache) Key(scanType models.ScanType, t time.Time) string {
	return string(scanType) + "_" + util.DayKey(t, c.loc)
}

// TTL returns the freshness window.
func (c *ResultCache) TTL() time.Duration { return c.ttl }

// Get returns the stored scan when its key matches today and it is younger
// than the TTL.
func (c *ResultCache) Get(ctx context.Context, scanType models.ScanType) (*models.ScanResult, bool) {
	now := c.now()
	key := c.Key(scanType, now)

	c.mu.RLock()
	e, ok := c.entries[scanType]
	c.mu.RUnlock()
	if ok && e.key == key && now.Sub(e.storedAt) < c.ttl {
		c.record(scanType, true)
		return e.result, true
	}

	if r, ok := c.getShared(ctx, key, now); ok {
		c.store(scanType, key, r, r.ScannedAt)
		c.record(scanType, true)
		return r, true
	}
	c.record(scanType, false)
	return nil, false
}

// Put stores r under today's key for its scan type, replacing any older
// entry for that type.
func (c *ResultCache) Put(ctx context.Context, r *models.ScanResult) {
	if r == nil {
		return
	}
	now := c.now()
	key := c.Key(r.ScanType, now)
	c.store(r.ScanType, key, r, now)

	if c.shared == nil {
		return
	}
	b, err := json.Marshal(r)
	if err != nil {
		c.l.Warn("encode cached scan", applogger.String("key", key), applogger.Error(err))
		return
	}
	if err := c.shared.SetBytes(ctx, key, b, c.ttl); err != nil {
		c.l.Warn("mirror cached scan", applogger.String("key", key), applogger.Error(err))
	}
}

func (c *ResultCache) store(scanType models.ScanType, key string, r *models.ScanResult, at time.Time) {
	c.mu.Lock()
	c.entries[scanType] = resultEntry{key: key, result: r, storedAt: at}
	c.mu.Unlock()
}

func (c *ResultCache) getShared(ctx context.Context, key string, now time.Time) (*models.ScanResult, bool) {
	if c.shared == nil {
		return nil, false
	}
	b, ok, err := c.shared.GetBytes(ctx, key)
	if err != nil {
		c.l.Warn("shared cache read", applogger.String("key", key), applogger.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var r models.ScanResult
	if err := json.Unmarshal(b, &r); err != nil {
		c.l.Warn("decode cached scan", applogger.String("key", key), applogger.Error(err))
		return nil, false
	}
	if now.Sub(r.ScannedAt) >= c.ttl {
		return nil, false
	}
	return &r, true
}

func (c *ResultCache) record(scanType models.ScanType, hit bool) {
	if c.metrics != nil {
		c.metrics.RecordCacheLookup(string(scanType), hit)
	}
	c.l.Debug("result cache lookup", applogger.String("scan_type", string(scanType)), applogger.Bool("hit", hit))
}
