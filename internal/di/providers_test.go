package di

import (
	"path/filepath"
	"testing"
	"time"

	internalrepo "FinScan/internal/repository"
	"FinScan/internal/service/session"
	"FinScan/pkg/config"
	applogger "FinScan/pkg/logger"
)

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Log.Level = "error"
	return cfg
}

func TestInitializeAppWithDefaults(t *testing.T) {
	app, err := InitializeApp(defaultConfig(t))
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if app == nil {
		t.Fatalf("expected app")
	}
}

func TestOptionalInfrastructureDisabled(t *testing.T) {
	cfg := defaultConfig(t)

	rc, err := ProvideRedisCache(cfg)
	if err != nil || rc != nil {
		t.Fatalf("disabled redis must yield nil cache, got %v %v", rc, err)
	}
	p, err := ProvideKafkaProducer(cfg, ProvideRegistry())
	if err != nil || p != nil {
		t.Fatalf("disabled kafka must yield nil producer, got %v %v", p, err)
	}
	if _, ok := ProvideScanPublisher(nil, cfg).(internalrepo.NopPublisher); !ok {
		t.Fatalf("expected nop publisher")
	}
}

func TestUniverseOverride(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Scanner.Universe = []string{"TCS.NS", "INFY.NS", "TCS.NS"}
	u := ProvideUniverse(cfg)
	if len(u) != 2 || u[0] != "TCS.NS" || u[1] != "INFY.NS" {
		t.Fatalf("unexpected universe %v", u)
	}
}

func TestResultCacheUsesExchangeZone(t *testing.T) {
	cfg := defaultConfig(t)
	clock := ProvideSessionClock(cfg, applogger.Nop())
	rc := ProvideResultCache(cfg, clock, nil, ProvideMetrics(ProvideRegistry()), applogger.Nop())
	if rc.TTL() != cfg.Scanner.CacheTTL {
		t.Fatalf("expected ttl %s, got %s", cfg.Scanner.CacheTTL, rc.TTL())
	}
	if clock.Location().String() != "Asia/Kolkata" {
		t.Fatalf("unexpected zone %s", clock.Location())
	}
}

func TestSampleConfigClockReportsNSEHolidays(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "..", "configs", "config.yaml"))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	clock := ProvideSessionClock(cfg, applogger.Nop())
	ist := time.FixedZone("IST", 19800)

	cases := []struct {
		at    time.Time
		phase string
	}{
		{time.Date(2025, 8, 15, 10, 0, 0, 0, ist), session.PhaseHoliday},
		{time.Date(2026, 1, 26, 10, 0, 0, 0, ist), session.PhaseHoliday},
		{time.Date(2025, 8, 14, 10, 0, 0, 0, ist), session.PhaseOpen},
	}
	for _, tc := range cases {
		if st := clock.StatusAt(tc.at); st.Phase != tc.phase {
			t.Fatalf("%s: expected %s, got %+v", tc.at.Format(time.DateOnly), tc.phase, st)
		}
	}
}
