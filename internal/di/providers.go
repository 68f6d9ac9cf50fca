package di

import (
	"context"
	"fmt"
	"time"

	"FinScan/internal/domain/repository"
	"FinScan/internal/handler/api"
	mid "FinScan/internal/middleware"
	internalrepo "FinScan/internal/repository"
	"FinScan/internal/service/cache"
	"FinScan/internal/service/ratelimit"
	"FinScan/internal/service/session"
	"FinScan/internal/service/yahoo"
	"FinScan/internal/services/strategies"
	"FinScan/internal/usecase"
	"FinScan/pkg/config"
	xhttp "FinScan/pkg/http"
	pkgkafka "FinScan/pkg/kafka"
	applogger "FinScan/pkg/logger"
	"FinScan/pkg/metrics"
	"FinScan/pkg/server"
	"FinScan/pkg/util"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const istOffset = 5*time.Hour + 30*time.Minute

// ProvideLogger creates the application logger from the log section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideRegistry creates the Prometheus registry shared by every collector.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg *prometheus.Registry) repository.Metrics {
	return metrics.NewWithRegistry(reg)
}

// ProvideQuoteClient creates the Yahoo Finance client.
func ProvideQuoteClient(cfg *config.Config) *yahoo.Client {
	return yahoo.New(
		yahoo.WithBaseURL(cfg.Quotes.BaseURL),
		yahoo.WithUserAgent(cfg.Quotes.UserAgent),
		yahoo.WithTimeouts(cfg.Quotes.HistoryTimeout, cfg.Quotes.FundamentalsTimeout),
		yahoo.WithAttempts(cfg.Quotes.Attempts),
	)
}

// ProvideLimiter creates the token-bucket store shared by the fetch gate and
// the HTTP throttle.
func ProvideLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvideFetchGate bounds and paces every upstream request.
func ProvideFetchGate(client *yahoo.Client, m repository.Metrics, rl *ratelimit.Limiter, cfg *config.Config) *mid.FetchGate {
	return mid.NewFetchGate(client, client, m,
		mid.WithMaxInFlight(cfg.Quotes.MaxConcurrency),
		mid.WithRate(cfg.Quotes.RequestsPerSecond, cfg.Quotes.Burst),
		mid.WithLimiter(rl),
	)
}

// ProvideSessionClock creates the market-session clock in the exchange zone.
func ProvideSessionClock(cfg *config.Config, l *applogger.Logger) *session.Clock {
	loc := util.LoadLocation(cfg.Scanner.Timezone, istOffset)
	var opts []session.Option
	if cal := session.ExchangeCalendar(cfg.Scanner.ExchangeMIC, loc); cal != nil {
		opts = append(opts, session.WithCalendar(cal))
	} else {
		l.Warn("exchange calendar not found, only weekends are closed days",
			applogger.String("mic", cfg.Scanner.ExchangeMIC))
	}
	return session.New(loc, opts...)
}

// ProvideRedisCache connects the shared cache tier. It returns nil when
// Redis is disabled.
func ProvideRedisCache(cfg *config.Config) (*cache.RedisCache, error) {
	rc := cfg.Cache.Redis
	if !rc.Enabled {
		return nil, nil
	}
	r := cache.NewRedisCache(cache.RedisConfig{
		Addr:      rc.Addr,
		Password:  rc.Password,
		DB:        rc.DB,
		KeyPrefix: rc.KeyPrefix,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := r.Ping(ctx); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

// ProvideResultCache creates the per-day scan memo, mirrored into Redis when
// the shared tier is configured.
func ProvideResultCache(
	cfg *config.Config,
	clock *session.Clock,
	shared *cache.RedisCache,
	m repository.Metrics,
	l *applogger.Logger,
) *cache.ResultCache {
	opts := []cache.ResultCacheOption{
		cache.WithClock(clock.Now),
		cache.WithMetrics(m),
		cache.WithLogger(l),
	}
	if shared != nil {
		opts = append(opts, cache.WithShared(shared))
	}
	return cache.NewResultCache(cfg.Scanner.CacheTTL, clock.Location(), opts...)
}

// ProvideKafkaProducer creates a Kafka producer. It returns nil when
// publishing is disabled.
func ProvideKafkaProducer(cfg *config.Config, reg *prometheus.Registry) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(pkgkafka.ProducerConfig{
		Brokers:         cfg.Kafka.Brokers,
		RequiredAcks:    cfg.Kafka.RequiredAcks,
		Compression:     cfg.Kafka.Compression,
		MaxAttempts:     cfg.Kafka.Producer.MaxAttempts,
		WriteTimeout:    cfg.Kafka.Producer.WriteTimeout,
		ReadTimeout:     cfg.Kafka.Producer.ReadTimeout,
		BatchSize:       cfg.Kafka.Producer.BatchSize,
		BatchBytes:      cfg.Kafka.Producer.BatchBytes,
		BatchTimeout:    cfg.Kafka.Producer.Linger,
		Async:           cfg.Kafka.Producer.Async,
		HashByKey:       true,
		AutoCreateTopic: cfg.Kafka.AutoCreateTopic,
	}, reg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideScanPublisher publishes completed scans to Kafka, or nowhere when
// no producer is configured.
func ProvideScanPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.ScanPublisher {
	if producer == nil {
		return internalrepo.NopPublisher{}
	}
	return internalrepo.NewKafkaScanPublisher(producer, cfg.Kafka.Topic)
}

// ProvidePlans binds every strategy to the fetch gate.
func ProvidePlans(gate *mid.FetchGate, cfg *config.Config) usecase.Plans {
	return usecase.DefaultPlans(gate, gate, cfg.Scanner.IntradayORB)
}

// ProvideUniverse returns the configured universe or the built-in list.
func ProvideUniverse(cfg *config.Config) usecase.Universe {
	return usecase.NewUniverse(cfg.Scanner.Universe)
}

// ProvideRunner creates the per-strategy symbol worker pool.
func ProvideRunner(cfg *config.Config, m repository.Metrics, l *applogger.Logger) *strategies.Runner {
	return strategies.NewRunner(cfg.Scanner.SymbolWorkers, m, l)
}

// ProvideScanUseCase creates the scan orchestrator.
func ProvideScanUseCase(
	plans usecase.Plans,
	universe usecase.Universe,
	runner *strategies.Runner,
	rc *cache.ResultCache,
	clock *session.Clock,
	pub repository.ScanPublisher,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.ScanUseCase {
	return usecase.NewScanUseCase(plans, universe, runner, rc, clock, pub, m, l.With(applogger.String("component", "scan")))
}

// ProvideThrottle limits scanner requests per client.
func ProvideThrottle(rl *ratelimit.Limiter, cfg *config.Config, l *applogger.Logger) echo.MiddlewareFunc {
	return mid.Throttle(rl, cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec, l)
}

// ProvideScannerHandler registers the scanner and health routes.
func ProvideScannerHandler(l *applogger.Logger, uc *usecase.ScanUseCase, throttle echo.MiddlewareFunc) xhttp.Handler {
	return api.NewScannerEchoHandler(l, uc, throttle)
}

// ProvideHTTPServer creates the Echo server.
func ProvideHTTPServer(cfg *config.Config, h xhttp.Handler, reg *prometheus.Registry, l *applogger.Logger) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithSlowThreshold(cfg.Server.SlowThreshold),
		xhttp.WithCORS(cfg.Server.CORS),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetrics(reg, cfg.Metrics.Path))
	}
	return xhttp.NewServer(h, l, opts...)
}

// ProvideApp creates the application server and registers resources closed
// on shutdown.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	srv *xhttp.Server,
	pub repository.ScanPublisher,
	shared *cache.RedisCache,
) *server.App {
	app := server.New(cfg, l, srv)
	app.OnShutdown("publisher", pub)
	if shared != nil {
		app.OnShutdown("redis", shared)
	}
	return app
}
