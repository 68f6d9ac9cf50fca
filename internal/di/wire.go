//go:build wireinject
// +build wireinject

package di

import (
	"FinScan/pkg/config"
	"FinScan/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideRegistry,
		ProvideMetrics,

		// Infrastructure clients
		ProvideQuoteClient,
		ProvideLimiter,
		ProvideFetchGate,
		ProvideRedisCache,
		ProvideKafkaProducer,

		// Repositories and services
		ProvideScanPublisher,
		ProvideSessionClock,
		ProvideResultCache,

		// Use cases
		ProvidePlans,
		ProvideUniverse,
		ProvideRunner,
		ProvideScanUseCase,

		// HTTP
		ProvideThrottle,
		ProvideScannerHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
