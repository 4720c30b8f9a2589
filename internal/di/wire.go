//go:build wireinject
// +build wireinject

package di

import (
	"github.com/Vivesh2911/NeoWallet/pkg/config"
	"github.com/Vivesh2911/NeoWallet/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Collaborators and infrastructure
		ProvideLedger,
		ProvideRedisCache,
		ProvideCache,
		ProvideSessionStore,
		ProvideQueue,
		ProvidePublisher,

		// Use cases
		ProvideDashboardUseCase,
		ProvideAnalyticsUseCase,
		ProvideWalletUseCase,

		// HTTP surface
		ProvideRouter,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
