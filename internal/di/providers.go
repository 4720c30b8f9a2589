package di

import (
	"fmt"

	"github.com/Vivesh2911/NeoWallet/internal/domain/repository"
	"github.com/Vivesh2911/NeoWallet/internal/handler/api"
	"github.com/Vivesh2911/NeoWallet/internal/service/cache"
	"github.com/Vivesh2911/NeoWallet/internal/service/ratelimit"
	"github.com/Vivesh2911/NeoWallet/internal/services/ledger"
	"github.com/Vivesh2911/NeoWallet/internal/session"
	"github.com/Vivesh2911/NeoWallet/internal/usecase"
	"github.com/Vivesh2911/NeoWallet/pkg/config"
	xhttp "github.com/Vivesh2911/NeoWallet/pkg/http"
	applogger "github.com/Vivesh2911/NeoWallet/pkg/logger"
	"github.com/Vivesh2911/NeoWallet/pkg/metrics"
	"github.com/Vivesh2911/NeoWallet/pkg/queue"
	"github.com/Vivesh2911/NeoWallet/pkg/server"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lgr, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return lgr, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideLedger creates the ledger HTTP client.
func ProvideLedger(cfg *config.Config, lgr *applogger.Logger, m repository.Metrics) repository.Ledger {
	return ledger.New(cfg, lgr, m)
}

// ProvideRedisCache creates the redis-backed cache, or nil when redis is not
// configured.
func ProvideRedisCache(cfg *config.Config) *cache.RedisCache {
	if !cfg.Cache.Redis.Enabled {
		return nil
	}
	return cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Cache.Redis.Addr,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
	})
}

// ProvideCache picks redis when available, in-process TTL cache otherwise.
func ProvideCache(rc *cache.RedisCache) cache.BytesCache {
	if rc != nil {
		return rc
	}
	return cache.NewTTLCache()
}

// ProvideSessionStore creates the session reducer store.
func ProvideSessionStore() *session.Store {
	return session.NewStore(session.State{})
}

// ProvideAnalyticsUseCase creates the analytics usecase.
func ProvideAnalyticsUseCase(
	l repository.Ledger,
	m repository.Metrics,
	c cache.BytesCache,
	lgr *applogger.Logger,
	cfg *config.Config,
) *usecase.AnalyticsUseCase {
	return usecase.NewAnalyticsUseCase(l, m, c, lgr, cfg.Cache.TTL)
}

// ProvideDashboardUseCase creates the dashboard usecase.
func ProvideDashboardUseCase(l repository.Ledger, m repository.Metrics, cfg *config.Config) *usecase.DashboardUseCase {
	return usecase.NewDashboardUseCase(l, m, cfg.Ledger.FetchLimit, cfg.Ledger.RecentLimit)
}

// ProvideQueue creates the redis job queue when enabled, nil otherwise.
func ProvideQueue(
	cfg *config.Config,
	lgr *applogger.Logger,
	rc *cache.RedisCache,
	analytics *usecase.AnalyticsUseCase,
) *queue.RedisQueue {
	if !cfg.Queue.Enabled || rc == nil {
		return nil
	}

	jobs := []queue.Job{usecase.NewAnalyticsRefreshJob(analytics, lgr)}
	opts := []queue.Option{}
	if cfg.Queue.KeyPrefix != "" {
		opts = append(opts, queue.WithKeyPrefix(cfg.Queue.KeyPrefix))
	}

	return queue.NewRedisQueue(lgr, &queue.Config{
		Workers:    cfg.Queue.Workers,
		RetryLimit: cfg.Queue.RetryLimit,
		RetryDelay: cfg.Queue.RetryDelay,
	}, rc.Client(), jobs, opts...)
}

// ProvidePublisher exposes the queue as a publisher. A typed nil must not
// leak into the interface.
func ProvidePublisher(q *queue.RedisQueue) queue.Publisher {
	if q == nil {
		return nil
	}
	return q
}

// ProvideWalletUseCase creates the wallet usecase.
func ProvideWalletUseCase(
	l repository.Ledger,
	m repository.Metrics,
	sessions *session.Store,
	pub queue.Publisher,
	lgr *applogger.Logger,
) *usecase.WalletUseCase {
	return usecase.NewWalletUseCase(l, m, sessions, pub, lgr)
}

// ProvideRouter bundles all HTTP handlers.
func ProvideRouter(
	cfg *config.Config,
	lgr *applogger.Logger,
	dashboard *usecase.DashboardUseCase,
	wallet *usecase.WalletUseCase,
	analytics *usecase.AnalyticsUseCase,
	sessions *session.Store,
) xhttp.Handler {
	return api.NewRouter(
		api.NewWalletHandler(lgr, dashboard, wallet, ratelimit.New(),
			int(cfg.RateLimit.MutationsPerMin), int(cfg.RateLimit.Burst)),
		api.NewAnalyticsHandler(lgr, analytics, cfg.Ledger.ActivityDays),
		api.NewSessionFeedHandler(lgr, sessions),
		api.NewHealthHandler(Version),
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	lgr *applogger.Logger,
	handler xhttp.Handler,
	sessions *session.Store,
	q *queue.RedisQueue,
) *server.App {
	return server.New(cfg, lgr, handler, sessions, q)
}
