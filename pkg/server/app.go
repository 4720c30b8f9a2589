package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Vivesh2911/NeoWallet/internal/session"
	"github.com/Vivesh2911/NeoWallet/pkg/config"
	xhttp "github.com/Vivesh2911/NeoWallet/pkg/http"
	applogger "github.com/Vivesh2911/NeoWallet/pkg/logger"
	"github.com/Vivesh2911/NeoWallet/pkg/queue"
)

// App owns the application lifecycle: the HTTP server, the session store and
// the optional background queue.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    xhttp.Handler
	sessions   *session.Store
	queue      *queue.RedisQueue
	httpServer *xhttp.Server
}

// New assembles the app from its wired dependencies. queue may be nil when
// redis is not configured.
func New(
	cfg *config.Config,
	lgr *applogger.Logger,
	handler xhttp.Handler,
	sessions *session.Store,
	q *queue.RedisQueue,
) *App {
	return &App{
		cfg:      cfg,
		logger:   lgr,
		handler:  handler,
		sessions: sessions,
		queue:    q,
	}
}

// Run starts all services and blocks until an interrupt arrives.
func (a *App) Run() error {
	if a.queue != nil {
		if err := a.queue.Start(); err != nil {
			// Refresh messages only invalidate caches; TTL expiry covers
			// for a dead queue.
			a.logger.Warn("queue start failed, continuing without it", applogger.Error(err))
			a.queue = nil
		}
	}

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(a.cfg.Metrics.Path),
		xhttp.WithLogger(a.logger),
	)
	if err := a.httpServer.Start(); err != nil {
		return err
	}
	a.logger.Info("neowallet started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("env", a.cfg.Environment),
		applogger.String("ledger", a.cfg.Ledger.BaseURL))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.queue != nil {
		if err := a.queue.Stop(ctx); err != nil {
			a.logger.Warn("queue stop error", applogger.Error(err))
		}
	}

	a.sessions.Close()

	a.logger.Info("shutdown complete")
	return nil
}
